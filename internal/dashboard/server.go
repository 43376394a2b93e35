package dashboard

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"depthflow/cache"
	"depthflow/config"
	"depthflow/engine"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/market"
)

//go:embed templates/*.tmpl assets/*
var embeddedFS embed.FS

// Server hosts the Gin-powered monitoring dashboard. It exposes the live
// book cache, recent metrics and logs, host resources, and a decision
// probe that runs a synthetic signal through the engine.
type Server struct {
	cfg               config.DashboardConfig
	log               *logger.Log
	books             *cache.BookCache
	handler           *engine.SignalHandler
	metricStore       *metricStore
	logStore          *logStore
	metricHandler     metrics.MetricHandlerID
	httpServer        *http.Server
	refreshIntervalMs int
	resourceSampler   *resourceSampler
	maxBookAge        time.Duration
}

// NewServer constructs a dashboard server when the dashboard feature is
// enabled. When the dashboard is disabled the returned server will be nil.
func NewServer(cfg config.DashboardConfig, log *logger.Log, books *cache.BookCache, handler *engine.SignalHandler, maxBookAge time.Duration) (*Server, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	cfg.Address = normalizeAddress(cfg.Address)

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Second
	}
	if cfg.LogHistory <= 0 {
		cfg.LogHistory = 200
	}
	if cfg.MetricsHistory <= 0 {
		cfg.MetricsHistory = 200
	}
	if maxBookAge <= 0 {
		maxBookAge = 5 * time.Second
	}

	metricStore := newMetricStore(cfg.MetricsHistory)
	handlerID := metrics.RegisterMetricHandler(metricStore.handle)

	logStore := newLogStore(cfg.LogHistory)
	log.AddHook(logStore)

	sampler := newResourceSampler(cfg.MetricsHistory, cfg.RefreshInterval, "/", log)

	server := &Server{
		cfg:               cfg,
		log:               log,
		books:             books,
		handler:           handler,
		metricStore:       metricStore,
		logStore:          logStore,
		metricHandler:     handlerID,
		refreshIntervalMs: int(cfg.RefreshInterval / time.Millisecond),
		resourceSampler:   sampler,
		maxBookAge:        maxBookAge,
	}

	if server.refreshIntervalMs <= 0 {
		server.refreshIntervalMs = int((5 * time.Second) / time.Millisecond)
	}

	return server, nil
}

// Run starts the dashboard HTTP server and blocks until the provided
// context is cancelled or the underlying HTTP server exits with an error.
func (s *Server) Run(ctx context.Context, appName string) error {
	if s == nil {
		return nil
	}

	defer s.cleanup()

	router, err := s.buildRouter(appName)
	if err != nil {
		return err
	}

	if s.resourceSampler != nil {
		s.resourceSampler.start(ctx)
	}

	s.httpServer = &http.Server{
		Addr:    s.cfg.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if err == nil {
			return nil
		}
		return err
	}
}

func (s *Server) cleanup() {
	metrics.UnregisterMetricHandler(s.metricHandler)
	if s.logStore != nil {
		s.logStore.close()
	}
	if s.resourceSampler != nil {
		s.resourceSampler.stop()
	}
}

// Address reports the network address the dashboard server listens on.
func (s *Server) Address() string {
	if s == nil {
		return ""
	}
	return s.cfg.Address
}

func (s *Server) buildRouter(appName string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	// Trust no proxies by default; override via GIN_TRUSTED_PROXIES
	// when running behind a load balancer.
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	tmpl := template.Must(template.New("dashboard").ParseFS(embeddedFS, "templates/index.tmpl"))
	router.SetHTMLTemplate(tmpl)

	if assetsFS, err := fsSub("assets"); err == nil {
		router.StaticFS("/assets", http.FS(assetsFS))
	}

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{
			"AppName":           appName,
			"RefreshIntervalMs": s.refreshIntervalMs,
		})
	})

	router.GET("/api/books", s.handleBooks)
	router.GET("/api/metrics", s.handleMetrics)
	router.GET("/api/logs", s.handleLogs)
	router.GET("/api/resources", s.handleResources)
	router.POST("/api/decision", s.handleDecision)
	router.GET("/api/benchmark", s.handleBenchmark)

	return router, nil
}

func (s *Server) handleBooks(c *gin.Context) {
	entries := s.books.Snapshot()
	payload := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		book := e.Data.Book
		payload = append(payload, gin.H{
			"venue":      e.Venue.Name(),
			"instrument": e.Type.Name(),
			"best_bid":   book.BestBid(),
			"best_ask":   book.BestAsk(),
			"mid_price":  book.MidPrice(),
			"spread_pct": book.SpreadPct(),
			"age_ms":     book.Age().Milliseconds(),
			"fresh":      book.Age() <= s.maxBookAge,
			"sequence":   book.Sequence,
			"bid_levels": len(book.Bids),
			"ask_levels": len(book.Asks),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"books":     payload,
		"populated": s.books.Size(),
		"valid":     s.books.ValidCount(),
		"fresh":     s.books.FreshCount(s.maxBookAge),
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	metricsSnapshot := s.metricStore.snapshot()
	payload := make([]gin.H, 0, len(metricsSnapshot))
	for _, m := range metricsSnapshot {
		payload = append(payload, gin.H{
			"timestamp": m.Timestamp.Format(time.RFC3339Nano),
			"component": m.Component,
			"name":      m.Name,
			"value":     m.Value,
			"type":      m.Type,
			"fields":    m.Fields,
		})
	}
	latest := gin.H{}
	for key, m := range s.metricStore.latestValues() {
		latest[key] = m.Value
	}
	c.JSON(http.StatusOK, gin.H{"metrics": payload, "latest": latest})
}

func (s *Server) handleLogs(c *gin.Context) {
	logsSnapshot := s.logStore.snapshot()
	payload := make([]gin.H, 0, len(logsSnapshot))
	for _, l := range logsSnapshot {
		payload = append(payload, gin.H{
			"timestamp":  l.Timestamp.Format(time.RFC3339Nano),
			"level":      l.Level,
			"component":  l.Component,
			"venue":      l.Venue,
			"instrument": l.Instrument,
			"message":    l.Message,
			"fields":     l.Fields,
		})
	}
	c.JSON(http.StatusOK, gin.H{"logs": payload})
}

func (s *Server) handleResources(c *gin.Context) {
	snapshots := s.resourceSampler.snapshot()
	payload := make([]gin.H, 0, len(snapshots))
	for _, snap := range snapshots {
		payload = append(payload, gin.H{
			"timestamp":      snap.Timestamp.Format(time.RFC3339Nano),
			"cpu_percent":    snap.CPUPercent,
			"memory_used":    snap.MemoryUsed,
			"memory_total":   snap.MemoryTotal,
			"memory_percent": snap.MemoryPct,
			"disk_used":      snap.DiskUsed,
			"disk_total":     snap.DiskTotal,
			"disk_percent":   snap.DiskPct,
			"goroutines":     snap.Goroutines,
			"heap_alloc":     snap.HeapAlloc,
			"heap_objects":   snap.HeapObjects,
			"gc_cycles":      snap.GCCycles,
		})
	}
	c.JSON(http.StatusOK, gin.H{"resources": payload})
}

// decisionRequest is a synthetic signal probe posted from the UI.
type decisionRequest struct {
	Venue      string  `json:"venue" binding:"required"`
	Inflow     bool    `json:"inflow"`
	Quantity   float64 `json:"quantity" binding:"required"`
	Instrument string  `json:"instrument"`
}

func (s *Server) handleDecision(c *gin.Context) {
	if s.handler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "engine not available"})
		return
	}

	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inst := market.Spot
	if req.Instrument != "" {
		it, ok := market.InstrumentFromName(strings.ToLower(strings.TrimSpace(req.Instrument)))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown instrument: " + req.Instrument})
			return
		}
		inst = it
	}

	sig := market.BlockchainSignal{
		VenueName:    strings.ToLower(strings.TrimSpace(req.Venue)),
		IsInflow:     req.Inflow,
		BaseQuantity: req.Quantity,
		ObservedAt:   time.Now(),
	}
	decision := s.handler.Process(sig, inst)

	c.JSON(http.StatusOK, gin.H{
		"should_trade":       decision.ShouldTrade,
		"is_short":           decision.IsShort,
		"venue":              decision.Venue.Name(),
		"entry_price":        decision.EntryPrice,
		"exit_price":         decision.ExitPrice,
		"reason":             decision.Reason,
		"price_drop_pct":     decision.Impact.PriceDropPct,
		"processing_time_us": decision.ProcessingTime.Microseconds(),
	})
}

func (s *Server) handleBenchmark(c *gin.Context) {
	result := engine.RunBenchmark(1000)
	c.JSON(http.StatusOK, result)
}

func fsSub(path string) (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, path)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)

	if addr == "" {
		return "0.0.0.0:8080"
	}

	if strings.Contains(addr, "://") {
		if parsed, err := url.Parse(addr); err == nil {
			if host := parsed.Host; host != "" {
				addr = host
			} else if parsed.Opaque != "" {
				addr = parsed.Opaque
			}
		}
	}

	if strings.HasPrefix(addr, ":") {
		if len(addr) > 1 && addr[1] >= '0' && addr[1] <= '9' {
			return "0.0.0.0" + addr
		}
	}

	host, port, err := net.SplitHostPort(addr)
	if err == nil {
		if host == "" || host == "*" {
			host = "0.0.0.0"
		}
		if port == "" {
			port = "8080"
		}
		return net.JoinHostPort(host, port)
	}

	if ip := net.ParseIP(addr); ip != nil {
		return net.JoinHostPort(addr, "8080")
	}

	if !strings.Contains(addr, ":") {
		return net.JoinHostPort(addr, "8080")
	}

	return addr
}
