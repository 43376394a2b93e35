package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	bybit "github.com/bybit-exchange/bybit.go.api"

	"depthflow/config"
	"depthflow/internal/channel"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/market"
)

// bybitCategory maps an instrument onto the v5 API market category.
func bybitCategory(it market.InstrumentType) string {
	switch it {
	case market.Spot, market.Margin, market.LeveragedToken:
		return "spot"
	case market.Inverse:
		return "inverse"
	case market.Option:
		return "option"
	default:
		return "linear"
	}
}

// BybitFeed fetches v5 order book snapshots through the bybit.go.api client.
type BybitFeed struct {
	cfg      *config.Config
	entry    config.VenueFeedConfig
	client   *bybit.Client
	channels *channel.Channels

	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	log     *logger.Log
}

// NewBybitFeed creates a feed for one Bybit entry.
func NewBybitFeed(cfg *config.Config, entry config.VenueFeedConfig, ch *channel.Channels) *BybitFeed {
	client := bybit.NewBybitHttpClient("", "", bybit.WithBaseURL("https://api.bybit.com"))
	client.HTTPClient = newHTTPClient(cfg.Feed)

	f := &BybitFeed{
		cfg:      cfg,
		entry:    entry,
		client:   client,
		channels: ch,
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
	}

	f.log.WithComponent("bybit_feed").WithFields(logger.Fields{
		"interval_ms": entry.IntervalMs,
		"levels":      entry.Levels,
		"timeout":     cfg.Feed.Timeout,
	}).Info("bybit feed initialized")

	return f
}

func (f *BybitFeed) Name() string { return "bybit" }

// Start begins fetching order book snapshots for configured instruments.
func (f *BybitFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return fmt.Errorf("bybit feed already running")
	}
	f.running = true
	f.ctx = ctx
	f.mu.Unlock()

	instruments := f.entry.FeedInstruments()
	if len(instruments) == 0 {
		return fmt.Errorf("no instruments configured for bybit")
	}

	for _, it := range instruments {
		f.wg.Add(1)
		go f.fetchWorker(f.entry.SymbolFor(it), it)
	}

	f.log.WithComponent("bybit_feed").WithFields(logger.Fields{
		"instruments": len(instruments),
	}).Info("bybit feed started")
	return nil
}

// Stop signals workers to stop and waits for completion.
func (f *BybitFeed) Stop() {
	f.mu.Lock()
	f.running = false
	f.mu.Unlock()

	f.log.WithComponent("bybit_feed").Info("stopping bybit feed")
	f.wg.Wait()
	f.log.WithComponent("bybit_feed").Info("bybit feed stopped")
}

func (f *BybitFeed) fetchWorker(symbol string, it market.InstrumentType) {
	defer f.wg.Done()

	log := f.log.WithComponent("bybit_feed").WithFields(logger.Fields{
		"symbol":     symbol,
		"instrument": it.Name(),
		"worker":     "snapshot_poller",
	})

	interval := pollInterval(f.entry.IntervalMs)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-f.ctx.Done():
			log.Info("worker stopped due to context cancellation")
			return
		case <-ticker.C:
			f.fetchBook(symbol, it, log)
		}
	}
}

func (f *BybitFeed) fetchBook(symbol string, it market.InstrumentType, log *logger.Entry) {
	levels := f.entry.Levels
	if levels <= 0 {
		levels = market.MaxBookLevels
	}

	params := map[string]interface{}{
		"category": bybitCategory(it),
		"symbol":   symbol,
		"limit":    levels,
	}

	start := time.Now()
	resp, err := f.client.NewUtaBybitServiceWithParams(params).GetOrderBookInfo(f.ctx)
	if err != nil {
		log.WithError(err).Warn("failed to fetch order book")
		return
	}
	logger.LogPerformanceEntry(log, "bybit_feed", "api_request", time.Since(start), logger.Fields{
		"symbol": symbol,
	})

	payload, err := json.Marshal(resp.Result)
	if err != nil {
		log.WithError(err).Warn("failed to marshal order book")
		return
	}

	msg := channel.RawBookMessage{
		FetchID:    uuid.New(),
		Venue:      market.Bybit,
		Instrument: it,
		Source:     channel.SourceSDK,
		Received:   time.Now().UTC(),
		Payload:    payload,
	}
	if f.channels.SendRaw(f.ctx, msg) {
		logger.RecordChannelMessage("raw_books", len(payload))
	} else if f.ctx.Err() == nil {
		metrics.EmitDropMetric(f.log, metrics.DropMetricBookRaw, "bybit", it.Name(), "sdk")
		log.Warn("raw channel is full, dropping data")
	}
}
