package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"depthflow/cache"
	"depthflow/config"
	"depthflow/engine"
	"depthflow/feed"
	"depthflow/internal/channel"
	"depthflow/internal/dashboard"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/market"
	"depthflow/parser"
)

var version = "dev"

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("depthflow", version)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAgeDays); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service":     cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("starting depthflow")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, cfg.Logging.ReportInterval)
	}

	metrics.SetEnabledFeatures(cfg.Metrics.Features)
	if cfg.Metrics.Enabled {
		metrics.InitCloudWatch(cfg.Metrics.CloudWatch.Region, cfg.Metrics.CloudWatch.Namespace, cfg.Metrics.CloudWatch.Dashboard)
	}

	channels := channel.NewChannels(cfg.Channels.RawBuffer)
	defer channels.Close()

	registry := parser.DefaultRegistry()
	books := cache.New()
	books.OnUpdate(func(v market.Venue, t market.InstrumentType, data market.InstrumentData) {
		logger.RecordChannelMessage("cache_updates", len(data.Book.Bids)+len(data.Book.Asks))
	})

	trading := cfg.TradingConfig()
	if err := trading.Validate(); err != nil {
		log.WithError(err).Error("Invalid trading configuration")
		os.Exit(1)
	}
	maxBookAge := time.Duration(trading.MaxBookAgeMS) * time.Millisecond

	handler := engine.NewSignalHandler(books, trading)

	feeds := buildFeeds(cfg, channels, registry, books, log)
	if len(feeds) == 0 {
		log.WithComponent("main").Warn("no feeds configured; serving cached state only")
	}

	ingestor := feed.NewIngestor(channels, registry, books, cfg.Channels.Workers)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := ingestor.Start(ctx); err != nil {
			log.WithError(err).Warn("ingestor failed to start")
		}
	}()

	for _, f := range feeds {
		wg.Add(1)
		go func(f feed.Feed) {
			defer wg.Done()
			if err := f.Start(ctx); err != nil {
				log.WithError(err).WithFields(logger.Fields{"feed": f.Name()}).Warn("feed failed to start")
			}
		}(f)
	}

	if cfg.Metrics.Enabled {
		metrics.StartCacheStatsMetrics(ctx, books, channels, maxBookAge, cfg.Metrics.Interval)
	}

	dash, err := dashboard.NewServer(cfg.Dashboard, log, books, handler, maxBookAge)
	if err != nil {
		log.WithError(err).Error("failed to create dashboard server")
		os.Exit(1)
	}
	if dash != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := dash.Run(ctx, cfg.App.Name); err != nil {
				log.WithError(err).Warn("dashboard server exited")
			}
		}()
		log.WithFields(logger.Fields{"address": dash.Address()}).Info("dashboard started")
	}

	time.Sleep(2 * time.Second)
	log.Info("all components started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.WithFields(logger.Fields{"signal": sig.String()}).Info("shutdown signal received")

	log.Info("starting graceful shutdown")
	cancel()

	log.Info("stopping feeds")
	for _, f := range feeds {
		f.Stop()
	}

	log.Info("stopping ingestor")
	ingestor.Stop()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("graceful shutdown completed")
	case <-time.After(30 * time.Second):
		log.Warn("graceful shutdown timeout exceeded")
	}

	log.Info("depthflow stopped")
}

// buildFeeds picks the right feed implementation per configured venue:
// SDK-backed feeds for the venues we have clients for, websocket streams
// where a dialect is registered, plain REST polling otherwise.
func buildFeeds(cfg *config.Config, channels *channel.Channels, registry *parser.Registry, books *cache.BookCache, log *logger.Log) []feed.Feed {
	feeds := make([]feed.Feed, 0, len(cfg.Feed.Venues))

	for _, entry := range cfg.Feed.Venues {
		venue := entry.FeedVenue()

		switch venue {
		case market.Binance:
			feeds = append(feeds, feed.NewBinanceFeed(cfg, entry, channels))
			continue
		case market.Bybit:
			feeds = append(feeds, feed.NewBybitFeed(cfg, entry, channels))
			continue
		case market.Kucoin, market.Kucoinfutures:
			feeds = append(feeds, feed.NewKucoinFeed(cfg, entry, books))
			continue
		}

		if entry.Stream {
			if s, err := feed.NewStreamReader(cfg, entry, registry, channels); err == nil {
				feeds = append(feeds, s)
				continue
			} else {
				log.WithComponent("main").WithError(err).WithFields(logger.Fields{
					"venue": venue.Name(),
				}).Warn("stream feed unavailable, falling back to polling")
			}
		}

		p, err := feed.NewRestPoller(cfg, entry, channels)
		if err != nil {
			log.WithComponent("main").WithError(err).WithFields(logger.Fields{
				"venue": venue.Name(),
			}).Warn("skipping venue without a usable feed")
			continue
		}
		feeds = append(feeds, p)
	}

	return feeds
}
