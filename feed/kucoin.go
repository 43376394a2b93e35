package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	api "github.com/Kucoin/kucoin-universal-sdk/sdk/golang/pkg/api"
	futuresmarket "github.com/Kucoin/kucoin-universal-sdk/sdk/golang/pkg/generate/futures/market"
	sdktype "github.com/Kucoin/kucoin-universal-sdk/sdk/golang/pkg/types"
	"golang.org/x/time/rate"

	"depthflow/cache"
	"depthflow/config"
	"depthflow/logger"
	"depthflow/market"
)

// KucoinFeed polls funding and mark price data from the KuCoin futures
// REST API. These are per-field updates, so they bypass the raw book
// channel and write straight to the cache.
type KucoinFeed struct {
	cfg       *config.Config
	entry     config.VenueFeedConfig
	venue     market.Venue
	books     *cache.BookCache
	marketAPI futuresmarket.MarketAPI

	ctx      context.Context
	wg       *sync.WaitGroup
	mu       sync.RWMutex
	running  bool
	limiter  *rate.Limiter
	interval time.Duration
	log      *logger.Log
}

// NewKucoinFeed creates a funding/mark price feed for one KuCoin entry.
func NewKucoinFeed(cfg *config.Config, entry config.VenueFeedConfig, books *cache.BookCache) *KucoinFeed {
	transportOpt := sdktype.NewTransportOptionBuilder().
		SetMaxIdleConns(cfg.Feed.ConnectionPool.MaxIdleConns).
		SetMaxIdleConnsPerHost(cfg.Feed.ConnectionPool.MaxIdleConns).
		SetMaxConnsPerHost(cfg.Feed.ConnectionPool.MaxConnsPerHost).
		SetIdleConnTimeout(cfg.Feed.ConnectionPool.IdleConnTimeout).
		SetTimeout(cfg.Feed.Timeout).
		Build()

	option := sdktype.NewClientOptionBuilder().
		WithFuturesEndpoint("https://api-futures.kucoin.com").
		WithTransportOption(transportOpt).
		Build()

	client := api.NewClient(option)
	marketAPI := client.RestService().GetFuturesService().GetMarketAPI()

	return &KucoinFeed{
		cfg:       cfg,
		entry:     entry,
		venue:     entry.FeedVenue(),
		books:     books,
		marketAPI: marketAPI,
		wg:        &sync.WaitGroup{},
		limiter:   newLimiter(cfg.Feed.RateLimit),
		log:       logger.GetLogger(),
	}
}

func (f *KucoinFeed) Name() string { return "kucoin_funding" }

// Start schedules one polling loop per configured instrument.
func (f *KucoinFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return fmt.Errorf("kucoin funding feed already running")
	}
	f.running = true
	f.ctx = ctx
	f.mu.Unlock()

	instruments := f.entry.FeedInstruments()
	if len(instruments) == 0 {
		return fmt.Errorf("no instruments configured for kucoin")
	}

	interval := time.Duration(f.entry.IntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Minute
	}
	f.interval = interval

	for _, it := range instruments {
		f.wg.Add(1)
		go f.pollInstrument(it)
	}

	f.log.WithComponent("kucoin_feed").WithFields(logger.Fields{
		"instruments": len(instruments),
		"interval":    interval.String(),
	}).Info("kucoin funding feed started")
	return nil
}

// Stop waits for all polling goroutines to finish.
func (f *KucoinFeed) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	f.mu.Unlock()

	f.log.WithComponent("kucoin_feed").Info("stopping kucoin funding feed")
	f.wg.Wait()
	f.log.WithComponent("kucoin_feed").Info("kucoin funding feed stopped")
}

func (f *KucoinFeed) pollInstrument(it market.InstrumentType) {
	defer f.wg.Done()

	symbol := f.entry.SymbolFor(it)
	log := f.log.WithComponent("kucoin_feed").WithFields(logger.Fields{
		"symbol":     symbol,
		"instrument": it.Name(),
	})

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		if err := f.fetchFunding(symbol, it); err != nil {
			log.WithError(err).Debug("failed to fetch funding rate")
		}
		if err := f.fetchMarkPrice(symbol, it); err != nil {
			log.WithError(err).Debug("failed to fetch mark price")
		}

		select {
		case <-ticker.C:
		case <-f.ctx.Done():
			return
		}
	}
}

func (f *KucoinFeed) fetchFunding(symbol string, it market.InstrumentType) error {
	if err := f.limiter.Wait(f.ctx); err != nil {
		return err
	}

	req := futuresmarket.NewGetPremiumIndexReqBuilder().SetSymbol(symbol).SetMaxCount(1).Build()
	resp, err := f.marketAPI.GetPremiumIndex(req, f.ctx)
	if err != nil {
		return err
	}
	if resp == nil || len(resp.DataList) == 0 {
		return nil
	}

	entry := resp.DataList[0]
	next := time.UnixMilli(entry.TimePoint).UTC().Add(8 * time.Hour)
	f.books.UpdateFunding(f.venue, it, entry.Value, entry.Value, next)
	logger.IncrementPartialUpdate()
	return nil
}

func (f *KucoinFeed) fetchMarkPrice(symbol string, it market.InstrumentType) error {
	if err := f.limiter.Wait(f.ctx); err != nil {
		return err
	}

	req := futuresmarket.NewGetSymbolReqBuilder().SetSymbol(symbol).Build()
	resp, err := f.marketAPI.GetSymbol(req, f.ctx)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}

	f.books.UpdateMarkPrice(f.venue, it, resp.MarkPrice, resp.IndexPrice)
	logger.IncrementPartialUpdate()
	return nil
}
