package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	futures "github.com/adshao/go-binance/v2/futures"

	"depthflow/config"
	"depthflow/internal/channel"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/market"
)

// binanceDepthPayload is re-marshaled into the wire shape the generic
// parser understands, regardless of whether the levels came from the
// REST depth service or a partial-depth stream.
type binanceDepthPayload struct {
	LastUpdateID int64      `json:"lastUpdateId"`
	Bids         [][]string `json:"bids"`
	Asks         [][]string `json:"asks"`
}

// BinanceFeed fetches futures order book snapshots through the binance-go
// client, and optionally subscribes to partial depth streams.
type BinanceFeed struct {
	cfg      *config.Config
	entry    config.VenueFeedConfig
	client   *futures.Client
	channels *channel.Channels

	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	stopCs  []chan struct{}
	log     *logger.Log
}

// NewBinanceFeed creates a feed for one Binance entry using the binance-go client.
func NewBinanceFeed(cfg *config.Config, entry config.VenueFeedConfig, ch *channel.Channels) *BinanceFeed {
	client := futures.NewClient("", "")
	client.HTTPClient = newHTTPClient(cfg.Feed)

	f := &BinanceFeed{
		cfg:      cfg,
		entry:    entry,
		client:   client,
		channels: ch,
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
	}

	f.log.WithComponent("binance_feed").WithFields(logger.Fields{
		"interval_ms": entry.IntervalMs,
		"levels":      entry.Levels,
		"stream":      entry.Stream,
		"timeout":     cfg.Feed.Timeout,
	}).Info("binance feed initialized")

	return f
}

func (f *BinanceFeed) Name() string { return "binance" }

// Start begins fetching order book snapshots for configured instruments.
func (f *BinanceFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return fmt.Errorf("binance feed already running")
	}
	f.running = true
	f.ctx = ctx
	f.mu.Unlock()

	log := f.log.WithComponent("binance_feed").WithFields(logger.Fields{"operation": "start"})

	instruments := f.entry.FeedInstruments()
	if len(instruments) == 0 {
		return fmt.Errorf("no instruments configured for binance")
	}

	for _, it := range instruments {
		symbol := f.entry.SymbolFor(it)
		if f.entry.Stream {
			if err := f.startDepthStream(symbol, it, log); err != nil {
				log.WithError(err).Warn("failed to start depth stream, falling back to polling")
			} else {
				continue
			}
		}
		f.wg.Add(1)
		go f.fetchWorker(symbol, it)
	}

	log.WithFields(logger.Fields{"instruments": len(instruments)}).Info("binance feed started")
	return nil
}

// Stop closes any depth streams and waits for the poll workers.
func (f *BinanceFeed) Stop() {
	f.mu.Lock()
	f.running = false
	stopCs := f.stopCs
	f.stopCs = nil
	f.mu.Unlock()

	f.log.WithComponent("binance_feed").Info("stopping binance feed")
	for _, stopC := range stopCs {
		close(stopC)
	}
	f.wg.Wait()
	f.log.WithComponent("binance_feed").Info("binance feed stopped")
}

// startDepthStream subscribes to the partial depth websocket; the stream
// library manages the connection and hands us parsed events.
func (f *BinanceFeed) startDepthStream(symbol string, it market.InstrumentType, log *logger.Entry) error {
	levels := f.entry.Levels
	if levels != 5 && levels != 10 && levels != 20 {
		levels = 20
	}

	wsHandler := func(event *futures.WsDepthEvent) {
		bids := make([][]string, len(event.Bids))
		for i, b := range event.Bids {
			bids[i] = []string{b.Price, b.Quantity}
		}
		asks := make([][]string, len(event.Asks))
		for i, a := range event.Asks {
			asks[i] = []string{a.Price, a.Quantity}
		}
		f.forward(binanceDepthPayload{
			LastUpdateID: event.LastUpdateID,
			Bids:         bids,
			Asks:         asks,
		}, it, channel.SourceWS, log)
	}
	errHandler := func(err error) {
		log.WithError(err).Warn("depth stream error")
	}

	_, stopC, err := futures.WsPartialDepthServeWithRate(symbol, levels, 250*time.Millisecond, wsHandler, errHandler)
	if err != nil {
		return fmt.Errorf("subscribe depth stream %s: %w", symbol, err)
	}

	f.mu.Lock()
	f.stopCs = append(f.stopCs, stopC)
	f.mu.Unlock()

	log.WithFields(logger.Fields{"symbol": symbol, "levels": levels}).Info("depth stream started")
	return nil
}

func (f *BinanceFeed) fetchWorker(symbol string, it market.InstrumentType) {
	defer f.wg.Done()

	log := f.log.WithComponent("binance_feed").WithFields(logger.Fields{
		"symbol":     symbol,
		"instrument": it.Name(),
		"worker":     "snapshot_poller",
	})

	interval := pollInterval(f.entry.IntervalMs)

	now := time.Now()
	nextTick := now.Truncate(interval).Add(interval)
	timer := time.NewTimer(nextTick.Sub(now))
	defer timer.Stop()

	for {
		select {
		case <-f.ctx.Done():
			log.Info("worker stopped due to context cancellation")
			return
		case <-timer.C:
			start := time.Now()
			f.fetchDepth(symbol, it, log)
			duration := time.Since(start)

			if duration > interval {
				log.WithFields(logger.Fields{
					"duration_ms": duration.Milliseconds(),
					"interval_ms": f.entry.IntervalMs,
				}).Warn("fetch took longer than interval")
			}

			nextTick = start.Truncate(interval).Add(interval)
			timer.Reset(time.Until(nextTick))
		}
	}
}

func (f *BinanceFeed) fetchDepth(symbol string, it market.InstrumentType, log *logger.Entry) {
	levels := f.entry.Levels
	if levels <= 0 {
		levels = market.MaxBookLevels
	}

	start := time.Now()
	res, err := f.client.NewDepthService().
		Symbol(symbol).
		Limit(levels).
		Do(f.ctx)
	if err != nil {
		log.WithError(err).Warn("failed to fetch order book")
		return
	}
	logger.LogPerformanceEntry(log, "binance_feed", "api_request", time.Since(start), logger.Fields{
		"symbol": symbol,
	})

	bids := make([][]string, len(res.Bids))
	for i, b := range res.Bids {
		bids[i] = []string{b.Price, b.Quantity}
	}
	asks := make([][]string, len(res.Asks))
	for i, a := range res.Asks {
		asks[i] = []string{a.Price, a.Quantity}
	}

	f.forward(binanceDepthPayload{
		LastUpdateID: res.LastUpdateID,
		Bids:         bids,
		Asks:         asks,
	}, it, channel.SourceRest, log)
}

func (f *BinanceFeed) forward(depth binanceDepthPayload, it market.InstrumentType, source string, log *logger.Entry) {
	payload, err := json.Marshal(depth)
	if err != nil {
		log.WithError(err).Warn("failed to marshal order book")
		return
	}

	msg := channel.RawBookMessage{
		FetchID:    uuid.New(),
		Venue:      market.Binance,
		Instrument: it,
		Source:     source,
		Received:   time.Now().UTC(),
		Payload:    payload,
	}
	if f.channels.SendRaw(f.ctx, msg) {
		logger.RecordChannelMessage("raw_books", len(payload))
	} else if f.ctx.Err() == nil {
		metrics.EmitDropMetric(f.log, metrics.DropMetricBookRaw, "binance", it.Name(), source)
		log.Warn("raw channel is full, dropping data")
	}
}
