package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"depthflow/config"
	"depthflow/internal/channel"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/market"
)

// maxSnapshotBytes caps one REST body read; book snapshots are small and a
// venue misbehaving should not balloon memory.
const maxSnapshotBytes = 4 << 20

// defaultPollInterval backs any feed entry without a configured interval,
// such as a stream venue that fell back to polling.
const defaultPollInterval = time.Second

// RestPoller polls any venue with a configured snapshot endpoint on an
// aligned interval and forwards the raw body to the channel.
type RestPoller struct {
	cfg      *config.Config
	entry    config.VenueFeedConfig
	venue    market.Venue
	client   *http.Client
	channels *channel.Channels
	limiter  *rate.Limiter

	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	log     *logger.Log
}

// NewRestPoller creates a poller for one feed entry.
func NewRestPoller(cfg *config.Config, entry config.VenueFeedConfig, ch *channel.Channels) (*RestPoller, error) {
	venue := entry.FeedVenue()
	vcfg := market.VenueConfigFor(venue)
	if vcfg.RestURL == "" {
		return nil, fmt.Errorf("venue %s has no snapshot endpoint", venue.Name())
	}

	p := &RestPoller{
		cfg:      cfg,
		entry:    entry,
		venue:    venue,
		client:   newHTTPClient(cfg.Feed),
		channels: ch,
		limiter:  newLimiter(cfg.Feed.RateLimit),
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
	}

	p.log.WithComponent("rest_feed").WithFields(logger.Fields{
		"venue":       venue.Name(),
		"interval_ms": entry.IntervalMs,
		"timeout":     cfg.Feed.Timeout,
	}).Info("rest poller initialized")

	return p, nil
}

func (p *RestPoller) Name() string { return p.venue.Name() + "_rest" }

// Start begins polling every configured instrument.
func (p *RestPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("rest poller already running")
	}
	p.running = true
	p.ctx = ctx
	p.mu.Unlock()

	log := p.log.WithComponent("rest_feed").WithFields(logger.Fields{"venue": p.venue.Name()})

	instruments := p.entry.FeedInstruments()
	if len(instruments) == 0 {
		return fmt.Errorf("no instruments configured for %s", p.venue.Name())
	}

	for _, it := range instruments {
		p.wg.Add(1)
		go p.pollWorker(it)
	}

	log.WithFields(logger.Fields{"instruments": len(instruments)}).Info("rest poller started")
	return nil
}

// Stop waits for the poll workers to finish.
func (p *RestPoller) Stop() {
	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	p.log.WithComponent("rest_feed").WithFields(logger.Fields{"venue": p.venue.Name()}).Info("stopping rest poller")
	p.wg.Wait()
	p.log.WithComponent("rest_feed").WithFields(logger.Fields{"venue": p.venue.Name()}).Info("rest poller stopped")
}

func (p *RestPoller) pollWorker(it market.InstrumentType) {
	defer p.wg.Done()

	log := p.log.WithComponent("rest_feed").WithFields(logger.Fields{
		"venue":      p.venue.Name(),
		"instrument": it.Name(),
		"worker":     "snapshot_poller",
	})

	interval := pollInterval(p.entry.IntervalMs)
	if p.entry.IntervalMs <= 0 {
		log.WithFields(logger.Fields{"interval_ms": interval.Milliseconds()}).Warn("no poll interval configured, using default")
	}

	// Align ticks to the interval so all pollers fire on the same grid.
	now := time.Now()
	nextTick := now.Truncate(interval).Add(interval)
	timer := time.NewTimer(nextTick.Sub(now))
	defer timer.Stop()

	for {
		select {
		case <-p.ctx.Done():
			log.Info("worker stopped due to context cancellation")
			return
		case <-timer.C:
			start := time.Now()
			p.fetchSnapshot(it, log)
			duration := time.Since(start)

			if duration > interval {
				log.WithFields(logger.Fields{
					"duration_ms": duration.Milliseconds(),
					"interval_ms": p.entry.IntervalMs,
				}).Warn("fetch took longer than interval")
			}

			nextTick = start.Truncate(interval).Add(interval)
			timer.Reset(time.Until(nextTick))
		}
	}
}

// pollInterval floors a configured interval at defaultPollInterval so a
// zero or negative entry never produces an immediate-fire loop.
func pollInterval(intervalMs int) time.Duration {
	if intervalMs <= 0 {
		return defaultPollInterval
	}
	return time.Duration(intervalMs) * time.Millisecond
}

func (p *RestPoller) fetchSnapshot(it market.InstrumentType, log *logger.Entry) {
	if err := p.limiter.Wait(p.ctx); err != nil {
		return
	}

	url := market.VenueConfigFor(p.venue).RestURL

	req, err := http.NewRequestWithContext(p.ctx, http.MethodGet, url, nil)
	if err != nil {
		log.WithError(err).Warn("failed to build snapshot request")
		return
	}
	if p.cfg.Feed.UserAgent != "" {
		req.Header.Set("User-Agent", p.cfg.Feed.UserAgent)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("failed to fetch snapshot")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(logger.Fields{"status": resp.StatusCode}).Warn("snapshot request rejected")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		log.WithError(err).Warn("failed to read snapshot body")
		return
	}
	logger.LogPerformanceEntry(log, "rest_feed", "api_request", time.Since(start), logger.Fields{
		"venue": p.venue.Name(),
	})

	msg := channel.RawBookMessage{
		FetchID:    uuid.New(),
		Venue:      p.venue,
		Instrument: it,
		Source:     channel.SourceRest,
		Received:   time.Now().UTC(),
		Payload:    payload,
	}

	if p.channels.SendRaw(p.ctx, msg) {
		logger.RecordChannelMessage("raw_books", len(payload))
	} else if p.ctx.Err() == nil {
		metrics.EmitDropMetric(p.log, metrics.DropMetricBookRaw, p.venue.Name(), it.Name(), "raw")
		log.Warn("raw channel is full, dropping snapshot")
	}
}
