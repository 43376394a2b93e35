package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"depthflow/cache"
	"depthflow/internal/channel"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/parser"
)

// Ingestor drains the raw channel with a pool of workers, parsing each
// payload with the venue's parser and writing the resulting book to the
// cache. Payloads the parsers reject are counted and dropped; one bad
// message never stalls the pipeline.
type Ingestor struct {
	channels *channel.Channels
	registry *parser.Registry
	books    *cache.BookCache
	workers  int

	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	log     *logger.Log
}

// NewIngestor creates an ingestor with the given worker count.
func NewIngestor(ch *channel.Channels, reg *parser.Registry, books *cache.BookCache, workers int) *Ingestor {
	if workers <= 0 {
		workers = 1
	}
	return &Ingestor{
		channels: ch,
		registry: reg,
		books:    books,
		workers:  workers,
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
	}
}

func (in *Ingestor) Name() string { return "ingest" }

// Start launches the worker pool.
func (in *Ingestor) Start(ctx context.Context) error {
	in.mu.Lock()
	if in.running {
		in.mu.Unlock()
		return fmt.Errorf("ingestor already running")
	}
	in.running = true
	in.ctx = ctx
	in.mu.Unlock()

	for i := 0; i < in.workers; i++ {
		in.wg.Add(1)
		go in.worker(i)
	}

	in.log.WithComponent("ingest").WithFields(logger.Fields{
		"workers": in.workers,
	}).Info("ingestor started")
	return nil
}

// Stop waits for the workers to drain. Workers exit when the context is
// cancelled or the raw channel is closed.
func (in *Ingestor) Stop() {
	in.mu.Lock()
	in.running = false
	in.mu.Unlock()

	in.log.WithComponent("ingest").Info("stopping ingestor")
	in.wg.Wait()
	in.log.WithComponent("ingest").Info("ingestor stopped")
}

func (in *Ingestor) worker(id int) {
	defer in.wg.Done()

	log := in.log.WithComponent("ingest").WithFields(logger.Fields{"worker": id})

	for {
		select {
		case <-in.ctx.Done():
			log.Info("worker stopped due to context cancellation")
			return
		case msg, ok := <-in.channels.Raw:
			if !ok {
				log.Info("raw channel closed, worker exiting")
				return
			}
			in.process(msg, log)
		}
	}
}

func (in *Ingestor) process(msg channel.RawBookMessage, log *logger.Entry) {
	p, ok := in.registry.Lookup(msg.Venue)
	if !ok {
		logger.IncrementParseFailure()
		metrics.EmitDropMetric(in.log, metrics.DropMetricBookRaw, msg.Venue.Name(), msg.Instrument.Name(), "parse")
		log.WithFields(logger.Fields{"venue": msg.Venue.Name()}).Warn("no parser registered for venue")
		return
	}

	start := time.Now()
	book, err := parser.ParseBook(p, msg.Payload, msg.Instrument)
	if err != nil {
		logger.IncrementParseFailure()
		metrics.EmitDropMetric(in.log, metrics.DropMetricBookRaw, msg.Venue.Name(), msg.Instrument.Name(), "parse")
		log.WithFields(logger.Fields{
			"venue":      msg.Venue.Name(),
			"instrument": msg.Instrument.Name(),
			"fetch_id":   msg.FetchID.String(),
			"source":     msg.Source,
			"bytes":      len(msg.Payload),
		}).WithError(err).Warn("failed to parse book payload")
		return
	}

	in.books.UpdateBook(msg.Venue, msg.Instrument, book)
	logger.IncrementBookUpdate(len(book.Bids) + len(book.Asks))

	elapsed := time.Since(start)
	if elapsed > time.Millisecond {
		log.WithFields(logger.Fields{
			"venue":       msg.Venue.Name(),
			"duration_us": elapsed.Microseconds(),
		}).Debug("slow parse")
	}
}
