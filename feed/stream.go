package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"depthflow/config"
	"depthflow/internal/channel"
	"depthflow/internal/metrics"
	"depthflow/logger"
	"depthflow/market"
	"depthflow/parser"
)

const defaultReconnectDelay = 5 * time.Second

// StreamReader maintains a websocket subscription for every configured
// instrument of one venue. The wire dialect (subscribe message, heartbeat,
// payload filter) comes from the parser registry; venues without a dialect
// cannot be streamed.
type StreamReader struct {
	cfg      *config.Config
	entry    config.VenueFeedConfig
	venue    market.Venue
	dialect  parser.StreamDialect
	channels *channel.Channels

	ctx     context.Context
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	log     *logger.Log
}

// NewStreamReader creates a websocket reader for one feed entry.
func NewStreamReader(cfg *config.Config, entry config.VenueFeedConfig, reg *parser.Registry, ch *channel.Channels) (*StreamReader, error) {
	venue := entry.FeedVenue()
	if market.VenueConfigFor(venue).WSURL == "" {
		return nil, fmt.Errorf("venue %s has no stream endpoint", venue.Name())
	}
	dialect, ok := reg.Dialect(venue)
	if !ok {
		return nil, fmt.Errorf("venue %s has no stream dialect", venue.Name())
	}

	s := &StreamReader{
		cfg:      cfg,
		entry:    entry,
		venue:    venue,
		dialect:  dialect,
		channels: ch,
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
	}

	s.log.WithComponent("stream_feed").WithFields(logger.Fields{
		"venue": venue.Name(),
		"url":   market.VenueConfigFor(venue).WSURL,
	}).Info("stream reader initialized")

	return s, nil
}

func (s *StreamReader) Name() string { return s.venue.Name() + "_stream" }

// Start opens one connection per configured instrument.
func (s *StreamReader) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("stream reader already running")
	}
	s.running = true
	s.ctx = ctx
	s.mu.Unlock()

	instruments := s.entry.FeedInstruments()
	if len(instruments) == 0 {
		return fmt.Errorf("no instruments configured for %s", s.venue.Name())
	}

	for _, it := range instruments {
		s.wg.Add(1)
		go s.runStream(it)
	}

	s.log.WithComponent("stream_feed").WithFields(logger.Fields{
		"venue":       s.venue.Name(),
		"instruments": len(instruments),
	}).Info("stream reader started")
	return nil
}

// Stop waits for the stream loops to exit.
func (s *StreamReader) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.log.WithComponent("stream_feed").WithFields(logger.Fields{"venue": s.venue.Name()}).Info("stopping stream reader")
	s.wg.Wait()
	s.log.WithComponent("stream_feed").WithFields(logger.Fields{"venue": s.venue.Name()}).Info("stream reader stopped")
}

// runStream reconnects forever until the context is cancelled.
func (s *StreamReader) runStream(it market.InstrumentType) {
	defer s.wg.Done()

	log := s.log.WithComponent("stream_feed").WithFields(logger.Fields{
		"venue":      s.venue.Name(),
		"instrument": it.Name(),
	})

	for {
		select {
		case <-s.ctx.Done():
			log.Info("stream loop stopped due to context cancellation")
			return
		default:
		}

		if err := s.connectAndRead(it, log); err != nil {
			log.WithError(err).Warn("websocket session ended")
		}
		s.waitForReconnect(log)
	}
}

func (s *StreamReader) connectAndRead(it market.InstrumentType, log *logger.Entry) error {
	url := market.VenueConfigFor(s.venue).WSURL

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(s.ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	if sub := s.dialect.SubscribeMessage(s.entry.SymbolFor(it)); len(sub) > 0 {
		if err := conn.WriteMessage(websocket.TextMessage, sub); err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
	}
	log.Info("websocket connected")

	sessionCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go s.heartbeatLoop(sessionCtx, conn, log)

	return s.readMessages(conn, it, log)
}

// heartbeatLoop keeps the connection alive with the dialect's message when
// it defines one, falling back to a protocol-level ping otherwise.
func (s *StreamReader) heartbeatLoop(ctx context.Context, conn *websocket.Conn, log *logger.Entry) {
	interval := s.dialect.HeartbeatInterval()
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var err error
			if hb := s.dialect.HeartbeatMessage(); len(hb) > 0 {
				err = conn.WriteMessage(websocket.TextMessage, hb)
			} else {
				err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			}
			if err != nil {
				log.WithError(err).Debug("heartbeat write failed")
				return
			}
		}
	}
}

func (s *StreamReader) readMessages(conn *websocket.Conn, it market.InstrumentType, log *logger.Entry) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		default:
		}

		_, payload, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if !s.dialect.Filter(payload) {
			continue
		}

		msg := channel.RawBookMessage{
			FetchID:    uuid.New(),
			Venue:      s.venue,
			Instrument: it,
			Source:     channel.SourceWS,
			Received:   time.Now().UTC(),
			Payload:    payload,
		}
		if s.channels.SendRaw(s.ctx, msg) {
			logger.RecordChannelMessage("raw_books", len(payload))
		} else if s.ctx.Err() == nil {
			metrics.EmitDropMetric(s.log, metrics.DropMetricBookRaw, s.venue.Name(), it.Name(), "stream")
		}
	}
}

func (s *StreamReader) waitForReconnect(log *logger.Entry) {
	delay := defaultReconnectDelay
	log.WithFields(logger.Fields{"delay": delay.String()}).Info("waiting before reconnect")
	select {
	case <-s.ctx.Done():
	case <-time.After(delay):
	}
}
