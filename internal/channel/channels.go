// Package channel carries raw venue payloads from the feeds to the
// ingest workers over a bounded buffer. Senders never block: when the
// buffer is full the message is dropped and counted, so a slow consumer
// degrades freshness instead of stalling a websocket read loop.
package channel

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"depthflow/logger"
	"depthflow/market"
)

// Source identifies how a raw message was obtained.
const (
	SourceRest = "rest"
	SourceWS   = "ws"
	SourceSDK  = "sdk"
)

// RawBookMessage is one venue payload awaiting parsing.
type RawBookMessage struct {
	FetchID    uuid.UUID
	Venue      market.Venue
	Instrument market.InstrumentType
	Source     string
	Received   time.Time
	Payload    []byte
}

type ChannelStats struct {
	RawSent    int64
	RawDropped int64
	RawLength  int
	RawCap     int
}

type Channels struct {
	Raw chan RawBookMessage

	stats      ChannelStats
	statsMutex sync.RWMutex
	log        *logger.Log
}

func NewChannels(rawBufferSize int) *Channels {
	log := logger.GetLogger()
	c := &Channels{
		Raw: make(chan RawBookMessage, rawBufferSize),
		log: log,
	}

	log.WithComponent("channels").WithFields(logger.Fields{
		"raw_buffer_size": rawBufferSize,
	}).Info("Raw book channel initialized")

	return c
}

func (c *Channels) Close() {
	close(c.Raw)
	c.log.WithComponent("channels").Info("Raw book channel closed")
}

func (c *Channels) incrementRawSent() {
	c.statsMutex.Lock()
	c.stats.RawSent++
	c.statsMutex.Unlock()
}

func (c *Channels) incrementRawDropped() {
	c.statsMutex.Lock()
	c.stats.RawDropped++
	c.statsMutex.Unlock()
}

// SendRaw enqueues a message without blocking. It returns false when the
// context is done or the buffer is full; only the latter counts as a
// drop.
func (c *Channels) SendRaw(ctx context.Context, msg RawBookMessage) bool {
	select {
	case c.Raw <- msg:
		c.incrementRawSent()
		return true
	case <-ctx.Done():
		return false
	default:
		c.incrementRawDropped()
		return false
	}
}

func (c *Channels) GetStats() ChannelStats {
	c.statsMutex.RLock()
	stats := c.stats
	c.statsMutex.RUnlock()
	stats.RawLength = len(c.Raw)
	stats.RawCap = cap(c.Raw)
	return stats
}
