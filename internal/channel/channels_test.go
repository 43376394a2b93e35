package channel

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"depthflow/market"
)

func rawMsg() RawBookMessage {
	return RawBookMessage{
		FetchID:    uuid.New(),
		Venue:      market.Binance,
		Instrument: market.Spot,
		Source:     SourceRest,
		Received:   time.Now(),
		Payload:    []byte(`{"bids":[["1","1"]],"asks":[["2","1"]]}`),
	}
}

func TestSendRawDropsWhenFull(t *testing.T) {
	c := NewChannels(2)
	defer c.Close()
	ctx := context.Background()

	if !c.SendRaw(ctx, rawMsg()) || !c.SendRaw(ctx, rawMsg()) {
		t.Fatal("sends into an empty buffer should succeed")
	}
	if c.SendRaw(ctx, rawMsg()) {
		t.Error("send into a full buffer should drop")
	}

	stats := c.GetStats()
	if stats.RawSent != 2 || stats.RawDropped != 1 {
		t.Errorf("stats = %+v, want 2 sent / 1 dropped", stats)
	}
	if stats.RawLength != 2 || stats.RawCap != 2 {
		t.Errorf("occupancy = %d/%d, want 2/2", stats.RawLength, stats.RawCap)
	}
}

func TestSendRawCancelledContext(t *testing.T) {
	c := NewChannels(1)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.SendRaw(ctx, rawMsg())

	// A cancelled send is not a drop.
	if stats := c.GetStats(); stats.RawDropped != 0 {
		t.Errorf("dropped = %d, want 0", stats.RawDropped)
	}
}

func TestRawRoundTrip(t *testing.T) {
	c := NewChannels(1)
	defer c.Close()

	msg := rawMsg()
	if !c.SendRaw(context.Background(), msg) {
		t.Fatal("send failed")
	}
	got := <-c.Raw
	if got.FetchID != msg.FetchID || got.Venue != market.Binance || got.Source != SourceRest {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
