package parser

import (
	"bytes"
	"fmt"
	"time"

	"depthflow/market"
)

// GenericParser handles the common {"bids":[[p,v],...],"asks":[...]}
// shape with quoted or bare numbers, scoping into a "result" or "data"
// envelope when one is present. Binance REST and websocket partial
// payloads and deribit's jsonrpc envelopes all land here.
type GenericParser struct {
	venue market.Venue
}

// NewGeneric returns a generic pair-array parser for a venue.
func NewGeneric(v market.Venue) *GenericParser {
	return &GenericParser{venue: v}
}

func (g *GenericParser) Venue() market.Venue { return g.venue }

func (g *GenericParser) Parse(data []byte, _ market.InstrumentType, sink LevelSink) error {
	scope := data
	if env := objectAfterKey(data, "result"); env != nil {
		scope = env
	} else if env := objectAfterKey(data, "data"); env != nil {
		scope = env
	}

	bids := arrayAfterKey(scope, "bids")
	asks := arrayAfterKey(scope, "asks")
	if bids == nil && asks == nil {
		// Binance websocket partial depth abbreviates the keys.
		bids = arrayAfterKey(scope, "b")
		asks = arrayAfterKey(scope, "a")
	}
	if bids == nil && asks == nil {
		return ErrMalformed
	}
	if bids != nil {
		if err := scanPairs(bids, sink.Bid); err != nil {
			return err
		}
	}
	if asks != nil {
		if err := scanPairs(asks, sink.Ask); err != nil {
			return err
		}
	}
	return nil
}

// DeribitParser is the generic parser plus deribit's jsonrpc stream
// dialect.
type DeribitParser struct {
	GenericParser
}

// NewDeribit returns the deribit parser.
func NewDeribit() *DeribitParser {
	return &DeribitParser{GenericParser{venue: market.Deribit}}
}

func (d *DeribitParser) SubscribeMessage(symbol string) []byte {
	return []byte(fmt.Sprintf(
		`{"jsonrpc":"2.0","id":1,"method":"public/subscribe","params":{"channels":["book.%s.100ms"]}}`,
		symbol))
}

func (d *DeribitParser) HeartbeatMessage() []byte {
	return []byte(`{"jsonrpc":"2.0","id":0,"method":"public/test"}`)
}

func (d *DeribitParser) HeartbeatInterval() time.Duration { return 30 * time.Second }

// Filter passes only book subscription notifications; subscribe acks and
// test responses are dropped before parsing.
func (d *DeribitParser) Filter(payload []byte) bool {
	return bytes.Contains(payload, []byte(`"channel":"book.`))
}
