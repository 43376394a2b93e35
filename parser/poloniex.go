package parser

import (
	"bytes"
	"fmt"
	"time"

	"depthflow/market"
)

// PoloniexParser handles poloniex's two book shapes: the REST flat
// alternating arrays {"bids":["p","v","p","v",...]} and the websocket
// envelope {"channel":"book","data":[{"bids":[["p","v"],...],...}]}.
type PoloniexParser struct{}

// NewPoloniex returns the poloniex parser.
func NewPoloniex() *PoloniexParser { return &PoloniexParser{} }

func (p *PoloniexParser) Venue() market.Venue { return market.Poloniex }

func (p *PoloniexParser) Parse(data []byte, _ market.InstrumentType, sink LevelSink) error {
	bids := arrayAfterKey(data, "bids")
	asks := arrayAfterKey(data, "asks")
	if bids == nil && asks == nil {
		return ErrMalformed
	}
	if bids != nil {
		if err := scanSide(bids, sink.Bid); err != nil {
			return err
		}
	}
	if asks != nil {
		if err := scanSide(asks, sink.Ask); err != nil {
			return err
		}
	}
	return nil
}

// scanSide picks pair or flat form off the array's first element.
func scanSide(arr []byte, emit func(price, volume float64)) error {
	if nestedArray(arr) {
		return scanPairs(arr, emit)
	}
	return scanFlatPairs(arr, emit)
}

func (p *PoloniexParser) SubscribeMessage(symbol string) []byte {
	return []byte(fmt.Sprintf(
		`{"event":"subscribe","channel":["book"],"symbols":["%s"]}`, symbol))
}

func (p *PoloniexParser) HeartbeatMessage() []byte {
	return []byte(`{"event":"ping"}`)
}

func (p *PoloniexParser) HeartbeatInterval() time.Duration { return 25 * time.Second }

func (p *PoloniexParser) Filter(payload []byte) bool {
	return bytes.Contains(payload, []byte(`"channel":"book"`))
}
