package parser

import (
	"bytes"
	"fmt"
	"time"

	"depthflow/market"
)

// MexcParser handles mexc's string pair arrays, both the REST shape and
// the websocket "d" envelope:
// {"c":"spot@public.limit.depth.v3.api@BTCUSDT@20","d":{"bids":[["p","v"],...],...}}.
type MexcParser struct{}

// NewMexc returns the mexc parser.
func NewMexc() *MexcParser { return &MexcParser{} }

func (m *MexcParser) Venue() market.Venue { return market.Mexc }

func (m *MexcParser) Parse(data []byte, _ market.InstrumentType, sink LevelSink) error {
	scope := data
	if env := objectAfterKey(data, "d"); env != nil {
		scope = env
	}
	bids := arrayAfterKey(scope, "bids")
	asks := arrayAfterKey(scope, "asks")
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

func (m *MexcParser) SubscribeMessage(symbol string) []byte {
	return []byte(fmt.Sprintf(
		`{"method":"SUBSCRIPTION","params":["spot@public.limit.depth.v3.api@%s@20"]}`,
		symbol))
}

func (m *MexcParser) HeartbeatMessage() []byte {
	return []byte(`{"method":"PING"}`)
}

func (m *MexcParser) HeartbeatInterval() time.Duration { return 30 * time.Second }

func (m *MexcParser) Filter(payload []byte) bool {
	return bytes.Contains(payload, []byte(`spot@public.limit.depth`))
}
