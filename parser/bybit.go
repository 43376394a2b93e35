package parser

import "depthflow/market"

// BybitParser handles the v5 UTA book shape the SDK result re-marshals
// to: {"s":"BTCUSDT","b":[["p","v"],...],"a":[["p","v"],...]}, with or
// without a "result" envelope.
type BybitParser struct{}

// NewBybit returns the bybit parser.
func NewBybit() *BybitParser { return &BybitParser{} }

func (b *BybitParser) Venue() market.Venue { return market.Bybit }

func (b *BybitParser) Parse(data []byte, _ market.InstrumentType, sink LevelSink) error {
	scope := data
	if env := objectAfterKey(data, "result"); env != nil {
		scope = env
	}
	bids := arrayAfterKey(scope, "b")
	asks := arrayAfterKey(scope, "a")
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
