package market

import "time"

// PriceImpact is the result of walking one side of a book with a given
// quantity. PriceDropPct is positive for sell walks and negative for buy
// walks. VolumeRemaining > 0 means the side ran out of depth.
type PriceImpact struct {
	StartPrice      float64
	EndPrice        float64
	VWAP            float64
	PriceDropPct    float64
	VolumeFilled    float64
	VolumeRemaining float64
	TotalCost       float64
	LevelsEaten     int
}

// TradeDecision is the outcome of processing one signal against one
// cached market. Reason is populated on both accept and reject.
type TradeDecision struct {
	ShouldTrade    bool
	IsShort        bool
	Venue          Venue
	EntryPrice     float64
	ExitPrice      float64
	Impact         PriceImpact
	Reason         string
	ProcessingTime time.Duration
	Signal         BlockchainSignal
}

// Leverage returns the maximum leverage the decision's venue offers.
func (d *TradeDecision) Leverage() int {
	return VenueConfigFor(d.Venue).MaxLeverage
}

// ExpectedReturn is the net move in percent after fees, using the raw
// walk impact.
func (d *TradeDecision) ExpectedReturn(feesPct float64) float64 {
	impact := d.Impact.PriceDropPct
	if impact < 0 {
		impact = -impact
	}
	return impact - feesPct
}
