package engine

import (
	"math"

	"depthflow/market"
)

// adjustForInstrument maps a raw walk impact and base fee onto the
// instrument's effective economics. The returned pair feeds the threshold
// comparison; the exit price stays on the raw impact.
func adjustForInstrument(
	inst market.InstrumentType,
	rawImpact, baseFees float64,
	data *market.InstrumentData,
	isShort bool,
	entry float64,
	cfg market.TradingConfig,
) (adjImpact, adjFees float64) {
	adjImpact = rawImpact
	adjFees = baseFees

	switch inst {
	case market.Spot:
		// Pure order book impact.

	case market.Margin:
		// Hourly borrow interest over the expected hold.
		adjFees += math.Abs(data.InterestRateLong) * cfg.MarginHoldHours

	case market.Perpetual:
		// One funding interval may be crossed during the hold.
		adjFees += math.Abs(data.FundingRate) * 100.0

	case market.Future:
		// Basis converges to zero at expiry; count it only when it
		// works in our direction.
		favorable := (!isShort && data.Basis < 0) || (isShort && data.Basis > 0)
		if favorable && entry != 0 {
			adjImpact += math.Abs(data.Basis / entry * 100.0)
		}

	case market.Option:
		// Delta scales the exposure; near-zero delta means the quote is
		// not tracking the underlying, so leave the impact alone.
		if math.Abs(data.Delta) > cfg.OptionDeltaFloor {
			adjImpact *= math.Abs(data.Delta)
		}
		adjFees += math.Abs(data.Theta) * cfg.OptionHoldHours / 24.0

	case market.Inverse:
		// BTC-denominated P&L compounds with the price move on large
		// impacts.
		if adjImpact > cfg.InverseAmpThresholdPct {
			adjImpact *= cfg.InverseAmplification
		}
		adjFees += math.Abs(data.FundingRate) * 100.0

	case market.LeveragedToken:
		// Token tracks the underlying at its target leverage;
		// rebalancing costs are internal to the token.
		adjImpact *= data.TargetLeverage
	}

	return adjImpact, adjFees
}
