package depth

import (
	"math"

	"depthflow/market"
)

// IsProfitable reports whether the move clears the fee times the safety
// multiple. The comparison is inclusive.
func IsProfitable(impactPct, feesPct, safetyMultiple float64) bool {
	return math.Abs(impactPct) >= feesPct*safetyMultiple
}

// ExpectedProfitPct is the projected move net of fees.
func ExpectedProfitPct(impactPct, feesPct float64) float64 {
	return math.Abs(impactPct) - feesPct
}

// LeveragedReturn scales a positive net move by position leverage. A move
// that does not clear fees returns 0, never a levered loss.
func LeveragedReturn(profitPct float64, leverage int) float64 {
	if profitPct <= 0 {
		return 0
	}
	return profitPct * float64(leverage)
}

// ExitPrice projects the take-profit exit from the entry and the raw walk
// impact. Shorts exit below entry, longs above; tpRatio is the fraction of
// the projected move captured.
func ExitPrice(entry, impactPct float64, isShort bool, tpRatio float64) float64 {
	move := math.Abs(impactPct) * tpRatio / 100.0
	if isShort {
		return entry * (1.0 - move)
	}
	return entry * (1.0 + move)
}

// TotalDepth sums the resting volume across all levels of one side.
func TotalDepth(levels []market.PriceLevel) float64 {
	total := 0.0
	for _, lvl := range levels {
		total += lvl.Volume
	}
	return total
}

// MinBaseForImpact returns the base quantity that must be sold into the
// bid ladder before the touched price drops targetPct below the top.
func MinBaseForImpact(bids []market.PriceLevel, targetPct float64) float64 {
	if len(bids) == 0 {
		return 0
	}
	floor := bids[0].Price * (1.0 - targetPct/100.0)
	total := 0.0
	for _, lvl := range bids {
		if lvl.Price <= floor {
			break
		}
		total += lvl.Volume
	}
	return total
}

// VWAPForVolume is the volume-weighted average price of filling the given
// quantity against one side, or the top price when nothing fills.
func VWAPForVolume(levels []market.PriceLevel, volume float64) float64 {
	if len(levels) == 0 {
		return 0
	}
	if volume <= 0 {
		return levels[0].Price
	}
	return fill(levels, volume).VWAP
}

// TradeAnalysis is the monitoring summary for a hypothetical trade
// against one book.
type TradeAnalysis struct {
	Impact          market.PriceImpact
	EntryPrice      float64
	ExitPrice       float64
	FeasibleDepth   float64
	Profitable      bool
	ExpectedProfit  float64
	LeveragedProfit float64
}

// AnalyzeTrade evaluates a hypothetical sell (into bids) or buy (into
// asks) of qty base units using the config's default fee. It is a
// read-only convenience for monitoring surfaces; the engine applies its
// own per-venue fees and instrument adjustments.
func AnalyzeTrade(book *market.OrderBook, qty float64, isSell bool, cfg market.TradingConfig) TradeAnalysis {
	var out TradeAnalysis
	if isSell {
		out.Impact = SellImpact(book.Bids, qty)
		out.FeasibleDepth = TotalDepth(book.Bids)
		out.EntryPrice = book.BestBid()
	} else {
		out.Impact = BuyImpact(book.Asks, qty)
		out.FeasibleDepth = TotalDepth(book.Asks)
		out.EntryPrice = book.BestAsk()
	}
	out.Profitable = IsProfitable(out.Impact.PriceDropPct, cfg.DefaultFeesPct, cfg.MinImpactMultiple)
	out.ExpectedProfit = ExpectedProfitPct(out.Impact.PriceDropPct, cfg.DefaultFeesPct)
	out.LeveragedProfit = LeveragedReturn(out.ExpectedProfit, 1)
	out.ExitPrice = ExitPrice(out.EntryPrice, out.Impact.PriceDropPct, isSell, cfg.TakeProfitRatio)
	return out
}
