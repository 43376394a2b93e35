// Package depth implements the deterministic price-impact math: ladder
// walks, exit pricing and the depth helpers the engine and the dashboard
// build on. Everything here is pure float64 arithmetic with no locking
// and no I/O.
package depth

import "depthflow/market"

// SellImpact walks the bid ladder top-down with a market sell of qty base
// units. PriceDropPct is positive; VolumeRemaining > 0 means the ladder
// ran out of depth.
func SellImpact(bids []market.PriceLevel, qty float64) market.PriceImpact {
	if len(bids) == 0 || qty <= 0 {
		return market.PriceImpact{VolumeRemaining: qty}
	}
	imp := fill(bids, qty)
	imp.PriceDropPct = (imp.StartPrice - imp.EndPrice) / imp.StartPrice * 100.0
	return imp
}

// BuyImpact walks the ask ladder bottom-up with a market buy of qty base
// units. PriceDropPct is negative so callers can read direction from the
// sign.
func BuyImpact(asks []market.PriceLevel, qty float64) market.PriceImpact {
	if len(asks) == 0 || qty <= 0 {
		return market.PriceImpact{VolumeRemaining: qty}
	}
	imp := fill(asks, qty)
	imp.PriceDropPct = -((imp.EndPrice - imp.StartPrice) / imp.StartPrice * 100.0)
	return imp
}

func fill(levels []market.PriceLevel, qty float64) market.PriceImpact {
	imp := market.PriceImpact{
		StartPrice: levels[0].Price,
		EndPrice:   levels[0].Price,
	}
	remaining := qty
	for _, lvl := range levels {
		if remaining <= 0 {
			break
		}
		take := lvl.Volume
		if remaining < take {
			take = remaining
		}
		imp.TotalCost += lvl.Price * take
		remaining -= take
		imp.EndPrice = lvl.Price
		imp.LevelsEaten++
	}
	imp.VolumeFilled = qty - remaining
	imp.VolumeRemaining = remaining
	if imp.VolumeFilled > 0 {
		imp.VWAP = imp.TotalCost / imp.VolumeFilled
	} else {
		imp.VWAP = imp.StartPrice
	}
	return imp
}
