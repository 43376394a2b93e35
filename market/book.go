package market

import "time"

// MaxBookLevels caps the number of levels stored per book side.
const MaxBookLevels = 100

// PriceLevel is one resting price point of an order book side. Price and
// Volume are strictly positive for stored levels.
type PriceLevel struct {
	Price  float64
	Volume float64
}

// OrderBook is a point-in-time snapshot of one market's book. Bids are
// sorted descending (best first), asks ascending (best first). Timestamp
// and Sequence are assigned by the cache on write.
type OrderBook struct {
	Bids      []PriceLevel
	Asks      []PriceLevel
	Timestamp time.Time
	Sequence  uint64
}

// IsValid reports whether both sides carry at least one level.
func (b *OrderBook) IsValid() bool {
	return len(b.Bids) > 0 && len(b.Asks) > 0
}

// BestBid returns the highest bid price, or 0 when the side is empty.
func (b *OrderBook) BestBid() float64 {
	if len(b.Bids) == 0 {
		return 0
	}
	return b.Bids[0].Price
}

// BestAsk returns the lowest ask price, or 0 when the side is empty.
func (b *OrderBook) BestAsk() float64 {
	if len(b.Asks) == 0 {
		return 0
	}
	return b.Asks[0].Price
}

// Spread returns ask minus bid, or 0 for an invalid book.
func (b *OrderBook) Spread() float64 {
	if !b.IsValid() {
		return 0
	}
	return b.Asks[0].Price - b.Bids[0].Price
}

// SpreadPct returns the spread as a percentage of the mid price.
func (b *OrderBook) SpreadPct() float64 {
	mid := b.MidPrice()
	if mid == 0 {
		return 0
	}
	return b.Spread() / mid * 100.0
}

// MidPrice returns the bid/ask midpoint, or 0 for an invalid book.
func (b *OrderBook) MidPrice() float64 {
	if !b.IsValid() {
		return 0
	}
	return (b.Bids[0].Price + b.Asks[0].Price) / 2.0
}

// BidDepth sums bid volume over the top n levels (all levels when n <= 0
// or exceeds the side).
func (b *OrderBook) BidDepth(levels int) float64 {
	return sideDepth(b.Bids, levels)
}

// AskDepth sums ask volume over the top n levels.
func (b *OrderBook) AskDepth(levels int) float64 {
	return sideDepth(b.Asks, levels)
}

func sideDepth(side []PriceLevel, levels int) float64 {
	if levels <= 0 || levels > len(side) {
		levels = len(side)
	}
	total := 0.0
	for i := 0; i < levels; i++ {
		total += side[i].Volume
	}
	return total
}

// Age returns the time elapsed since the book was written to the cache.
// A zero timestamp yields a very large age, which reads as stale.
func (b *OrderBook) Age() time.Duration {
	return time.Since(b.Timestamp)
}

// Clone returns a deep copy with freshly allocated level slices.
func (b *OrderBook) Clone() OrderBook {
	out := OrderBook{
		Timestamp: b.Timestamp,
		Sequence:  b.Sequence,
	}
	if len(b.Bids) > 0 {
		out.Bids = make([]PriceLevel, len(b.Bids))
		copy(out.Bids, b.Bids)
	}
	if len(b.Asks) > 0 {
		out.Asks = make([]PriceLevel, len(b.Asks))
		copy(out.Asks, b.Asks)
	}
	return out
}
