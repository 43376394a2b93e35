package depth

import (
	"math"

	"depthflow/market"
)

// DepthLevel is one rung of a cumulative depth ladder. PctDrop is the
// absolute distance from the top of the side in percent, regardless of
// which side is being walked.
type DepthLevel struct {
	Price      float64
	Volume     float64
	Cumulative float64
	PctDrop    float64
}

// Ladder is a lazy, non-restartable iterator over the cumulative depth of
// one book side, bounded by maxLevels.
type Ladder struct {
	levels []market.PriceLevel
	top    float64
	max    int
	next   int
	cum    float64
}

// NewLadder builds a ladder over the given side. maxLevels <= 0 means no
// bound beyond the side itself.
func NewLadder(levels []market.PriceLevel, maxLevels int) *Ladder {
	l := &Ladder{levels: levels, max: maxLevels}
	if maxLevels <= 0 || maxLevels > len(levels) {
		l.max = len(levels)
	}
	if len(levels) > 0 {
		l.top = levels[0].Price
	}
	return l
}

// Next yields the following rung, or false when the ladder is exhausted.
func (l *Ladder) Next() (DepthLevel, bool) {
	if l.next >= l.max {
		return DepthLevel{}, false
	}
	lvl := l.levels[l.next]
	l.next++
	l.cum += lvl.Volume
	return DepthLevel{
		Price:      lvl.Price,
		Volume:     lvl.Volume,
		Cumulative: l.cum,
		PctDrop:    math.Abs(l.top-lvl.Price) / l.top * 100.0,
	}, true
}

// Remaining reports how many rungs have not been yielded yet.
func (l *Ladder) Remaining() int {
	return l.max - l.next
}
