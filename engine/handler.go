// Package engine turns on-chain flow signals into deterministic trade
// decisions against the cached books. The decision rule is fixed: trade
// only when the instrument-adjusted impact clears the adjusted fees times
// the configured multiple.
package engine

import (
	"fmt"
	"math"
	"sync"
	"time"

	"depthflow/cache"
	"depthflow/depth"
	"depthflow/market"
)

// SignalHandler evaluates signals against one cache. Processing is
// stateless per call; the only mutable state is the latency counters.
type SignalHandler struct {
	cache *cache.BookCache
	cfg   market.TradingConfig

	mu        sync.Mutex
	processed uint64
	totalNs   int64
}

// NewSignalHandler wires a handler to a cache with the given thresholds.
func NewSignalHandler(c *cache.BookCache, cfg market.TradingConfig) *SignalHandler {
	return &SignalHandler{cache: c, cfg: cfg}
}

// Config returns the handler's trading config.
func (h *SignalHandler) Config() market.TradingConfig { return h.cfg }

// ProcessSignal evaluates a signal against the venue's spot book.
func (h *SignalHandler) ProcessSignal(sig market.BlockchainSignal) market.TradeDecision {
	return h.Process(sig, market.Spot)
}

// Process evaluates a signal against one (venue, instrument) market.
// Every return path stamps ProcessingTime; Reason is always populated.
func (h *SignalHandler) Process(sig market.BlockchainSignal, inst market.InstrumentType) market.TradeDecision {
	start := time.Now()
	d := market.TradeDecision{IsShort: sig.IsInflow, Signal: sig}

	v, ok := market.VenueFromName(sig.VenueName)
	if !ok {
		d.Reason = "Unknown venue: " + sig.VenueName
		return h.finish(d, start)
	}
	d.Venue = v

	if sig.BaseQuantity < h.cfg.MinSignalQuantity {
		d.Reason = fmt.Sprintf("Deposit too small: %.2f < %.2f required",
			sig.BaseQuantity, h.cfg.MinSignalQuantity)
		return h.finish(d, start)
	}

	data := h.cache.Get(v, inst)

	// A never-written slot has a zero timestamp and reads as ancient,
	// so missing markets surface as stale.
	maxAge := time.Duration(h.cfg.MaxBookAgeMS) * time.Millisecond
	if data.Age() > maxAge {
		d.Reason = fmt.Sprintf("Order book stale (>%dms old)", h.cfg.MaxBookAgeMS)
		return h.finish(d, start)
	}

	if !data.IsValid() {
		d.Reason = "Order book not available"
		return h.finish(d, start)
	}

	if sig.IsInflow {
		// Deposit: the seller eats bids, we front-run short.
		d.Impact = depth.SellImpact(data.Book.Bids, sig.BaseQuantity)
		d.EntryPrice = data.Book.BestBid()
	} else {
		d.Impact = depth.BuyImpact(data.Book.Asks, sig.BaseQuantity)
		d.EntryPrice = data.Book.BestAsk()
	}

	if d.Impact.VolumeRemaining > 0 {
		d.Reason = fmt.Sprintf("Insufficient depth: only %.2f of %.2f fillable",
			d.Impact.VolumeFilled, sig.BaseQuantity)
		return h.finish(d, start)
	}

	fees := h.venueFees(v)
	rawImpact := math.Abs(d.Impact.PriceDropPct)
	adjImpact, adjFees := adjustForInstrument(inst, rawImpact, fees, &data, d.IsShort, d.EntryPrice, h.cfg)

	minRequired := adjFees * h.cfg.MinImpactMultiple
	if adjImpact < minRequired {
		d.Reason = fmt.Sprintf("[%s] Impact %.4f%% < required %.4f%% (%.0fx fees)",
			inst.Name(), adjImpact, minRequired, h.cfg.MinImpactMultiple)
		return h.finish(d, start)
	}

	d.ShouldTrade = true
	// The exit projects the raw walk move, not the adjusted one.
	d.ExitPrice = depth.ExitPrice(d.EntryPrice, d.Impact.PriceDropPct, d.IsShort, h.cfg.TakeProfitRatio)
	d.Reason = fmt.Sprintf("[%s] TRADE: Impact %.4f%% > %.4f%% | Profit: +%.2f%%",
		inst.Name(), adjImpact, minRequired, adjImpact-adjFees)
	return h.finish(d, start)
}

// QuickFilter is the allocation-free pre-screen: known venue and a
// quantity worth looking at. Use it before Process on hot ingest paths.
func (h *SignalHandler) QuickFilter(venueName string, qty float64) bool {
	if qty < h.cfg.MinSignalQuantity {
		return false
	}
	_, ok := market.VenueFromName(venueName)
	return ok
}

// venueFees returns the venue taker fee in percent, falling back to the
// configured default when the table carries nothing usable.
func (h *SignalHandler) venueFees(v market.Venue) float64 {
	fees := market.VenueConfigFor(v).TakerFee * 100.0
	if fees < 0.01 {
		return h.cfg.DefaultFeesPct
	}
	return fees
}

func (h *SignalHandler) finish(d market.TradeDecision, start time.Time) market.TradeDecision {
	d.ProcessingTime = time.Since(start)
	h.mu.Lock()
	h.processed++
	h.totalNs += d.ProcessingTime.Nanoseconds()
	h.mu.Unlock()
	return d
}

// Processed returns how many signals this handler has evaluated.
func (h *SignalHandler) Processed() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.processed
}

// AvgProcessingNs returns the mean per-signal latency in nanoseconds.
func (h *SignalHandler) AvgProcessingNs() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.processed == 0 {
		return 0
	}
	return h.totalNs / int64(h.processed)
}
