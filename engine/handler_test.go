package engine

import (
	"math"
	"strings"
	"testing"
	"time"

	"depthflow/cache"
	"depthflow/market"
)

func seedCache() *cache.BookCache {
	c := cache.New()
	// Binance spot: the deep bid ladder with a thin ask side.
	c.Update(market.Binance, market.Spot, market.InstrumentData{
		Book: market.OrderBook{
			Bids: []market.PriceLevel{{Price: 87000, Volume: 10}, {Price: 86950, Volume: 15}, {Price: 86900, Volume: 20}, {Price: 86850, Volume: 25}},
			Asks: []market.PriceLevel{{Price: 87010, Volume: 40}},
		},
	})
	return c
}

func inflow(venue string, qty float64) market.BlockchainSignal {
	return market.BlockchainSignal{
		VenueName:    venue,
		IsInflow:     true,
		BaseQuantity: qty,
		ObservedAt:   time.Now(),
	}
}

func TestProcessUnknownVenue(t *testing.T) {
	h := NewSignalHandler(seedCache(), market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binancex", 50))
	if d.ShouldTrade {
		t.Fatal("unknown venue must not trade")
	}
	if d.Reason != "Unknown venue: binancex" {
		t.Errorf("reason = %q", d.Reason)
	}
	if d.ProcessingTime <= 0 {
		t.Error("processing time not stamped")
	}
}

func TestProcessDepositTooSmall(t *testing.T) {
	h := NewSignalHandler(seedCache(), market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binance", 4.9))
	if d.ShouldTrade {
		t.Fatal("small deposit must not trade")
	}
	if d.Reason != "Deposit too small: 4.90 < 5.00 required" {
		t.Errorf("reason = %q", d.Reason)
	}
	// Zero quantity takes the same path.
	if d := h.ProcessSignal(inflow("binance", 0)); !strings.HasPrefix(d.Reason, "Deposit too small") {
		t.Errorf("zero qty reason = %q", d.Reason)
	}
}

func TestProcessMissingBookIsStale(t *testing.T) {
	h := NewSignalHandler(cache.New(), market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binance", 50))
	if d.Reason != "Order book stale (>5000ms old)" {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestProcessStaleBook(t *testing.T) {
	cfg := market.DefaultTradingConfig()
	cfg.MaxBookAgeMS = 1
	h := NewSignalHandler(seedCache(), cfg)
	time.Sleep(5 * time.Millisecond)
	d := h.ProcessSignal(inflow("binance", 50))
	if d.ShouldTrade {
		t.Fatal("stale book must not trade")
	}
	if d.Reason != "Order book stale (>1ms old)" {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestProcessInvalidBook(t *testing.T) {
	c := cache.New()
	// One-sided book: populated and fresh, but unusable.
	c.UpdateBook(market.Binance, market.Spot, market.OrderBook{
		Bids: []market.PriceLevel{{Price: 87000, Volume: 10}},
	})
	h := NewSignalHandler(c, market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binance", 50))
	if d.Reason != "Order book not available" {
		t.Errorf("reason = %q", d.Reason)
	}
}

// Seed scenario 1: the 0.1724% move does not clear 2x the 0.10% fee.
func TestProcessImpactBelowThreshold(t *testing.T) {
	h := NewSignalHandler(seedCache(), market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binance", 50))
	if d.ShouldTrade {
		t.Fatal("0.1724% impact must not clear a 0.20% threshold")
	}
	if d.Reason != "[spot] Impact 0.1724% < required 0.2000% (2x fees)" {
		t.Errorf("reason = %q", d.Reason)
	}
	if d.Impact.VolumeFilled != 50 || d.Impact.EndPrice != 86850 {
		t.Errorf("impact = %+v", d.Impact)
	}
	if d.EntryPrice != 87000 {
		t.Errorf("entry = %v, want best bid 87000", d.EntryPrice)
	}
}

// Seed scenario 2: the ladder holds 70, the signal wants 200.
func TestProcessInsufficientDepth(t *testing.T) {
	h := NewSignalHandler(seedCache(), market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binance", 200))
	if d.ShouldTrade {
		t.Fatal("must not trade into missing depth")
	}
	if d.Reason != "Insufficient depth: only 70.00 of 200.00 fillable" {
		t.Errorf("reason = %q", d.Reason)
	}
}

// Seed scenario 3 shape: a perpetual long that clears the threshold.
func TestProcessPerpetualAccept(t *testing.T) {
	c := cache.New()
	c.Update(market.Binance, market.Perpetual, market.InstrumentData{
		Book: market.OrderBook{
			Bids: []market.PriceLevel{{Price: 87000, Volume: 40}},
			Asks: []market.PriceLevel{{Price: 87010, Volume: 1}, {Price: 87060, Volume: 1}, {Price: 87200, Volume: 5}},
		},
		FundingRate: 0.00005,
	})
	h := NewSignalHandler(c, market.DefaultTradingConfig())

	sig := market.BlockchainSignal{VenueName: "binance", IsInflow: false, BaseQuantity: 5}
	d := h.Process(sig, market.Perpetual)
	if !d.ShouldTrade {
		t.Fatalf("expected accept, got %q", d.Reason)
	}
	if d.IsShort {
		t.Error("withdrawal should be a long")
	}
	if d.EntryPrice != 87010 {
		t.Errorf("entry = %v, want 87010", d.EntryPrice)
	}
	// Exit projects the raw -0.2184% walk at the 0.8 take-profit ratio.
	if math.Abs(d.ExitPrice-87162.0) > 0.05 {
		t.Errorf("exit = %v, want ~87162.0", d.ExitPrice)
	}
	if !strings.HasPrefix(d.Reason, "[perpetual] TRADE: Impact 0.2184%") {
		t.Errorf("reason = %q", d.Reason)
	}
	if !strings.Contains(d.Reason, "| Profit: +") {
		t.Errorf("reason = %q", d.Reason)
	}
}

// Seed scenario 4: delta shrinks the option's exposure below threshold.
func TestProcessOptionReject(t *testing.T) {
	c := cache.New()
	c.Update(market.Deribit, market.Option, market.InstrumentData{
		Book: market.OrderBook{
			Bids: []market.PriceLevel{{Price: 87000, Volume: 40}},
			Asks: []market.PriceLevel{{Price: 87010, Volume: 1}, {Price: 87060, Volume: 1}, {Price: 87200, Volume: 5}},
		},
		Delta: 0.25,
		Theta: -4.8,
	})
	h := NewSignalHandler(c, market.DefaultTradingConfig())

	sig := market.BlockchainSignal{VenueName: "deribit", IsInflow: false, BaseQuantity: 5}
	d := h.Process(sig, market.Option)
	if d.ShouldTrade {
		t.Fatal("delta-adjusted option impact must not trade")
	}
	// 0.2184 x 0.25 = 0.0546 vs (0.10 + 4.8/24) x 2 = 0.60.
	if d.Reason != "[option] Impact 0.0546% < required 0.6000% (2x fees)" {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestProcessShortEntryAndExit(t *testing.T) {
	c := cache.New()
	c.Update(market.Binance, market.Spot, market.InstrumentData{
		Book: market.OrderBook{
			// 0.5% drop over a fully fillable ladder.
			Bids: []market.PriceLevel{{Price: 87000, Volume: 25}, {Price: 86565, Volume: 25}},
			Asks: []market.PriceLevel{{Price: 87010, Volume: 50}},
		},
	})
	h := NewSignalHandler(c, market.DefaultTradingConfig())
	d := h.ProcessSignal(inflow("binance", 50))
	if !d.ShouldTrade {
		t.Fatalf("expected accept, got %q", d.Reason)
	}
	if !d.IsShort {
		t.Error("deposit should be a short")
	}
	if d.EntryPrice != 87000 {
		t.Errorf("entry = %v, want 87000", d.EntryPrice)
	}
	if math.Abs(d.ExitPrice-86652.0) > 1e-6 {
		t.Errorf("short exit = %v, want 86652.0", d.ExitPrice)
	}
}

func TestQuickFilter(t *testing.T) {
	h := NewSignalHandler(cache.New(), market.DefaultTradingConfig())
	cases := []struct {
		venue string
		qty   float64
		want  bool
	}{
		{"binance", 10, true},
		{"binance", 5, true},
		{"binance", 4.9, false},
		{"notavenue", 10, false},
		{"", 10, false},
	}
	for _, tc := range cases {
		if got := h.QuickFilter(tc.venue, tc.qty); got != tc.want {
			t.Errorf("QuickFilter(%q, %v) = %v, want %v", tc.venue, tc.qty, got, tc.want)
		}
	}
}

func TestLatencyCounters(t *testing.T) {
	h := NewSignalHandler(seedCache(), market.DefaultTradingConfig())
	for i := 0; i < 5; i++ {
		h.ProcessSignal(inflow("binance", 50))
	}
	if got := h.Processed(); got != 5 {
		t.Errorf("Processed = %d, want 5", got)
	}
	if h.AvgProcessingNs() <= 0 {
		t.Error("average latency should be positive after processing")
	}
}

func TestRunBenchmark(t *testing.T) {
	res := RunBenchmark(100)
	if res.Iterations != 100 {
		t.Errorf("iterations = %d, want 100", res.Iterations)
	}
	if res.AvgProcessNs <= 0 || res.AvgImpactNs <= 0 {
		t.Errorf("averages should be positive: %+v", res)
	}
}

func BenchmarkProcessSignal(b *testing.B) {
	h := NewSignalHandler(seedCache(), market.DefaultTradingConfig())
	sig := inflow("binance", 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.ProcessSignal(sig)
	}
}
