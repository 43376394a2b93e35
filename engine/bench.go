package engine

import (
	"time"

	"depthflow/cache"
	"depthflow/depth"
	"depthflow/market"
)

// BenchmarkResult is a self-contained hot-path timing sample, exposed on
// the dashboard so a deploy can be sanity-checked without a load test.
type BenchmarkResult struct {
	Iterations   int   `json:"iterations"`
	AvgProcessNs int64 `json:"avg_process_ns"`
	AvgImpactNs  int64 `json:"avg_impact_ns"`
}

// RunBenchmark times the full signal path and the bare impact walk over a
// synthetic 100-level ladder. It builds its own cache and handler so it
// never touches live state.
func RunBenchmark(iterations int) BenchmarkResult {
	if iterations <= 0 {
		iterations = 1000
	}

	bids := make([]market.PriceLevel, market.MaxBookLevels)
	asks := make([]market.PriceLevel, market.MaxBookLevels)
	for i := range bids {
		bids[i] = market.PriceLevel{Price: 87000 - float64(i)*10, Volume: 5}
		asks[i] = market.PriceLevel{Price: 87010 + float64(i)*10, Volume: 5}
	}

	c := cache.New()
	c.Update(market.Binance, market.Spot, market.InstrumentData{
		Book: market.OrderBook{Bids: bids, Asks: asks},
	})
	h := NewSignalHandler(c, market.DefaultTradingConfig())

	sig := market.BlockchainSignal{
		VenueName:    "binance",
		IsInflow:     true,
		BaseQuantity: 50,
		ObservedAt:   time.Now(),
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		h.ProcessSignal(sig)
	}
	processNs := time.Since(start).Nanoseconds() / int64(iterations)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		depth.SellImpact(bids, 400)
	}
	impactNs := time.Since(start).Nanoseconds() / int64(iterations)

	return BenchmarkResult{
		Iterations:   iterations,
		AvgProcessNs: processNs,
		AvgImpactNs:  impactNs,
	}
}
