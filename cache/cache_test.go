package cache

import (
	"sync"
	"testing"
	"time"

	"depthflow/market"
)

func sampleData(bid float64) market.InstrumentData {
	return market.InstrumentData{
		Book: market.OrderBook{
			Bids: []market.PriceLevel{{Price: bid, Volume: 10}, {Price: bid - 50, Volume: 20}},
			Asks: []market.PriceLevel{{Price: bid + 10, Volume: 5}, {Price: bid + 60, Volume: 15}},
		},
		LastPrice: bid + 5,
	}
}

func TestUpdateAndGet(t *testing.T) {
	c := New()
	c.Update(market.Binance, market.Spot, sampleData(87000))

	got := c.Get(market.Binance, market.Spot)
	if !got.IsValid() {
		t.Fatal("stored entry should be valid")
	}
	if got.Book.BestBid() != 87000 {
		t.Errorf("best bid = %v, want 87000", got.Book.BestBid())
	}
	if got.Book.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", got.Book.Sequence)
	}
	if got.Book.Timestamp.IsZero() {
		t.Error("timestamp should be stamped on write")
	}
	if c.Sequence(market.Binance, market.Spot) != 1 {
		t.Errorf("Sequence = %d, want 1", c.Sequence(market.Binance, market.Spot))
	}

	// Returned copy must not alias cache storage.
	got.Book.Bids[0].Price = 1
	again := c.Get(market.Binance, market.Spot)
	if again.Book.BestBid() != 87000 {
		t.Error("Get leaked internal storage")
	}
}

func TestSequenceBumpsPerWrite(t *testing.T) {
	c := New()
	c.Update(market.Okx, market.Perpetual, sampleData(87000))
	c.Update(market.Okx, market.Perpetual, sampleData(87100))
	if got := c.Sequence(market.Okx, market.Perpetual); got != 2 {
		t.Errorf("sequence after two updates = %d, want 2", got)
	}
	// Partial writes bump too.
	c.UpdateFunding(market.Okx, market.Perpetual, 0.0001, 0.0002, time.Now())
	if got := c.Sequence(market.Okx, market.Perpetual); got != 3 {
		t.Errorf("sequence after funding write = %d, want 3", got)
	}
	// Keys are independent.
	if got := c.Sequence(market.Okx, market.Spot); got != 0 {
		t.Errorf("untouched key sequence = %d, want 0", got)
	}
}

func TestPartialWrites(t *testing.T) {
	c := New()
	c.Update(market.Deribit, market.Perpetual, sampleData(87000))

	next := time.Now().Add(4 * time.Hour)
	c.UpdateFunding(market.Deribit, market.Perpetual, 0.0001, 0.00015, next)
	c.UpdateMarkPrice(market.Deribit, market.Perpetual, 87020, 87000)
	c.UpdateGreeks(market.Deribit, market.Perpetual, 0.25, 0.001, -4.8, 12.5, 0.3, 0.55)

	d := c.Get(market.Deribit, market.Perpetual)
	if d.FundingRate != 0.0001 || d.PredictedFunding != 0.00015 {
		t.Errorf("funding fields: %+v", d)
	}
	if d.MarkPrice != 87020 || d.IndexPrice != 87000 || d.Basis != 20 {
		t.Errorf("mark price fields: mark=%v index=%v basis=%v", d.MarkPrice, d.IndexPrice, d.Basis)
	}
	if d.Delta != 0.25 || d.Theta != -4.8 {
		t.Errorf("greeks: %+v", d)
	}
	// Book survived the partial writes.
	if d.Book.BestBid() != 87000 {
		t.Errorf("book lost by partial write: %v", d.Book.BestBid())
	}
}

func TestUpdateBook(t *testing.T) {
	c := New()
	c.UpdateFunding(market.Bybit, market.Perpetual, 0.0002, 0, time.Time{})
	c.UpdateBook(market.Bybit, market.Perpetual, market.OrderBook{
		Bids: []market.PriceLevel{{Price: 87000, Volume: 1}},
		Asks: []market.PriceLevel{{Price: 87010, Volume: 1}},
	})
	d := c.Get(market.Bybit, market.Perpetual)
	if !d.IsValid() {
		t.Fatal("book write should make the entry valid")
	}
	if d.FundingRate != 0.0002 {
		t.Error("book write should keep derivative fields")
	}
}

func TestOutOfRangeKeys(t *testing.T) {
	c := New()
	c.Update(market.VenueCount, market.Spot, sampleData(87000))
	c.Update(market.Binance, market.InstrumentCount, sampleData(87000))
	if c.Size() != 0 {
		t.Error("out-of-range writes must be discarded")
	}
	if d := c.Get(market.VenueCount, market.Spot); d.IsValid() {
		t.Error("out-of-range read should be zero")
	}
	if c.Sequence(market.Venue(200), market.Spot) != 0 {
		t.Error("out-of-range sequence should be 0")
	}
	if c.IsFresh(market.VenueCount, market.Spot, time.Second) {
		t.Error("out-of-range IsFresh should be false")
	}
}

func TestFreshness(t *testing.T) {
	c := New()
	c.Update(market.Kraken, market.Spot, sampleData(87000))
	if !c.IsFresh(market.Kraken, market.Spot, 5*time.Second) {
		t.Error("just-written entry should be fresh")
	}
	if c.IsFresh(market.Kraken, market.Margin, 5*time.Second) {
		t.Error("never-written entry should not be fresh")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Update(market.Binance, market.Spot, sampleData(87000))
	c.Update(market.Binance, market.Perpetual, sampleData(87000))
	c.Update(market.Okx, market.Spot, sampleData(87000))

	if c.Size() != 3 || c.InstrumentCount(market.Binance) != 2 {
		t.Fatalf("size=%d binance=%d", c.Size(), c.InstrumentCount(market.Binance))
	}

	c.Clear(market.Binance, market.Spot)
	if cleared := c.Get(market.Binance, market.Spot); cleared.IsValid() {
		t.Error("cleared entry should be invalid")
	}
	if c.Size() != 2 {
		t.Errorf("size after clear = %d, want 2", c.Size())
	}

	c.ClearVenue(market.Binance)
	if c.InstrumentCount(market.Binance) != 0 {
		t.Error("venue clear left entries behind")
	}

	c.ClearAll()
	if c.Size() != 0 || c.ValidCount() != 0 {
		t.Error("ClearAll left entries behind")
	}
}

func TestCounters(t *testing.T) {
	c := New()
	c.Update(market.Binance, market.Spot, sampleData(87000))
	// One-sided entry: populated but not valid.
	c.UpdateBook(market.Okx, market.Spot, market.OrderBook{Bids: []market.PriceLevel{{Price: 87000, Volume: 1}}})
	if c.Size() != 2 {
		t.Errorf("Size = %d, want 2", c.Size())
	}
	if c.ValidCount() != 1 {
		t.Errorf("ValidCount = %d, want 1", c.ValidCount())
	}
	if c.FreshCount(5*time.Second) != 1 {
		t.Errorf("FreshCount = %d, want 1", c.FreshCount(5*time.Second))
	}
}

func TestSnapshot(t *testing.T) {
	c := New()
	c.Update(market.Binance, market.Spot, sampleData(87000))
	c.Update(market.Okx, market.Perpetual, sampleData(87100))
	snap := c.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snap))
	}
	for _, e := range snap {
		if !e.Data.IsValid() {
			t.Errorf("%v/%v: snapshot entry invalid", e.Venue, e.Type)
		}
	}
	// Entries are copies.
	snap[0].Data.Book.Bids[0].Price = 1
	if c.Get(snap[0].Venue, snap[0].Type).Book.Bids[0].Price == 1 {
		t.Error("snapshot aliases cache storage")
	}
}

func TestOnUpdateCallback(t *testing.T) {
	c := New()
	var mu sync.Mutex
	var calls []uint64
	c.OnUpdate(func(v market.Venue, ty market.InstrumentType, d market.InstrumentData) {
		mu.Lock()
		calls = append(calls, d.Book.Sequence)
		mu.Unlock()
	})
	c.Update(market.Binance, market.Spot, sampleData(87000))
	c.Update(market.Binance, market.Spot, sampleData(87100))

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("callback sequences = %v, want [1 2]", calls)
	}
}

func TestUpdateBatch(t *testing.T) {
	c := New()
	c.UpdateBatch([]Entry{
		{Venue: market.Binance, Type: market.Spot, Data: sampleData(87000)},
		{Venue: market.Okx, Type: market.Perpetual, Data: sampleData(87050)},
	})
	if c.Size() != 2 {
		t.Errorf("Size after batch = %d, want 2", c.Size())
	}
}

// One writer walking the best bid upward, four readers hammering Get:
// every read must be internally consistent and sequences non-decreasing.
func TestConcurrentReadersWriter(t *testing.T) {
	const writes = 10000
	c := New()
	c.Update(market.Binance, market.Spot, sampleData(87000))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= writes; i++ {
			c.Update(market.Binance, market.Spot, sampleData(87000+float64(i)))
		}
	}()

	errs := make(chan string, 4)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var lastSeq uint64
			for i := 0; i < writes; i++ {
				d := c.Get(market.Binance, market.Spot)
				if !d.IsValid() {
					errs <- "reader observed invalid entry"
					return
				}
				if d.Book.BestBid() >= d.Book.BestAsk() {
					errs <- "reader observed crossed book"
					return
				}
				if d.Book.Sequence < lastSeq {
					errs <- "sequence went backwards"
					return
				}
				lastSeq = d.Book.Sequence
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
	if got := c.Sequence(market.Binance, market.Spot); got != writes+1 {
		t.Errorf("final sequence = %d, want %d", got, writes+1)
	}
}

func BenchmarkGet(b *testing.B) {
	c := New()
	c.Update(market.Binance, market.Spot, sampleData(87000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(market.Binance, market.Spot)
	}
}

func BenchmarkUpdate(b *testing.B) {
	c := New()
	d := sampleData(87000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Update(market.Binance, market.Spot, d.Clone())
	}
}
