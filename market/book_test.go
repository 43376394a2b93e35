package market

import (
	"testing"
	"time"
)

func testBook() OrderBook {
	return OrderBook{
		Bids: []PriceLevel{{87000, 10}, {86950, 15}, {86900, 20}},
		Asks: []PriceLevel{{87010, 5}, {87060, 10}, {87200, 25}},
	}
}

func TestOrderBookHelpers(t *testing.T) {
	b := testBook()
	if !b.IsValid() {
		t.Fatal("two-sided book should be valid")
	}
	if got := b.BestBid(); got != 87000 {
		t.Errorf("BestBid = %v, want 87000", got)
	}
	if got := b.BestAsk(); got != 87010 {
		t.Errorf("BestAsk = %v, want 87010", got)
	}
	if got := b.Spread(); got != 10 {
		t.Errorf("Spread = %v, want 10", got)
	}
	if got := b.MidPrice(); got != 87005 {
		t.Errorf("MidPrice = %v, want 87005", got)
	}
	if got := b.BidDepth(2); got != 25 {
		t.Errorf("BidDepth(2) = %v, want 25", got)
	}
	if got := b.AskDepth(0); got != 40 {
		t.Errorf("AskDepth(0) = %v, want 40", got)
	}
}

func TestOrderBookInvalid(t *testing.T) {
	empty := OrderBook{}
	if empty.IsValid() {
		t.Error("empty book should be invalid")
	}
	oneSided := OrderBook{Bids: []PriceLevel{{87000, 1}}}
	if oneSided.IsValid() {
		t.Error("one-sided book should be invalid")
	}
	if oneSided.Spread() != 0 || oneSided.MidPrice() != 0 || oneSided.BestAsk() != 0 {
		t.Error("invalid book should read zero spread, mid and ask")
	}
}

func TestOrderBookClone(t *testing.T) {
	b := testBook()
	b.Sequence = 7
	c := b.Clone()
	c.Bids[0].Price = 1
	if b.Bids[0].Price != 87000 {
		t.Error("clone shares bid storage with original")
	}
	if c.Sequence != 7 {
		t.Errorf("clone sequence = %d, want 7", c.Sequence)
	}
}

func TestInstrumentDataFreshness(t *testing.T) {
	d := InstrumentData{Book: testBook()}
	d.Book.Timestamp = time.Now().Add(-2 * time.Second)
	if !d.IsFresh(5 * time.Second) {
		t.Error("2s old entry should be fresh at 5s limit")
	}
	if d.IsFresh(time.Second) {
		t.Error("2s old entry should be stale at 1s limit")
	}

	// Never written: zero timestamp reads as very old.
	var zero InstrumentData
	if zero.IsFresh(5 * time.Second) {
		t.Error("zero entry should never be fresh")
	}
}

func TestInstrumentDataClone(t *testing.T) {
	d := InstrumentData{Book: testBook(), FundingRate: 0.0001, Delta: 0.4}
	c := d.Clone()
	c.Book.Asks[0].Volume = 99
	if d.Book.Asks[0].Volume != 5 {
		t.Error("clone shares ask storage with original")
	}
	if c.FundingRate != 0.0001 || c.Delta != 0.4 {
		t.Error("clone dropped scalar fields")
	}
}
