// Package cache holds the consolidated in-memory order book state: one
// slot per (venue, instrument) pair, each with its own RWMutex and an
// atomic per-key sequence. Readers never block each other; a writer only
// blocks readers of the same key.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"depthflow/market"
)

const slotCount = int(market.VenueCount) * int(market.InstrumentCount)

// UpdateFunc observes cache writes. It runs on the writer's goroutine
// after the exclusive hold is released and receives a private snapshot;
// it must not call back into the cache.
type UpdateFunc func(v market.Venue, t market.InstrumentType, data market.InstrumentData)

type slot struct {
	mu   sync.RWMutex
	data market.InstrumentData
	seq  atomic.Uint64
}

// Entry is one cache slot snapshot as returned by Snapshot.
type Entry struct {
	Venue market.Venue
	Type  market.InstrumentType
	Data  market.InstrumentData
}

// BookCache is the consolidated (venue, instrument) -> InstrumentData
// map. The zero value is not usable; construct with New. Multiple
// independent instances are fine.
type BookCache struct {
	slots    []slot
	onUpdate atomic.Pointer[UpdateFunc]
}

// New returns an empty cache with all slots allocated.
func New() *BookCache {
	return &BookCache{slots: make([]slot, slotCount)}
}

func slotIndex(v market.Venue, t market.InstrumentType) int {
	if v >= market.VenueCount || t >= market.InstrumentCount {
		return -1
	}
	return int(v)*int(market.InstrumentCount) + int(t)
}

// OnUpdate registers the write observer. Pass nil to remove it.
func (c *BookCache) OnUpdate(fn UpdateFunc) {
	if fn == nil {
		c.onUpdate.Store(nil)
		return
	}
	c.onUpdate.Store(&fn)
}

// Get returns a deep copy of the slot. Out-of-range keys read as zero.
func (c *BookCache) Get(v market.Venue, t market.InstrumentType) market.InstrumentData {
	i := slotIndex(v, t)
	if i < 0 {
		return market.InstrumentData{}
	}
	s := &c.slots[i]
	s.mu.RLock()
	out := s.data.Clone()
	s.mu.RUnlock()
	return out
}

// GetBook returns a deep copy of the slot's book only.
func (c *BookCache) GetBook(v market.Venue, t market.InstrumentType) market.OrderBook {
	i := slotIndex(v, t)
	if i < 0 {
		return market.OrderBook{}
	}
	s := &c.slots[i]
	s.mu.RLock()
	out := s.data.Book.Clone()
	s.mu.RUnlock()
	return out
}

// IsFresh reports whether the slot holds a valid book no older than
// maxAge.
func (c *BookCache) IsFresh(v market.Venue, t market.InstrumentType, maxAge time.Duration) bool {
	i := slotIndex(v, t)
	if i < 0 {
		return false
	}
	s := &c.slots[i]
	s.mu.RLock()
	fresh := s.data.IsFresh(maxAge)
	s.mu.RUnlock()
	return fresh
}

// Sequence returns the slot's write counter without taking the lock.
// Out-of-range keys read 0.
func (c *BookCache) Sequence(v market.Venue, t market.InstrumentType) uint64 {
	i := slotIndex(v, t)
	if i < 0 {
		return 0
	}
	return c.slots[i].seq.Load()
}

// Update replaces the whole slot. The cache takes ownership of the level
// slices, stamps Timestamp with now and assigns the next sequence.
// Out-of-range keys are silently discarded.
func (c *BookCache) Update(v market.Venue, t market.InstrumentType, data market.InstrumentData) {
	i := slotIndex(v, t)
	if i < 0 {
		return
	}
	s := &c.slots[i]
	s.mu.Lock()
	data.Book.Timestamp = time.Now()
	data.Book.Sequence = s.seq.Add(1)
	s.data = data
	snap, fn := c.snapshotForCallback(s)
	s.mu.Unlock()
	if fn != nil {
		(*fn)(v, t, snap)
	}
}

// UpdateBook replaces only the book, keeping derivative fields intact.
func (c *BookCache) UpdateBook(v market.Venue, t market.InstrumentType, book market.OrderBook) {
	i := slotIndex(v, t)
	if i < 0 {
		return
	}
	s := &c.slots[i]
	s.mu.Lock()
	book.Timestamp = time.Now()
	book.Sequence = s.seq.Add(1)
	s.data.Book = book
	snap, fn := c.snapshotForCallback(s)
	s.mu.Unlock()
	if fn != nil {
		(*fn)(v, t, snap)
	}
}

// UpdateFunding writes the perpetual funding fields. The book timestamp
// is left alone; freshness tracks book data.
func (c *BookCache) UpdateFunding(v market.Venue, t market.InstrumentType, rate, predicted float64, next time.Time) {
	c.updatePartial(v, t, func(d *market.InstrumentData) {
		d.FundingRate = rate
		d.PredictedFunding = predicted
		d.NextFundingTS = next
	})
}

// UpdateMarkPrice writes the mark and index prices.
func (c *BookCache) UpdateMarkPrice(v market.Venue, t market.InstrumentType, mark, index float64) {
	c.updatePartial(v, t, func(d *market.InstrumentData) {
		d.MarkPrice = mark
		d.IndexPrice = index
		if mark != 0 && index != 0 {
			d.Basis = mark - index
			if index != 0 {
				d.BasisRate = d.Basis / index
			}
		}
	})
}

// UpdateGreeks writes the option greeks and implied vol.
func (c *BookCache) UpdateGreeks(v market.Venue, t market.InstrumentType, delta, gamma, theta, vega, rho, impliedVol float64) {
	c.updatePartial(v, t, func(d *market.InstrumentData) {
		d.Delta = delta
		d.Gamma = gamma
		d.Theta = theta
		d.Vega = vega
		d.Rho = rho
		d.ImpliedVol = impliedVol
	})
}

func (c *BookCache) updatePartial(v market.Venue, t market.InstrumentType, apply func(*market.InstrumentData)) {
	i := slotIndex(v, t)
	if i < 0 {
		return
	}
	s := &c.slots[i]
	s.mu.Lock()
	apply(&s.data)
	s.data.Book.Sequence = s.seq.Add(1)
	snap, fn := c.snapshotForCallback(s)
	s.mu.Unlock()
	if fn != nil {
		(*fn)(v, t, snap)
	}
}

// UpdateBatch applies full updates for several keys. Each key is written
// independently; there is no cross-key atomicity.
func (c *BookCache) UpdateBatch(entries []Entry) {
	for _, e := range entries {
		c.Update(e.Venue, e.Type, e.Data)
	}
}

// snapshotForCallback is called under the slot's exclusive hold.
func (c *BookCache) snapshotForCallback(s *slot) (market.InstrumentData, *UpdateFunc) {
	fn := c.onUpdate.Load()
	if fn == nil {
		return market.InstrumentData{}, nil
	}
	return s.data.Clone(), fn
}

// Clear empties one slot. The sequence keeps counting so readers can
// detect the transition.
func (c *BookCache) Clear(v market.Venue, t market.InstrumentType) {
	i := slotIndex(v, t)
	if i < 0 {
		return
	}
	s := &c.slots[i]
	s.mu.Lock()
	s.data = market.InstrumentData{}
	s.seq.Add(1)
	s.mu.Unlock()
}

// ClearVenue empties every instrument slot of one venue.
func (c *BookCache) ClearVenue(v market.Venue) {
	for t := market.InstrumentType(0); t < market.InstrumentCount; t++ {
		c.Clear(v, t)
	}
}

// ClearAll empties the whole cache.
func (c *BookCache) ClearAll() {
	for v := market.Venue(0); v < market.VenueCount; v++ {
		c.ClearVenue(v)
	}
}

// Size counts slots that have been written and not cleared.
func (c *BookCache) Size() int {
	n := 0
	for i := range c.slots {
		s := &c.slots[i]
		s.mu.RLock()
		if !s.data.Book.Timestamp.IsZero() {
			n++
		}
		s.mu.RUnlock()
	}
	return n
}

// InstrumentCount counts populated instrument slots for one venue.
func (c *BookCache) InstrumentCount(v market.Venue) int {
	if v >= market.VenueCount {
		return 0
	}
	n := 0
	for t := market.InstrumentType(0); t < market.InstrumentCount; t++ {
		s := &c.slots[slotIndex(v, t)]
		s.mu.RLock()
		if !s.data.Book.Timestamp.IsZero() {
			n++
		}
		s.mu.RUnlock()
	}
	return n
}

// ValidCount counts slots holding a two-sided book.
func (c *BookCache) ValidCount() int {
	n := 0
	for i := range c.slots {
		s := &c.slots[i]
		s.mu.RLock()
		if s.data.IsValid() {
			n++
		}
		s.mu.RUnlock()
	}
	return n
}

// FreshCount counts slots holding a valid book no older than maxAge.
func (c *BookCache) FreshCount(maxAge time.Duration) int {
	n := 0
	for i := range c.slots {
		s := &c.slots[i]
		s.mu.RLock()
		if s.data.IsFresh(maxAge) {
			n++
		}
		s.mu.RUnlock()
	}
	return n
}

// Snapshot copies every populated slot. Each entry is internally
// consistent; there is no ordering guarantee across keys.
func (c *BookCache) Snapshot() []Entry {
	out := make([]Entry, 0, 64)
	for v := market.Venue(0); v < market.VenueCount; v++ {
		for t := market.InstrumentType(0); t < market.InstrumentCount; t++ {
			s := &c.slots[slotIndex(v, t)]
			s.mu.RLock()
			if s.data.Book.Timestamp.IsZero() {
				s.mu.RUnlock()
				continue
			}
			e := Entry{Venue: v, Type: t, Data: s.data.Clone()}
			s.mu.RUnlock()
			out = append(out, e)
		}
	}
	return out
}
