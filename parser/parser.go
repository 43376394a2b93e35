// Package parser turns raw venue payloads into normalized order books.
// Each shipped parser is a streaming tokenizer over the byte payload; no
// intermediate DOM is built for the level arrays.
package parser

import (
	"errors"
	"sync"
	"time"

	"depthflow/market"
)

var (
	// ErrMalformed means the payload carried no recognizable book.
	ErrMalformed = errors.New("parser: malformed payload")
	// ErrEmptyBook means a side ended up empty after parsing.
	ErrEmptyBook = errors.New("parser: book has an empty side")
	// ErrCrossedBook means best bid >= best ask.
	ErrCrossedBook = errors.New("parser: crossed book")
	// ErrUnsorted means a side was not in book order.
	ErrUnsorted = errors.New("parser: side out of order")
)

// LevelSink receives normalized levels as a parser walks the payload.
type LevelSink interface {
	Bid(price, volume float64)
	Ask(price, volume float64)
}

// Parser decodes one venue's wire format.
type Parser interface {
	Venue() market.Venue
	Parse(data []byte, target market.InstrumentType, sink LevelSink) error
}

// StreamDialect is implemented by parsers whose venue we stream over a
// plain websocket. Empty messages mean "send nothing".
type StreamDialect interface {
	SubscribeMessage(symbol string) []byte
	HeartbeatMessage() []byte
	HeartbeatInterval() time.Duration
	Filter(payload []byte) bool
}

// BookBuilder is the standard LevelSink: it caps each side at
// MaxBookLevels and silently skips non-positive levels.
type BookBuilder struct {
	bids []market.PriceLevel
	asks []market.PriceLevel
}

// NewBookBuilder returns an empty builder.
func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		bids: make([]market.PriceLevel, 0, market.MaxBookLevels),
		asks: make([]market.PriceLevel, 0, market.MaxBookLevels),
	}
}

// Bid appends a bid level.
func (b *BookBuilder) Bid(price, volume float64) {
	if price <= 0 || volume <= 0 || len(b.bids) >= market.MaxBookLevels {
		return
	}
	b.bids = append(b.bids, market.PriceLevel{Price: price, Volume: volume})
}

// Ask appends an ask level.
func (b *BookBuilder) Ask(price, volume float64) {
	if price <= 0 || volume <= 0 || len(b.asks) >= market.MaxBookLevels {
		return
	}
	b.asks = append(b.asks, market.PriceLevel{Price: price, Volume: volume})
}

// Reset empties the builder for reuse, keeping the backing arrays.
func (b *BookBuilder) Reset() {
	b.bids = b.bids[:0]
	b.asks = b.asks[:0]
}

// Book validates side ordering and crossing and returns the built book.
// The returned slices are handed off; call Reset before reusing.
func (b *BookBuilder) Book() (market.OrderBook, error) {
	if len(b.bids) == 0 || len(b.asks) == 0 {
		return market.OrderBook{}, ErrEmptyBook
	}
	for i := 1; i < len(b.bids); i++ {
		if b.bids[i].Price >= b.bids[i-1].Price {
			return market.OrderBook{}, ErrUnsorted
		}
	}
	for i := 1; i < len(b.asks); i++ {
		if b.asks[i].Price <= b.asks[i-1].Price {
			return market.OrderBook{}, ErrUnsorted
		}
	}
	if b.bids[0].Price >= b.asks[0].Price {
		return market.OrderBook{}, ErrCrossedBook
	}
	return market.OrderBook{Bids: b.bids, Asks: b.asks}, nil
}

// ParseBook runs a parser over the payload and returns the validated
// book.
func ParseBook(p Parser, data []byte, target market.InstrumentType) (market.OrderBook, error) {
	b := NewBookBuilder()
	if err := p.Parse(data, target, b); err != nil {
		return market.OrderBook{}, err
	}
	return b.Book()
}

// Registry maps venues to their parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[market.Venue]Parser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[market.Venue]Parser)}
}

// Register adds or replaces the parser for its venue.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	r.parsers[p.Venue()] = p
	r.mu.Unlock()
}

// Lookup returns the parser for a venue.
func (r *Registry) Lookup(v market.Venue) (Parser, bool) {
	r.mu.RLock()
	p, ok := r.parsers[v]
	r.mu.RUnlock()
	return p, ok
}

// Dialect returns the venue's stream dialect when its parser has one.
func (r *Registry) Dialect(v market.Venue) (StreamDialect, bool) {
	p, ok := r.Lookup(v)
	if !ok {
		return nil, false
	}
	d, ok := p.(StreamDialect)
	return d, ok
}

// DefaultRegistry ships the reference parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewGeneric(market.Binance))
	r.Register(NewDeribit())
	r.Register(NewGemini())
	r.Register(NewMexc())
	r.Register(NewPoloniex())
	r.Register(NewBybit())
	return r
}
