package parser

import (
	"bytes"
	"time"

	"depthflow/market"
)

// GeminiParser handles gemini's object-level book shape:
// {"bids":[{"price":"87000.00","amount":"0.5",...},...],"asks":[...]}.
type GeminiParser struct{}

// NewGemini returns the gemini parser.
func NewGemini() *GeminiParser { return &GeminiParser{} }

func (g *GeminiParser) Venue() market.Venue { return market.Gemini }

func (g *GeminiParser) Parse(data []byte, _ market.InstrumentType, sink LevelSink) error {
	bids := arrayAfterKey(data, "bids")
	asks := arrayAfterKey(data, "asks")
	if bids == nil && asks == nil {
		return ErrMalformed
	}
	if bids != nil {
		if err := scanLevelObjects(bids, sink.Bid); err != nil {
			return err
		}
	}
	if asks != nil {
		if err := scanLevelObjects(asks, sink.Ask); err != nil {
			return err
		}
	}
	return nil
}

// scanLevelObjects walks [{"price":"...","amount":"..."},...].
func scanLevelObjects(arr []byte, emit func(price, volume float64)) error {
	if len(arr) < 2 || arr[0] != '[' {
		return ErrMalformed
	}
	i := 1
	for i < len(arr) {
		switch arr[i] {
		case '{':
			end := matchDelim(arr, i)
			if end < 0 {
				return ErrMalformed
			}
			obj := arr[i : end+1]
			pi := valueAfterKey(obj, "price")
			ai := valueAfterKey(obj, "amount")
			if pi < 0 || ai < 0 {
				return ErrMalformed
			}
			price, _, ok := scanNumber(obj, pi)
			if !ok {
				return ErrMalformed
			}
			volume, _, ok := scanNumber(obj, ai)
			if !ok {
				return ErrMalformed
			}
			emit(price, volume)
			i = end + 1
		case ']':
			return nil
		default:
			i++
		}
	}
	return ErrMalformed
}

// Gemini's marketdata socket auto-subscribes on connect.
func (g *GeminiParser) SubscribeMessage(string) []byte { return nil }

func (g *GeminiParser) HeartbeatMessage() []byte { return nil }

func (g *GeminiParser) HeartbeatInterval() time.Duration { return 0 }

// Filter passes only payloads that carry a book shape; gemini's change
// events stream deltas and are skipped.
func (g *GeminiParser) Filter(payload []byte) bool {
	return bytes.Contains(payload, []byte(`"bids"`))
}
