package market

import "time"

// BlockchainSignal is an on-chain flow observation for a venue's hot
// wallet. An inflow is a deposit (impending sell pressure on the bids);
// an outflow is a withdrawal (buy pressure on the asks).
type BlockchainSignal struct {
	VenueName        string
	IsInflow         bool
	BaseQuantity     float64
	ObservedAt       time.Time
	DetectionLatency time.Duration
}

// IsShort reports whether the signal implies a short position (deposits
// front-run sells).
func (s *BlockchainSignal) IsShort() bool { return s.IsInflow }

// IsLong reports whether the signal implies a long position.
func (s *BlockchainSignal) IsLong() bool { return !s.IsInflow }
