package market

import "fmt"

// TradingConfig carries the decision thresholds and the per-instrument
// policy knobs. All values are positive; Validate enforces that.
type TradingConfig struct {
	// MinSignalQuantity is the smallest on-chain flow, in base units,
	// worth evaluating.
	MinSignalQuantity float64

	// MinImpactMultiple is how many times the fee the adjusted impact
	// must clear before a trade is taken.
	MinImpactMultiple float64

	// DefaultFeesPct is the taker fee in percent used when the venue
	// fee is absent or below 0.01%.
	DefaultFeesPct float64

	// TakeProfitRatio is the fraction of the projected move captured by
	// the exit price.
	TakeProfitRatio float64

	// MaxBookAgeMS is the oldest cached book, in milliseconds, a
	// decision may be based on.
	MaxBookAgeMS int64

	// Instrument policy knobs.
	MarginHoldHours        float64
	OptionHoldHours        float64
	OptionDeltaFloor       float64
	InverseAmplification   float64
	InverseAmpThresholdPct float64
}

// DefaultTradingConfig returns the production defaults.
func DefaultTradingConfig() TradingConfig {
	return TradingConfig{
		MinSignalQuantity:      5.0,
		MinImpactMultiple:      2.0,
		DefaultFeesPct:         0.10,
		TakeProfitRatio:        0.8,
		MaxBookAgeMS:           5000,
		MarginHoldHours:        4.0,
		OptionHoldHours:        1.0,
		OptionDeltaFloor:       0.01,
		InverseAmplification:   1.5,
		InverseAmpThresholdPct: 1.0,
	}
}

// MinImpactPct returns the impact threshold in percent for the given fee.
func (c TradingConfig) MinImpactPct(feesPct float64) float64 {
	return feesPct * c.MinImpactMultiple
}

// Validate rejects non-positive knobs.
func (c TradingConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"min_signal_quantity", c.MinSignalQuantity},
		{"min_impact_multiple", c.MinImpactMultiple},
		{"default_fees_pct", c.DefaultFeesPct},
		{"take_profit_ratio", c.TakeProfitRatio},
		{"max_book_age_ms", float64(c.MaxBookAgeMS)},
		{"margin_hold_hours", c.MarginHoldHours},
		{"option_hold_hours", c.OptionHoldHours},
		{"option_delta_floor", c.OptionDeltaFloor},
		{"inverse_amplification", c.InverseAmplification},
		{"inverse_amp_threshold_pct", c.InverseAmpThresholdPct},
	}
	for _, ch := range checks {
		if ch.value <= 0 {
			return fmt.Errorf("trading config: %s must be positive, got %v", ch.name, ch.value)
		}
	}
	return nil
}
