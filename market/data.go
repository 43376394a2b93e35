package market

import "time"

// InstrumentData is the full cached state for one (venue, instrument)
// market: the book plus whatever derivative fields apply to the
// instrument class. Fields that do not apply stay zero.
type InstrumentData struct {
	Book OrderBook

	LastPrice  float64
	Volume24h  float64
	MarkPrice  float64
	IndexPrice float64

	// Perpetual / inverse
	FundingRate      float64
	NextFundingTS    time.Time
	PredictedFunding float64

	// Dated future
	ExpirationTS time.Time
	Basis        float64
	BasisRate    float64

	// Option
	Strike          float64
	ImpliedVol      float64
	IsCall          bool
	Delta           float64
	Gamma           float64
	Theta           float64
	Vega            float64
	Rho             float64
	UnderlyingPrice float64
	TimeToExpiry    float64 // years

	// Margin
	InterestRateLong  float64
	InterestRateShort float64
	MaxLeverage       float64
	MaintenanceMargin float64

	// Inverse contract
	ContractSize  float64
	ContractValue float64

	// Leveraged token
	NAV            float64
	RealLeverage   float64
	TargetLeverage float64
	RebalanceTS    time.Time
}

// IsValid reports whether the entry carries a usable two-sided book.
func (d *InstrumentData) IsValid() bool {
	return d.Book.IsValid()
}

// Age returns the time elapsed since the last cache write.
func (d *InstrumentData) Age() time.Duration {
	return d.Book.Age()
}

// IsFresh reports whether the entry is valid and no older than maxAge.
// An age exactly equal to maxAge still counts as fresh.
func (d *InstrumentData) IsFresh(maxAge time.Duration) bool {
	return d.IsValid() && d.Age() <= maxAge
}

// Clone returns a deep copy; the book's level slices are reallocated.
func (d *InstrumentData) Clone() InstrumentData {
	out := *d
	out.Book = d.Book.Clone()
	return out
}
