package market

// InstrumentType identifies one of the tradable instrument classes a venue
// may list for the base asset.
type InstrumentType uint8

const (
	Spot InstrumentType = iota
	Margin
	Perpetual
	Future
	Option
	Inverse
	LeveragedToken

	InstrumentCount
)

var instrumentNames = [InstrumentCount]string{
	"spot", "margin", "perpetual", "future", "option", "inverse", "leveraged_token",
}

// Name returns the canonical lowercase instrument name, or "unknown" for
// out-of-range values.
func (t InstrumentType) Name() string {
	if t >= InstrumentCount {
		return "unknown"
	}
	return instrumentNames[t]
}

func (t InstrumentType) String() string { return t.Name() }

// InstrumentFromName resolves a canonical lowercase name to its
// InstrumentType. The match is exact and case-sensitive.
func InstrumentFromName(name string) (InstrumentType, bool) {
	for t := InstrumentType(0); t < InstrumentCount; t++ {
		if instrumentNames[t] == name {
			return t, true
		}
	}
	return InstrumentCount, false
}

// InstrumentMask is a 7-bit set of supported instrument types.
type InstrumentMask uint8

const (
	MaskSpot           InstrumentMask = 1 << Spot
	MaskMargin         InstrumentMask = 1 << Margin
	MaskPerpetual      InstrumentMask = 1 << Perpetual
	MaskFuture         InstrumentMask = 1 << Future
	MaskOption         InstrumentMask = 1 << Option
	MaskInverse        InstrumentMask = 1 << Inverse
	MaskLeveragedToken InstrumentMask = 1 << LeveragedToken
)

// Has reports whether the mask contains the given instrument type.
func (m InstrumentMask) Has(t InstrumentType) bool {
	if t >= InstrumentCount {
		return false
	}
	return m&(1<<t) != 0
}

// Types returns the instrument types present in the mask, in enum order.
func (m InstrumentMask) Types() []InstrumentType {
	out := make([]InstrumentType, 0, InstrumentCount)
	for t := InstrumentType(0); t < InstrumentCount; t++ {
		if m.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
