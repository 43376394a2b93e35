package market

import "testing"

func TestVenueRoundTrip(t *testing.T) {
	for v := Venue(0); v < VenueCount; v++ {
		name := v.Name()
		if name == "" || name == "unknown" {
			t.Fatalf("venue %d has no name", v)
		}
		got, ok := VenueFromName(name)
		if !ok || got != v {
			t.Errorf("VenueFromName(%q) = %v, %v; want %v, true", name, got, ok, v)
		}
	}
}

func TestVenueFromNameUnknown(t *testing.T) {
	cases := []string{"", "BINANCE", "Binance", "binance ", "notavenue"}
	for _, name := range cases {
		if v, ok := VenueFromName(name); ok {
			t.Errorf("VenueFromName(%q) = %v, true; want false", name, v)
		}
	}
}

func TestVenueCount(t *testing.T) {
	if int(VenueCount) != 110 {
		t.Fatalf("VenueCount = %d, want 110", VenueCount)
	}
	if DerivativeVenueCount != 58 {
		t.Fatalf("DerivativeVenueCount = %d, want 58", DerivativeVenueCount)
	}
}

func TestVenueConfigTable(t *testing.T) {
	for v := Venue(0); v < VenueCount; v++ {
		cfg := VenueConfigFor(v)
		if cfg.Name != v.Name() {
			t.Errorf("%v: config name %q != venue name %q", v, cfg.Name, v.Name())
		}
		if cfg.TakerFee <= 0 {
			t.Errorf("%v: non-positive taker fee %v", v, cfg.TakerFee)
		}
		if cfg.MaxLeverage < 1 {
			t.Errorf("%v: max leverage %d < 1", v, cfg.MaxLeverage)
		}
		if cfg.Supported == 0 {
			t.Errorf("%v: empty instrument mask", v)
		}
		if cfg.Streaming && cfg.WSURL == "" {
			t.Errorf("%v: streaming venue without ws url", v)
		}
		for _, it := range cfg.Supported.Types() {
			if cfg.Symbols[it] == "" {
				t.Errorf("%v: supported instrument %v has no symbol", v, it)
			}
		}
	}
}

func TestVenueConfigForOutOfRange(t *testing.T) {
	cfg := VenueConfigFor(VenueCount)
	if cfg.Name != "unknown" {
		t.Errorf("out-of-range config name = %q, want unknown", cfg.Name)
	}
	if Venue(200).Name() != "unknown" {
		t.Errorf("Venue(200).Name() = %q, want unknown", Venue(200).Name())
	}
}

func TestInstrumentRoundTrip(t *testing.T) {
	for i := InstrumentType(0); i < InstrumentCount; i++ {
		got, ok := InstrumentFromName(i.Name())
		if !ok || got != i {
			t.Errorf("InstrumentFromName(%q) = %v, %v; want %v, true", i.Name(), got, ok, i)
		}
	}
	if _, ok := InstrumentFromName("futures"); ok {
		t.Error("InstrumentFromName accepted non-canonical name")
	}
}

func TestInstrumentMask(t *testing.T) {
	cfg := VenueConfigFor(Okx)
	for _, it := range []InstrumentType{Spot, Margin, Perpetual, Future, Option, Inverse} {
		if !cfg.Supported.Has(it) {
			t.Errorf("okx should support %v", it)
		}
	}
	if cfg.Supported.Has(LeveragedToken) {
		t.Error("okx should not support leveraged tokens")
	}

	spot := VenueConfigFor(Bitstamp)
	if spot.Supported != MaskSpot {
		t.Errorf("bitstamp mask = %b, want spot only", spot.Supported)
	}
	if spot.Symbols[Spot] != "BTC/USD" {
		t.Errorf("bitstamp spot symbol = %q", spot.Symbols[Spot])
	}
}
