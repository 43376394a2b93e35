package engine

import (
	"math"
	"testing"

	"depthflow/market"
)

func TestAdjustForInstrument(t *testing.T) {
	cfg := market.DefaultTradingConfig()
	const raw, fees, entry = 0.2184, 0.05, 87010.0

	cases := []struct {
		name       string
		inst       market.InstrumentType
		data       market.InstrumentData
		isShort    bool
		wantImpact float64
		wantFees   float64
	}{
		{
			name: "spot untouched",
			inst: market.Spot, wantImpact: raw, wantFees: fees,
		},
		{
			name: "margin adds interest over hold",
			inst: market.Margin,
			data: market.InstrumentData{InterestRateLong: 0.01},
			// 0.01/hr over 4h.
			wantImpact: raw, wantFees: fees + 0.04,
		},
		{
			name: "perpetual adds funding",
			inst: market.Perpetual,
			data: market.InstrumentData{FundingRate: 0.0001},
			// Seed scenario 3 fee math: 0.05 + 0.01 = 0.06.
			wantImpact: raw, wantFees: 0.06,
		},
		{
			name: "future favorable basis long",
			inst: market.Future,
			data: market.InstrumentData{Basis: -87.01},
			// |(-87.01)/87010*100| = 0.1.
			wantImpact: raw + 0.1, wantFees: fees,
		},
		{
			name: "future unfavorable basis long",
			inst: market.Future,
			data: market.InstrumentData{Basis: 87.01},
			// Positive basis hurts a long: no credit.
			wantImpact: raw, wantFees: fees,
		},
		{
			name: "future favorable basis short",
			inst: market.Future,
			data: market.InstrumentData{Basis: 87.01}, isShort: true,
			wantImpact: raw + 0.1, wantFees: fees,
		},
		{
			name: "option delta scales impact",
			inst: market.Option,
			data: market.InstrumentData{Delta: 0.25, Theta: -4.8},
			wantImpact: raw * 0.25, wantFees: fees + 0.2,
		},
		{
			name: "option near-zero delta leaves impact alone",
			inst: market.Option,
			data: market.InstrumentData{Delta: 0.005},
			wantImpact: raw, wantFees: fees,
		},
		{
			name: "inverse below threshold unamplified",
			inst: market.Inverse,
			data: market.InstrumentData{FundingRate: 0.0001},
			wantImpact: raw, wantFees: 0.06,
		},
		{
			name: "leveraged token scales by target",
			inst: market.LeveragedToken,
			data: market.InstrumentData{TargetLeverage: 3},
			wantImpact: raw * 3, wantFees: fees,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotImpact, gotFees := adjustForInstrument(tc.inst, raw, fees, &tc.data, tc.isShort, entry, cfg)
			if math.Abs(gotImpact-tc.wantImpact) > 1e-9 {
				t.Errorf("impact = %v, want %v", gotImpact, tc.wantImpact)
			}
			if math.Abs(gotFees-tc.wantFees) > 1e-9 {
				t.Errorf("fees = %v, want %v", gotFees, tc.wantFees)
			}
		})
	}
}

func TestAdjustInverseAmplification(t *testing.T) {
	cfg := market.DefaultTradingConfig()
	data := market.InstrumentData{FundingRate: 0.0001}
	// Above the 1.0% threshold the impact is amplified 1.5x.
	gotImpact, gotFees := adjustForInstrument(market.Inverse, 1.2, 0.05, &data, true, 87000, cfg)
	if math.Abs(gotImpact-1.8) > 1e-9 {
		t.Errorf("amplified impact = %v, want 1.8", gotImpact)
	}
	if math.Abs(gotFees-0.06) > 1e-9 {
		t.Errorf("fees = %v, want 0.06", gotFees)
	}
	// Exactly at the threshold: no amplification.
	gotImpact, _ = adjustForInstrument(market.Inverse, 1.0, 0.05, &data, true, 87000, cfg)
	if gotImpact != 1.0 {
		t.Errorf("at-threshold impact = %v, want 1.0", gotImpact)
	}
}
