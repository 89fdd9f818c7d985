package bandgain

import (
	"math"
	"testing"
)

func TestDefaultsAreTheSuppressionPreset(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantGains := []float64{4.00, 4.00, 0.50, 0.01, 0.01}
	gains := e.BandGains()

	for i, g := range gains {
		if g != wantGains[i] {
			t.Fatalf("BandGains()[%d] = %v, want %v", i, g, wantGains[i])
		}
	}

	if e.EMABeta() != 0.90 {
		t.Fatalf("EMABeta() = %v, want 0.90", e.EMABeta())
	}

	if e.PreserveRMS() {
		t.Fatal("PreserveRMS() = true, want false")
	}

	if e.AlphaMix() != 1 || e.GlobalGain() != 1 || e.ClampStd() != 0 {
		t.Fatalf("alpha/global/clamp = %v/%v/%v, want 1/1/0",
			e.AlphaMix(), e.GlobalGain(), e.ClampStd())
	}
}

func TestBandGainsReturnsCopy(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	e.BandGains()[0] = 99

	if e.BandGains()[0] != 4.00 {
		t.Fatal("BandGains() exposes internal state")
	}
}

func TestOptionValidation(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"too few gains", WithBandGains([]float64{1, 1, 1})},
		{"too many gains", WithBandGains([]float64{1, 1, 1, 1, 1, 1})},
		{"zero gain", WithBandGains([]float64{1, 0, 1, 1, 1})},
		{"negative gain", WithBandGains([]float64{1, -2, 1, 1, 1})},
		{"NaN gain", WithBandGains([]float64{1, math.NaN(), 1, 1, 1})},
		{"Inf gain", WithBandGains([]float64{1, math.Inf(1), 1, 1, 1})},
		{"beta one", WithEMABeta(1)},
		{"beta negative", WithEMABeta(-0.1)},
		{"beta NaN", WithEMABeta(math.NaN())},
		{"alpha above one", WithAlphaMix(1.1)},
		{"alpha negative", WithAlphaMix(-0.1)},
		{"alpha NaN", WithAlphaMix(math.NaN())},
		{"global zero", WithGlobalGain(0)},
		{"global negative", WithGlobalGain(-1)},
		{"global Inf", WithGlobalGain(math.Inf(1))},
		{"clamp negative", WithClampStd(-1)},
		{"clamp NaN", WithClampStd(math.NaN())},
		{"invalid preset", WithPreset(Preset(99))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opt); err == nil {
				t.Fatalf("New(%s) expected error", tc.name)
			}
		})
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	e, err := New(
		WithBandGains([]float64{1, 2, 3, 4, 5}),
		WithEMABeta(0.5),
		WithPreserveRMS(true),
		WithAlphaMix(0.25),
		WithGlobalGain(2),
		WithClampStd(3),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if g := e.BandGains(); g[4] != 5 {
		t.Fatalf("BandGains()[4] = %v, want 5", g[4])
	}

	if e.EMABeta() != 0.5 || !e.PreserveRMS() || e.AlphaMix() != 0.25 ||
		e.GlobalGain() != 2 || e.ClampStd() != 3 {
		t.Fatal("options not applied")
	}
}

func TestNilOptionIsIgnored(t *testing.T) {
	if _, err := New(nil, WithEMABeta(0.5)); err != nil {
		t.Fatalf("New(nil, ...) error = %v", err)
	}
}

func TestPresetNames(t *testing.T) {
	if PresetLipsyncSuppress.String() != "LipsyncSuppress" {
		t.Fatalf("String() = %q", PresetLipsyncSuppress.String())
	}

	if PresetNeutral.String() != "Neutral" {
		t.Fatalf("String() = %q", PresetNeutral.String())
	}

	if got := Preset(42).String(); got != "Preset(42)" {
		t.Fatalf("String() = %q", got)
	}

	if !PresetLipsyncSuppress.Valid() || Preset(42).Valid() {
		t.Fatal("Valid() misclassifies presets")
	}
}

func TestPresetThenOverride(t *testing.T) {
	e, err := New(WithPreset(PresetNeutral), WithEMABeta(0.3))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if g := e.BandGains(); g[0] != 1 {
		t.Fatalf("BandGains()[0] = %v, want 1", g[0])
	}

	if e.EMABeta() != 0.3 {
		t.Fatalf("EMABeta() = %v, want 0.3 (later option wins)", e.EMABeta())
	}
}
