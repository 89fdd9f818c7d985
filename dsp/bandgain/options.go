package bandgain

import (
	"fmt"
	"math"
)

// BandCount is the fixed number of bands the editor operates on. Band
// 0 carries shallow/fast onsets, band 4 top-level long-range
// semantics.
const BandCount = 5

const (
	defaultEMABeta    = 0.90
	defaultAlphaMix   = 1.00
	defaultGlobalGain = 1.00
	defaultClampStd   = 0.00

	rmsEpsilon = 1e-6
	stdEpsilon = 1e-6
)

// defaultBandGains is the lip-sync suppression gain vector.
var defaultBandGains = [BandCount]float64{4.00, 4.00, 0.50, 0.01, 0.01}

type config struct {
	gains       [BandCount]float64
	emaBeta     float64
	preserveRMS bool
	alphaMix    float64
	globalGain  float64
	clampStd    float64
}

func defaultConfig() config {
	return config{
		gains:      defaultBandGains,
		emaBeta:    defaultEMABeta,
		alphaMix:   defaultAlphaMix,
		globalGain: defaultGlobalGain,
		clampStd:   defaultClampStd,
	}
}

// Option mutates editor construction parameters.
type Option func(*config) error

// WithBandGains sets the per-band gain vector. Exactly BandCount
// values are required, each > 0 and finite.
func WithBandGains(gains []float64) Option {
	return func(cfg *config) error {
		if len(gains) != BandCount {
			return fmt.Errorf("bandgain: need %d band gains, got %d", BandCount, len(gains))
		}

		for i, g := range gains {
			if g <= 0 || math.IsNaN(g) || math.IsInf(g, 0) {
				return fmt.Errorf("bandgain: band %d gain must be > 0 and finite: %f", i, g)
			}
		}

		copy(cfg.gains[:], gains)

		return nil
	}
}

// WithEMABeta sets the temporal smoothing retention factor in [0, 1).
// Zero disables smoothing.
func WithEMABeta(beta float64) Option {
	return func(cfg *config) error {
		if beta < 0 || beta >= 1 || math.IsNaN(beta) {
			return fmt.Errorf("bandgain: EMA beta must be in [0, 1): %f", beta)
		}

		cfg.emaBeta = beta

		return nil
	}
}

// WithPreserveRMS enables or disables per-frame-per-band RMS
// preservation after gain application (default false).
func WithPreserveRMS(enabled bool) Option {
	return func(cfg *config) error {
		cfg.preserveRMS = enabled
		return nil
	}
}

// WithAlphaMix sets the blend weight of the edited branch in [0, 1].
// One means pure edit, zero returns the original untouched.
func WithAlphaMix(alpha float64) Option {
	return func(cfg *config) error {
		if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
			return fmt.Errorf("bandgain: alpha mix must be in [0, 1]: %f", alpha)
		}

		cfg.alphaMix = alpha

		return nil
	}
}

// WithGlobalGain sets the uniform post-scale, > 0 and finite. The
// multiply is skipped entirely when the value is exactly 1.
func WithGlobalGain(gain float64) Option {
	return func(cfg *config) error {
		if gain <= 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
			return fmt.Errorf("bandgain: global gain must be > 0 and finite: %f", gain)
		}

		cfg.globalGain = gain

		return nil
	}
}

// WithClampStd sets the symmetric statistical clamp width in standard
// deviations, >= 0 and finite. Zero disables clamping.
func WithClampStd(k float64) Option {
	return func(cfg *config) error {
		if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("bandgain: clamp width must be >= 0 and finite: %f", k)
		}

		cfg.clampStd = k

		return nil
	}
}
