package bandgain

import "fmt"

// Preset identifies a predefined editor parameter set.
type Preset int

const (
	PresetLipsyncSuppress Preset = iota // Suppress audio-driven mouth motion (default parameters)
	PresetNeutral                       // Unity gains, no smoothing; the editor becomes a copy

	presetCount // sentinel
)

var presetNames = [presetCount]string{
	"LipsyncSuppress", "Neutral",
}

// String returns the name of the preset.
func (p Preset) String() string {
	if p >= 0 && p < presetCount {
		return presetNames[p]
	}
	return fmt.Sprintf("Preset(%d)", p)
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	return p >= 0 && p < presetCount
}

var presetConfigs = [presetCount]config{
	PresetLipsyncSuppress: {
		gains:      defaultBandGains,
		emaBeta:    defaultEMABeta,
		alphaMix:   defaultAlphaMix,
		globalGain: defaultGlobalGain,
		clampStd:   defaultClampStd,
	},
	PresetNeutral: {
		gains:      [BandCount]float64{1, 1, 1, 1, 1},
		emaBeta:    0,
		alphaMix:   1,
		globalGain: 1,
		clampStd:   0,
	},
}

// WithPreset replaces the whole parameter set with a named preset.
// Later options still override individual fields.
func WithPreset(p Preset) Option {
	return func(cfg *config) error {
		if !p.Valid() {
			return fmt.Errorf("bandgain: invalid preset: %d", p)
		}

		*cfg = presetConfigs[p]

		return nil
	}
}
