package bandgain

import (
	"fmt"

	"github.com/cwbudde/algo-bandedit/dsp/embedding"
)

// Editor applies the band-gain pipeline to embedding sequences. It is
// immutable after construction; the zero value is not usable, use
// [New].
type Editor struct {
	cfg config
}

// New creates an editor with the lip-sync suppression defaults and
// optional overrides.
func New(opts ...Option) (*Editor, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Editor{cfg: cfg}, nil
}

// Apply runs the pipeline on the audio embedding carried by c and
// returns a container with the edited sequence in its place. The
// passthrough bag and the input container are left untouched.
//
// When enabled is false the input container is returned as-is: no
// validation runs and no error is possible, even for a nil container
// or an absent embedding. This bypass is part of the contract.
func (e *Editor) Apply(c *embedding.Container, enabled bool) (*embedding.Container, error) {
	if !enabled {
		return c, nil
	}

	if c == nil || c.Audio() == nil {
		return nil, fmt.Errorf("%w (key %q)", ErrMissingEmbedding, embedding.KeyAudio)
	}

	out, err := e.Process(c.Audio())
	if err != nil {
		return nil, err
	}

	return c.WithAudio(out), nil
}

// Process runs the pipeline on seq and returns a new sequence of the
// same shape. seq is never mutated. The band axis must equal
// [BandCount]; any other shape is rejected with [ErrBandCount] before
// numeric work starts.
func (e *Editor) Process(seq *embedding.Sequence) (*embedding.Sequence, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrMissingEmbedding)
	}

	if seq.Bands() != BandCount {
		return nil, fmt.Errorf("%w: got %v, want band axis %d", ErrBandCount, seq.Shape(), BandCount)
	}

	out := seq.Clone()

	e.smooth(out)
	e.applyGains(out)

	if e.cfg.preserveRMS {
		e.matchRMS(out, seq)
	}

	e.blend(out, seq)
	e.post(out)

	return out, nil
}

// BandGains returns a copy of the per-band gain vector.
func (e *Editor) BandGains() []float64 {
	gains := make([]float64, BandCount)
	copy(gains, e.cfg.gains[:])
	return gains
}

// EMABeta returns the temporal smoothing retention factor.
func (e *Editor) EMABeta() float64 { return e.cfg.emaBeta }

// PreserveRMS reports whether post-gain RMS preservation is enabled.
func (e *Editor) PreserveRMS() bool { return e.cfg.preserveRMS }

// AlphaMix returns the blend weight of the edited branch.
func (e *Editor) AlphaMix() float64 { return e.cfg.alphaMix }

// GlobalGain returns the uniform post-scale.
func (e *Editor) GlobalGain() float64 { return e.cfg.globalGain }

// ClampStd returns the statistical clamp width in standard deviations.
func (e *Editor) ClampStd() float64 { return e.cfg.clampStd }
