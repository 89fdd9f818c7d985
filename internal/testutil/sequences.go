// Package testutil provides deterministic sequence generators and
// tolerance assertions shared by tests across the module.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-bandedit/dsp/embedding"
)

// ConstantSequence returns a [frames, bands, channels] sequence with
// every element set to value.
func ConstantSequence(frames, bands, channels int, value float64) *embedding.Sequence {
	seq, err := embedding.New(frames, bands, channels)
	if err != nil {
		panic(err)
	}

	data := seq.Data()
	for i := range data {
		data[i] = value
	}

	return seq
}

// FrameStepSequence returns a sequence where every element of frame t
// equals values[t]. len(values) fixes the frame count.
func FrameStepSequence(values []float64, bands, channels int) *embedding.Sequence {
	seq, err := embedding.New(len(values), bands, channels)
	if err != nil {
		panic(err)
	}

	for t, v := range values {
		frame := seq.Frame(t)
		for i := range frame {
			frame[i] = v
		}
	}

	return seq
}

// NoiseSequence returns a sequence filled with uniform noise in
// [-amplitude, amplitude], reproducible from seed.
func NoiseSequence(seed int64, frames, bands, channels int, amplitude float64) *embedding.Sequence {
	seq, err := embedding.New(frames, bands, channels)
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(seed))

	data := seq.Data()
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return seq
}

// ModulatedSequence returns a sequence whose per-frame level in each
// band oscillates sinusoidally at cyclesPerFrame around 1.0 with the
// given depth. Useful for modulation-spectrum tests.
func ModulatedSequence(frames, bands, channels int, cyclesPerFrame, depth float64) *embedding.Sequence {
	seq, err := embedding.New(frames, bands, channels)
	if err != nil {
		panic(err)
	}

	for t := 0; t < frames; t++ {
		level := 1 + depth*math.Sin(2*math.Pi*cyclesPerFrame*float64(t))

		frame := seq.Frame(t)
		for i := range frame {
			frame[i] = level
		}
	}

	return seq
}
