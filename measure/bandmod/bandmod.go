// Package bandmod measures the modulation content of a multi-band
// embedding sequence: how fast the per-band energy envelope moves over
// time. The dominant modulation frequency of the fast bands is a
// direct proxy for audio-driven mouth motion, so comparing results
// before and after band-gain editing quantifies how much lip-rate
// movement survives.
package bandmod

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-bandedit/dsp/embedding"
	"github.com/cwbudde/algo-vecmath"
)

const minAnalysisFrames = 2

// ErrTooShort reports a sequence with too few frames to carry any
// modulation information.
var ErrTooShort = errors.New("bandmod: sequence too short for modulation analysis")

// BandResult holds the modulation measurement of one band.
type BandResult struct {
	Band int

	// MeanLevel is the average per-frame RMS of the band.
	MeanLevel float64

	// Depth is the population standard deviation of the envelope,
	// i.e. how strongly the band level moves around its mean.
	Depth float64

	// Spectrum is the magnitude spectrum of the mean-removed
	// envelope, bins 0..FFTSize/2.
	Spectrum []float64

	// PeakBin is the strongest non-DC bin of Spectrum.
	PeakBin int

	// PeakFrequency is PeakBin converted to cycles per frame.
	PeakFrequency float64
}

// Result holds the modulation measurement of a full sequence.
type Result struct {
	Frames  int
	FFTSize int
	Bands   []BandResult
}

// Analyze measures the per-band energy envelopes of seq. fftSize must
// be zero (choose the next power of two >= the frame count) or a
// power of two >= the frame count.
func Analyze(seq *embedding.Sequence, fftSize int) (Result, error) {
	if seq == nil || seq.Frames() < minAnalysisFrames {
		return Result{}, ErrTooShort
	}

	frames := seq.Frames()

	switch {
	case fftSize == 0:
		fftSize = nextPow2(frames)
	case fftSize < frames || fftSize&(fftSize-1) != 0:
		return Result{}, fmt.Errorf("bandmod: fft size must be a power of two >= %d frames: %d", frames, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("bandmod: fft plan: %w", err)
	}

	res := Result{
		Frames:  frames,
		FFTSize: fftSize,
		Bands:   make([]BandResult, seq.Bands()),
	}

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, fftSize/2+1)
	im := make([]float64, fftSize/2+1)

	envelope := make([]float64, frames)

	for b := 0; b < seq.Bands(); b++ {
		mean := bandEnvelope(envelope, seq, b)

		var m2 float64
		for _, v := range envelope {
			d := v - mean
			m2 += d * d
		}

		// Mean-removed envelope, zero padded to the FFT size.
		for t, v := range envelope {
			in[t] = complex(v-mean, 0)
		}

		for t := frames; t < fftSize; t++ {
			in[t] = 0
		}

		if err := plan.Forward(out, in); err != nil {
			return Result{}, fmt.Errorf("bandmod: fft: %w", err)
		}

		mag := make([]float64, fftSize/2+1)
		for k := range mag {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		vecmath.Magnitude(mag, re, im)

		peak := 1
		for k := 2; k < len(mag); k++ {
			if mag[k] > mag[peak] {
				peak = k
			}
		}

		res.Bands[b] = BandResult{
			Band:          b,
			MeanLevel:     mean,
			Depth:         math.Sqrt(m2 / float64(frames)),
			Spectrum:      mag,
			PeakBin:       peak,
			PeakFrequency: float64(peak) / float64(fftSize),
		}
	}

	return res, nil
}

// bandEnvelope fills dst with the per-frame RMS of band b and returns
// the envelope mean.
func bandEnvelope(dst []float64, seq *embedding.Sequence, b int) float64 {
	var sum float64

	for t := range dst {
		block := seq.Band(t, b)
		dst[t] = math.Sqrt(vecmath.DotProduct(block, block) / float64(len(block)))
		sum += dst[t]
	}

	return sum / float64(len(dst))
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
