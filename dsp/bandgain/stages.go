package bandgain

import (
	"math"

	"github.com/cwbudde/algo-bandedit/dsp/embedding"
	"github.com/cwbudde/algo-vecmath"
)

// smooth applies the causal EMA along the time axis in place. seq
// enters holding the raw frames; frame 0 is the initial state and is
// never changed. A single frame or beta <= 0 leaves seq untouched.
func (e *Editor) smooth(seq *embedding.Sequence) {
	beta := e.cfg.emaBeta
	if beta <= 0 || seq.Frames() <= 1 {
		return
	}

	// s_t = beta*s_{t-1} + (1-beta)*x_t. The recurrence is a genuine
	// sequential scan: each frame depends on the previous smoothed
	// frame, so the loop order over t is load-bearing.
	oneMinus := 1 - beta

	for t := 1; t < seq.Frames(); t++ {
		prev := seq.Frame(t - 1)
		cur := seq.Frame(t)

		for i := range cur {
			cur[i] = beta*prev[i] + oneMinus*cur[i]
		}
	}
}

// applyGains broadcast-multiplies each band block by its configured
// gain, shared across all frames and channels of that band.
func (e *Editor) applyGains(seq *embedding.Sequence) {
	for t := 0; t < seq.Frames(); t++ {
		for b := 0; b < BandCount; b++ {
			vecmath.ScaleBlockInPlace(seq.Band(t, b), e.cfg.gains[b])
		}
	}
}

// matchRMS rescales every band block of edit so its RMS matches the
// corresponding block of orig, the true pre-smoothing input.
func (e *Editor) matchRMS(edit, orig *embedding.Sequence) {
	for t := 0; t < edit.Frames(); t++ {
		for b := 0; b < BandCount; b++ {
			block := edit.Band(t, b)
			vecmath.ScaleBlockInPlace(block, bandRMS(orig.Band(t, b))/bandRMS(block))
		}
	}
}

// bandRMS returns sqrt(mean(x^2)) over one band block, floored at
// rmsEpsilon so later divisions stay bounded.
func bandRMS(block []float64) float64 {
	rms := math.Sqrt(vecmath.DotProduct(block, block) / float64(len(block)))
	if rms < rmsEpsilon {
		rms = rmsEpsilon
	}

	return rms
}

// blend mixes the edited sequence against the true original:
// (1-alpha)*orig + alpha*edit, in place on edit. alpha of exactly 1
// skips the pass.
func (e *Editor) blend(edit, orig *embedding.Sequence) {
	alpha := e.cfg.alphaMix
	if alpha == 1 {
		return
	}

	inv := 1 - alpha

	ed, od := edit.Data(), orig.Data()
	for i := range ed {
		ed[i] = inv*od[i] + alpha*ed[i]
	}
}

// post applies the global gain and the optional statistical clamp.
// The gain multiply is skipped when the factor is exactly 1 so a
// neutral setting cannot introduce rounding.
func (e *Editor) post(seq *embedding.Sequence) {
	if e.cfg.globalGain != 1 {
		vecmath.ScaleBlockInPlace(seq.Data(), e.cfg.globalGain)
	}

	if e.cfg.clampStd <= 0 {
		return
	}

	data := seq.Data()

	mean, std := meanStd(data)
	if std < stdEpsilon {
		std = stdEpsilon
	}

	lo := mean - e.cfg.clampStd*std
	hi := mean + e.cfg.clampStd*std

	for i, v := range data {
		if v < lo {
			data[i] = lo
		} else if v > hi {
			data[i] = hi
		}
	}
}

// meanStd returns the population mean and standard deviation of data
// in a single pass using Welford's update for stability.
func meanStd(data []float64) (mean, std float64) {
	if len(data) == 0 {
		return 0, 0
	}

	var m2 float64

	for i, x := range data {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, math.Sqrt(m2 / float64(len(data)))
}
