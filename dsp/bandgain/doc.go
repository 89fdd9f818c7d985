// Package bandgain edits multi-band audio-derived embedding sequences
// before a downstream motion generator consumes them. The Editor runs
// a deterministic pipeline over a [T, 5, C] sequence: causal EMA
// smoothing along time, per-band gain, optional RMS preservation,
// residual blend against the original, global gain, and an optional
// statistical clamp.
//
// The default parameters form the lip-sync suppression preset: the two
// fast bands (onsets, short-term rhythm) are boosted into smoothing
// while the long-range bands are attenuated to near silence, which
// removes audio-driven mouth motion without disturbing the rest of the
// embedding contract.
//
// Editors are immutable after construction and safe for concurrent use
// on independent inputs; Process never mutates its input sequence and
// Apply never mutates its input container.
package bandgain
