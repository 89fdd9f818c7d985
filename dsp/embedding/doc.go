// Package embedding provides the data types shared by the band-gain
// pipeline: a dense rank-3 feature sequence and the carrier container
// that transports it alongside unrelated auxiliary values.
//
// A Sequence holds T frames of B bands with C channels each, stored
// row-major in a single flat []float64 so that one band of one frame
// is a contiguous block. Numeric kernels accept raw []float64 slices;
// Frame and Band expose the backing storage directly to bridge.
package embedding
