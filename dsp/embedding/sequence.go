package embedding

import (
	"errors"
	"fmt"
)

// ErrInvalidShape reports a sequence whose dimensions or backing data
// length are inconsistent.
var ErrInvalidShape = errors.New("embedding: invalid sequence shape")

// Sequence is a dense [frames, bands, channels] tensor backed by a
// flat float64 slice. Frame index varies slowest, channel index
// fastest, so the channels of one band of one frame form a contiguous
// block.
type Sequence struct {
	data     []float64
	frames   int
	bands    int
	channels int
}

// New returns a zero-filled Sequence with the given dimensions.
// All dimensions must be >= 1.
func New(frames, bands, channels int) (*Sequence, error) {
	if frames < 1 || bands < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: [%d, %d, %d]", ErrInvalidShape, frames, bands, channels)
	}

	return &Sequence{
		data:     make([]float64, frames*bands*channels),
		frames:   frames,
		bands:    bands,
		channels: channels,
	}, nil
}

// FromSlice wraps an existing flat slice without copying.
// The slice length must equal frames*bands*channels and all dimensions
// must be >= 1. Mutations to the slice are visible through the
// Sequence and vice versa.
func FromSlice(data []float64, frames, bands, channels int) (*Sequence, error) {
	if frames < 1 || bands < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: [%d, %d, %d]", ErrInvalidShape, frames, bands, channels)
	}

	if len(data) != frames*bands*channels {
		return nil, fmt.Errorf("%w: [%d, %d, %d] needs %d values, got %d",
			ErrInvalidShape, frames, bands, channels, frames*bands*channels, len(data))
	}

	return &Sequence{
		data:     data,
		frames:   frames,
		bands:    bands,
		channels: channels,
	}, nil
}

// Frames returns the number of time frames T.
func (s *Sequence) Frames() int { return s.frames }

// Bands returns the number of bands B.
func (s *Sequence) Bands() int { return s.bands }

// Channels returns the per-band channel count C.
func (s *Sequence) Channels() int { return s.channels }

// Len returns the total number of elements (T*B*C).
func (s *Sequence) Len() int { return len(s.data) }

// Data returns the backing slice in [frame][band][channel] order.
func (s *Sequence) Data() []float64 { return s.data }

// Frame returns the backing storage of frame t as a [bands*channels]
// subslice view. Panics if t is out of range.
func (s *Sequence) Frame(t int) []float64 {
	if t < 0 || t >= s.frames {
		panic(fmt.Sprintf("embedding: frame index %d out of range [0, %d)", t, s.frames))
	}

	stride := s.bands * s.channels

	return s.data[t*stride : (t+1)*stride]
}

// Band returns the backing storage of band b of frame t as a
// [channels] subslice view. Panics if either index is out of range.
func (s *Sequence) Band(t, b int) []float64 {
	if t < 0 || t >= s.frames {
		panic(fmt.Sprintf("embedding: frame index %d out of range [0, %d)", t, s.frames))
	}

	if b < 0 || b >= s.bands {
		panic(fmt.Sprintf("embedding: band index %d out of range [0, %d)", b, s.bands))
	}

	off := (t*s.bands + b) * s.channels

	return s.data[off : off+s.channels]
}

// At returns the element at (t, b, c). Panics if any index is out of
// range.
func (s *Sequence) At(t, b, c int) float64 {
	if c < 0 || c >= s.channels {
		panic(fmt.Sprintf("embedding: channel index %d out of range [0, %d)", c, s.channels))
	}

	return s.Band(t, b)[c]
}

// SetAt stores v at (t, b, c). Panics if any index is out of range.
func (s *Sequence) SetAt(t, b, c int, v float64) {
	if c < 0 || c >= s.channels {
		panic(fmt.Sprintf("embedding: channel index %d out of range [0, %d)", c, s.channels))
	}

	s.Band(t, b)[c] = v
}

// Clone returns a deep copy with its own backing storage.
func (s *Sequence) Clone() *Sequence {
	data := make([]float64, len(s.data))
	copy(data, s.data)

	return &Sequence{
		data:     data,
		frames:   s.frames,
		bands:    s.bands,
		channels: s.channels,
	}
}

// Shape returns the dimensions as [frames, bands, channels].
func (s *Sequence) Shape() [3]int {
	return [3]int{s.frames, s.bands, s.channels}
}
