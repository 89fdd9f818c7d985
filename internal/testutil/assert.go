package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bandedit/dsp/embedding"
)

// RequireNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSequenceNearlyEqual fails t if got and want differ in shape
// or if any element pair exceeds eps (absolute tolerance).
func RequireSequenceNearlyEqual(t *testing.T, got, want *embedding.Sequence, eps float64) {
	t.Helper()

	if got.Shape() != want.Shape() {
		t.Fatalf("shape mismatch: got %v, want %v", got.Shape(), want.Shape())
	}

	gd, wd := got.Data(), want.Data()
	for i := range gd {
		if diff := math.Abs(gd[i] - wd[i]); diff > eps {
			t.Fatalf("element %d: got %v, want %v (diff %v > eps %v)", i, gd[i], wd[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element of data is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
