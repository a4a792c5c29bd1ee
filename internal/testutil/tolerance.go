package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[R core.Real](t testing.TB, got, want []R, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[R core.Real](t testing.TB, data []R) {
	t.Helper()
	for i, v := range data {
		if !core.IsFinite(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbs returns the largest absolute value in data.
func MaxAbs[R core.Real](data []R) float64 {
	var m float64
	for _, v := range data {
		if a := math.Abs(float64(v)); a > m {
			m = a
		}
	}
	return m
}
