package core

import "math"

const defaultEpsilon = 1e-12

// Real is the set of floating-point types the filter packages are
// instantiated with. Hosts pick float32 or float64 at their boundary.
type Real interface {
	~float32 | ~float64
}

// NearlyEqual reports whether a and b are equal within eps,
// using a relative comparison for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear[R Real](db R) R {
	return R(math.Pow(10, float64(db)/20))
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[R Real](x R) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
