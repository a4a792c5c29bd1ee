package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Response evaluates H(e^jw) at a normalized frequency (cycles/sample).
// It is meant for analysis and plotting, not for the audio thread.
func (c Coefficients[R]) Response(normFreq float64) complex128 {
	w := 2 * math.Pi * normFreq
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(float64(c.Num[0]), 0) + complex(float64(c.Num[1]), 0)*ejw + complex(float64(c.Num[2]), 0)*ej2w
	den := complex(float64(c.Den[0]), 0) + complex(float64(c.Den[1]), 0)*ejw + complex(float64(c.Den[2]), 0)*ej2w
	return num / den
}

// MagnitudeDB returns 20*log10|H| at a normalized frequency.
func (c Coefficients[R]) MagnitudeDB(normFreq float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(normFreq)))
}

// Phase returns the phase response in radians at a normalized frequency.
func (c Coefficients[R]) Phase(normFreq float64) float64 {
	return cmplx.Phase(c.Response(normFreq))
}

// IsFinite reports whether every coefficient is finite.
func (c Coefficients[R]) IsFinite() bool {
	for i := range 3 {
		if !core.IsFinite(c.Num[i]) || !core.IsFinite(c.Den[i]) {
			return false
		}
	}
	return true
}

// Stable reports whether both poles lie strictly inside the unit circle
// (Jury criterion for a second-order denominator).
func (c Coefficients[R]) Stable() bool {
	d0 := float64(c.Den[0])
	if d0 == 0 {
		return false
	}
	a1 := float64(c.Den[1]) / d0
	a2 := float64(c.Den[2]) / d0
	return math.Abs(a2) < 1 && math.Abs(a1) < 1+a2
}
