package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/internal/linalg"
)

// Coefficients is a digital biquad transfer function
//
//	H(z) = (Num[0] + Num[1] z^-1 + Num[2] z^-2) / (Den[0] + Den[1] z^-1 + Den[2] z^-2)
//
// Values produced by this package are normalized so that Den[0] == 1.
type Coefficients[R core.Real] struct {
	Num [3]R
	Den [3]R
}

// Identity returns the pass-through transfer function H(z) = 1.
func Identity[R core.Real]() Coefficients[R] {
	return Coefficients[R]{Num: [3]R{1, 0, 0}, Den: [3]R{1, 0, 0}}
}

// Compute validates the design inputs and returns the normalized digital
// coefficients. frequency is normalized (see [NormalizeFrequency]).
func Compute[R core.Real](curve Curve, frequency, resonance, gainDB R) (Coefficients[R], error) {
	p := Parameters[R]{Curve: curve, Frequency: frequency, Resonance: resonance, Gain: gainDB}
	if err := p.Validate(); err != nil {
		return Coefficients[R]{}, err
	}

	c := p.DigitalTransfer()
	if !c.IsFinite() {
		return Coefficients[R]{}, fmt.Errorf("%w: %v", ErrNonFinite, c)
	}
	return c, nil
}

// DigitalTransfer computes the normalized digital transfer function.
//
// It does not validate p; callers on the audio thread are expected to have
// called [Parameters.Validate] when the parameters were set.
func (p Parameters[R]) DigitalTransfer() Coefficients[R] {
	num, den := p.AnalogTransfer()
	tn, td := bilinear(num), bilinear(den)
	k := td[0]

	return Coefficients[R]{
		Num: [3]R{tn[0] / k, tn[1] / k, tn[2] / k},
		Den: [3]R{td[0] / k, td[1] / k, td[2] / k},
	}
}

// AnalogTransfer returns the continuous-time prototype
//
//	H(s) = (num[0] s^2 + num[1] s + num[2]) / (den[0] s^2 + den[1] s + den[2])
//
// with the corner frequency pre-warped for the bilinear transform.
// An invalid curve yields an identity prototype.
func (p Parameters[R]) AnalogTransfer() (num, den [3]R) {
	wc := prewarp(p.Frequency)
	q := p.Resonance
	a := sqrt(core.DBToLinear(p.Gain))

	den = [3]R{1, wc / q, wc * wc}

	switch p.Curve {
	case Lowpass:
		num = [3]R{0, 0, wc * wc}
	case Highpass:
		num = [3]R{1, 0, 0}
	case Bandpass:
		num = [3]R{0, wc / q, 0}
	case Notch:
		num = [3]R{1, 0, wc * wc}
	case Peak:
		num = [3]R{1, wc * a / q, wc * wc}
		den = [3]R{1, wc / (q * a), wc * wc}
	case Highshelf:
		num = [3]R{a, wc * sqrt(a) / q, wc * wc}
		den = [3]R{1, wc * sqrt(a) / q, wc * wc * a}
		num, den = scale3(num, a), scale3(den, a)
	case Lowshelf:
		num = [3]R{1, wc * sqrt(a) / q, wc * wc * a}
		den = [3]R{a, wc * sqrt(a) / q, wc * wc}
		num, den = scale3(num, a), scale3(den, a)
	default:
		num = den
	}

	return num, den
}

// prewarp maps a normalized frequency to the analog corner used by the
// prototype: 4*tan(f*pi/2).
func prewarp[R core.Real](f R) R {
	return 4 * R(math.Tan(float64(f*0.5*math.Pi)))
}

// bilinear maps an analog quadratic q0 s^2 + q1 s + q2 to z^-1 powers
// through s = 4(1 - z^-1)/(1 + z^-1).
func bilinear[R core.Real](q [3]R) linalg.Vec3[R] {
	x := linalg.Mat3[R]{
		{1, 1, 1},
		{-2, 0, 2},
		{1, -1, 1},
	}
	tq := linalg.Vec3[R](q).Mul(linalg.Vec3[R]{1, 1.0 / 4, 1.0 / 16})
	return x.MulVec(tq)
}

func scale3[R core.Real](v [3]R, k R) [3]R {
	return [3]R(linalg.Vec3[R](v).Scale(k))
}

func sqrt[R core.Real](x R) R {
	return R(math.Sqrt(float64(x)))
}
