package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

var (
	ErrInvalidCurve      = errors.New("design: unknown curve")
	ErrInvalidFrequency  = errors.New("design: frequency must be finite and non-negative")
	ErrAboveNyquist      = errors.New("design: frequency must be below Nyquist")
	ErrInvalidResonance  = errors.New("design: resonance must be finite and positive")
	ErrInvalidGain       = errors.New("design: gain must be finite")
	ErrInvalidSampleRate = errors.New("design: sample rate must be finite and positive")
	ErrNonFinite         = errors.New("design: coefficients are not finite")
)

// Parameters are the human-facing design inputs of one filter section.
//
// Frequency is normalized (cycles/sample, Hz / sample rate) and must lie
// in [0, 0.5). Gain is in dB and only affects curves for which
// [Curve.UsesGain] is true.
type Parameters[R core.Real] struct {
	Curve     Curve
	Frequency R
	Resonance R
	Gain      R
}

// DefaultParameters returns a neutral peak at 1/24 of the sample rate
// with Q = sqrt(0.5) and 0 dB gain.
func DefaultParameters[R core.Real]() Parameters[R] {
	return Parameters[R]{
		Curve:     Peak,
		Frequency: R(1.0 / 24.0),
		Resonance: R(math.Sqrt(0.5)),
		Gain:      0,
	}
}

// Validate checks the design preconditions. A nil result guarantees that
// [Parameters.DigitalTransfer] evaluates without division by zero.
func (p Parameters[R]) Validate() error {
	if !p.Curve.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCurve, int(p.Curve))
	}
	if !core.IsFinite(p.Frequency) || p.Frequency < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, p.Frequency)
	}
	if p.Frequency >= 0.5 {
		return fmt.Errorf("%w: normalized frequency %v", ErrAboveNyquist, p.Frequency)
	}
	if !core.IsFinite(p.Resonance) || p.Resonance <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidResonance, p.Resonance)
	}
	if !core.IsFinite(p.Gain) {
		return fmt.Errorf("%w: %v", ErrInvalidGain, p.Gain)
	}
	return nil
}

// NormalizeFrequency converts a frequency in Hz to cycles/sample.
// It fails when frequency is not strictly below sampleRate/2.
func NormalizeFrequency[R core.Real](frequency, sampleRate R) (R, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !core.IsFinite(frequency) || frequency < 0 {
		return 0, fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, frequency)
	}
	if frequency >= sampleRate/2 {
		return 0, fmt.Errorf("%w: %v Hz at %v Hz sample rate", ErrAboveNyquist, frequency, sampleRate)
	}
	return frequency / sampleRate, nil
}
