package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/statespace"
)

// Filter is a single equalizer band.
type Filter[R core.Real] struct {
	params     design.Parameters[R]
	coeffs     design.Coefficients[R]
	kernel     statespace.Kernel[R]
	sampleRate R
}

// NewFilter returns a neutral peak band (0.1 normalized, Q 1, 0 dB) at
// the given sample rate.
func NewFilter[R core.Real](sampleRate R) (*Filter[R], error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	f := &Filter[R]{
		kernel:     *statespace.NewKernel[R](),
		sampleRate: sampleRate,
	}
	err := f.apply(design.Parameters[R]{
		Curve:     design.Peak,
		Frequency: 0.1,
		Resonance: 1,
		Gain:      0,
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parameters returns a copy of the current design. Frequency is normalized.
func (f *Filter[R]) Parameters() design.Parameters[R] { return f.params }

// Coefficients returns the coefficients currently loaded in the kernel.
func (f *Filter[R]) Coefficients() design.Coefficients[R] { return f.coeffs }

// State returns a snapshot of the kernel memory.
func (f *Filter[R]) State() [2]R { return f.kernel.State() }

// SampleRate returns the sample rate in Hz.
func (f *Filter[R]) SampleRate() R { return f.sampleRate }

// Frequency returns the corner frequency in Hz.
func (f *Filter[R]) Frequency() R { return f.params.Frequency * f.sampleRate }

// SetCurve changes the filter shape.
func (f *Filter[R]) SetCurve(c design.Curve) error {
	p := f.params
	p.Curve = c
	return f.apply(p)
}

// SetFrequency sets the corner frequency in Hz.
func (f *Filter[R]) SetFrequency(hz R) error {
	norm, err := design.NormalizeFrequency(hz, f.sampleRate)
	if err != nil {
		return err
	}
	p := f.params
	p.Frequency = norm
	return f.apply(p)
}

// SetGain sets the gain in dB. It has no audible effect on curves without
// a gain term.
func (f *Filter[R]) SetGain(gainDB R) error {
	p := f.params
	p.Gain = gainDB
	return f.apply(p)
}

// SetResonance sets the Q factor.
func (f *Filter[R]) SetResonance(q R) error {
	p := f.params
	p.Resonance = q
	return f.apply(p)
}

// SetSampleRate changes the sample rate and re-derives the normalized
// frequency so the corner stays at the same frequency in Hz. The kernel
// memory is kept.
func (f *Filter[R]) SetSampleRate(sampleRate R) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	norm, err := design.NormalizeFrequency(f.Frequency(), sampleRate)
	if err != nil {
		return err
	}
	p := f.params
	p.Frequency = norm
	if err := f.apply(p); err != nil {
		return err
	}
	f.sampleRate = sampleRate
	return nil
}

// Reset zeroes the kernel memory.
func (f *Filter[R]) Reset() { f.kernel.Reset() }

// ProcessSample filters one sample.
func (f *Filter[R]) ProcessSample(x R) R { return f.kernel.Eval(x) }

// ProcessBlock filters buf in place.
func (f *Filter[R]) ProcessBlock(buf []R) { f.kernel.ProcessBlock(buf) }

func (f *Filter[R]) apply(p design.Parameters[R]) error {
	c, err := compute(p)
	if err != nil {
		return err
	}
	f.params = p
	f.coeffs = c
	f.kernel.Set(c)
	return nil
}

func compute[R core.Real](p design.Parameters[R]) (design.Coefficients[R], error) {
	return design.Compute(p.Curve, p.Frequency, p.Resonance, p.Gain)
}

func validateSampleRate[R core.Real](sampleRate R) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: %v", design.ErrInvalidSampleRate, sampleRate)
	}
	return nil
}
