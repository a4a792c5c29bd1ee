package eq

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/statespace"
)

// NumBands is the default number of bands in an Equalizer.
const NumBands = 32

// ErrBandIndex is returned when a band index is outside [0, NumBands()).
var ErrBandIndex = errors.New("eq: band index out of range")

// band is one equalizer slot. Design, kernel and bypass flag live in a
// single record so they can never drift apart.
type band[R core.Real] struct {
	design design.Parameters[R]
	coeffs design.Coefficients[R]
	kernel statespace.Kernel[R]
	bypass bool
}

// Equalizer is a series cascade of independently configurable bands.
//
// Band indices are checked by [Equalizer.CheckIndex]. Setters call it and
// return [ErrBandIndex]; getters index the band slice directly and panic
// on a bad index, so callers with untrusted indices check first.
type Equalizer[R core.Real] struct {
	bands      []band[R]
	sampleRate R
}

type config struct {
	bands int
}

// Option configures an Equalizer.
type Option func(*config)

// WithBandCount sets the number of bands. Non-positive values are ignored.
func WithBandCount(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.bands = n
		}
	}
}

// New returns an equalizer with every band bypassed and loaded with the
// neutral default design.
func New[R core.Real](sampleRate R, opts ...Option) (*Equalizer[R], error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	cfg := config{bands: NumBands}
	for _, o := range opts {
		o(&cfg)
	}

	e := &Equalizer[R]{
		bands:      make([]band[R], cfg.bands),
		sampleRate: sampleRate,
	}

	defaults := design.DefaultParameters[R]()
	coeffs := defaults.DigitalTransfer()
	for i := range e.bands {
		b := &e.bands[i]
		b.design = defaults
		b.coeffs = coeffs
		b.kernel = *statespace.NewKernel[R]()
		b.kernel.Set(coeffs)
		b.bypass = true
	}
	return e, nil
}

// NumBands returns the number of bands.
func (e *Equalizer[R]) NumBands() int { return len(e.bands) }

// SampleRate returns the sample rate in Hz.
func (e *Equalizer[R]) SampleRate() R { return e.sampleRate }

// Set configures band idx and enables it.
func (e *Equalizer[R]) Set(idx int, curve design.Curve, frequencyHz, resonance, gainDB R) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	norm, err := design.NormalizeFrequency(frequencyHz, e.sampleRate)
	if err != nil {
		return fmt.Errorf("eq: band %d: %w", idx, err)
	}
	p := design.Parameters[R]{Curve: curve, Frequency: norm, Resonance: resonance, Gain: gainDB}
	if err := e.update(idx, p); err != nil {
		return err
	}
	e.bands[idx].bypass = false
	return nil
}

// SetParameters applies a complete design (normalized frequency) to band
// idx without changing its bypass flag.
func (e *Equalizer[R]) SetParameters(idx int, p design.Parameters[R]) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	return e.update(idx, p)
}

// SetCurve changes the shape of band idx.
func (e *Equalizer[R]) SetCurve(idx int, curve design.Curve) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	p := e.bands[idx].design
	p.Curve = curve
	return e.update(idx, p)
}

// SetFrequency sets the corner frequency of band idx in Hz.
func (e *Equalizer[R]) SetFrequency(idx int, frequencyHz R) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	norm, err := design.NormalizeFrequency(frequencyHz, e.sampleRate)
	if err != nil {
		return fmt.Errorf("eq: band %d: %w", idx, err)
	}
	p := e.bands[idx].design
	p.Frequency = norm
	return e.update(idx, p)
}

// SetGain sets the gain of band idx in dB.
func (e *Equalizer[R]) SetGain(idx int, gainDB R) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	p := e.bands[idx].design
	p.Gain = gainDB
	return e.update(idx, p)
}

// SetResonance sets the Q factor of band idx.
func (e *Equalizer[R]) SetResonance(idx int, resonance R) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	p := e.bands[idx].design
	p.Resonance = resonance
	return e.update(idx, p)
}

// SetBypass excludes (true) or includes (false) band idx in the signal
// path. The band keeps its design and memory while bypassed.
func (e *Equalizer[R]) SetBypass(idx int, bypass bool) error {
	if err := e.CheckIndex(idx); err != nil {
		return err
	}
	e.bands[idx].bypass = bypass
	return nil
}

// BypassAll sets the bypass flag of every band.
func (e *Equalizer[R]) BypassAll(bypass bool) {
	for i := range e.bands {
		e.bands[i].bypass = bypass
	}
}

// IsBypassed reports whether band idx is bypassed. It panics if idx is
// out of range.
func (e *Equalizer[R]) IsBypassed(idx int) bool {
	return e.bands[idx].bypass
}

// Design returns the design of band idx. Frequency is normalized.
// It panics if idx is out of range.
func (e *Equalizer[R]) Design(idx int) design.Parameters[R] {
	return e.bands[idx].design
}

// Coefficients returns the coefficients loaded in band idx.
// It panics if idx is out of range.
func (e *Equalizer[R]) Coefficients(idx int) design.Coefficients[R] {
	return e.bands[idx].coeffs
}

// State returns the kernel memory of band idx.
// It panics if idx is out of range.
func (e *Equalizer[R]) State(idx int) [2]R {
	return e.bands[idx].kernel.State()
}

// FrequencyHz returns the corner frequency of band idx in Hz.
// It panics if idx is out of range.
func (e *Equalizer[R]) FrequencyHz(idx int) R {
	return e.bands[idx].design.Frequency * e.sampleRate
}

// SetSampleRate changes the sample rate. Every band keeps its corner
// frequency in Hz and is redesigned for the new rate. If any band would
// end up at or above the new Nyquist frequency nothing is changed.
func (e *Equalizer[R]) SetSampleRate(sampleRate R) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	// Validate every band before committing so a failure leaves the
	// equalizer untouched.
	for i := range e.bands {
		if _, _, err := e.redesign(i, sampleRate); err != nil {
			return err
		}
	}

	for i := range e.bands {
		p, c, _ := e.redesign(i, sampleRate)
		b := &e.bands[i]
		b.design = p
		b.coeffs = c
		b.kernel.Set(c)
	}
	e.sampleRate = sampleRate
	return nil
}

func (e *Equalizer[R]) redesign(idx int, sampleRate R) (design.Parameters[R], design.Coefficients[R], error) {
	p := e.bands[idx].design
	norm, err := design.NormalizeFrequency(p.Frequency*e.sampleRate, sampleRate)
	if err != nil {
		return p, design.Coefficients[R]{}, fmt.Errorf("eq: band %d: %w", idx, err)
	}
	p.Frequency = norm
	c, err := compute(p)
	if err != nil {
		return p, c, fmt.Errorf("eq: band %d: %w", idx, err)
	}
	return p, c, nil
}

// Reset zeroes the memory of every band.
func (e *Equalizer[R]) Reset() {
	for i := range e.bands {
		e.bands[i].kernel.Reset()
	}
}

// ProcessSample folds x through every active band in band order.
func (e *Equalizer[R]) ProcessSample(x R) R {
	for i := range e.bands {
		b := &e.bands[i]
		if b.bypass {
			continue
		}
		x = b.kernel.Eval(x)
	}
	return x
}

// ProcessBuffer filters buf in place, sample by sample.
func (e *Equalizer[R]) ProcessBuffer(buf []R) {
	for i, x := range buf {
		buf[i] = e.ProcessSample(x)
	}
}

// Response returns the combined complex response of the active bands at
// freqHz. It is intended for analysis and plotting.
func (e *Equalizer[R]) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	norm := freqHz / float64(e.sampleRate)
	for i := range e.bands {
		if e.bands[i].bypass {
			continue
		}
		h *= e.bands[i].coeffs.Response(norm)
	}
	return h
}

// MagnitudeDB returns the combined magnitude response in dB at freqHz.
func (e *Equalizer[R]) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(e.Response(freqHz)))
}

func (e *Equalizer[R]) update(idx int, p design.Parameters[R]) error {
	c, err := compute(p)
	if err != nil {
		return fmt.Errorf("eq: band %d: %w", idx, err)
	}
	b := &e.bands[idx]
	b.design = p
	b.coeffs = c
	b.kernel.Set(c)
	return nil
}

// CheckIndex returns an error wrapping [ErrBandIndex] unless
// 0 <= idx < NumBands().
func (e *Equalizer[R]) CheckIndex(idx int) error {
	if idx < 0 || idx >= len(e.bands) {
		return fmt.Errorf("%w: %d (bands: %d)", ErrBandIndex, idx, len(e.bands))
	}
	return nil
}
