// Package response measures filter frequency responses offline.
//
// An impulse response is transformed with an FFT and reduced to a
// magnitude spectrum, which can then be compared against the closed-form
// response of the coefficients that produced it. Nothing here is meant
// for the audio thread.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/statespace"
)

// Errors returned by response analysis.
var (
	ErrEmptyIR           = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("response: FFT size must be a power of two >= 2")
)

// floorDB excludes bins at transmission zeros from comparisons.
const floorDB = -100.0

// Spectrum is the one-sided magnitude spectrum of an impulse response.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	// Magnitude holds |H| for bins 0..FFTSize/2.
	Magnitude []float64
}

// Analyze computes the magnitude spectrum of ir. An fftSize of 0 selects
// the next power of two >= len(ir). Samples beyond fftSize are ignored.
func Analyze(ir []float64, sampleRate float64, fftSize int) (*Spectrum, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}
	if fftSize == 0 {
		fftSize = max(nextPowerOf2(len(ir)), 2)
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir[:min(len(ir), fftSize)] {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Spectrum{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Magnitude:  mag,
	}, nil
}

// MeasureKernel records fftSize samples of the kernel's impulse response
// and analyzes it. The kernel memory is left unchanged.
func MeasureKernel[R core.Real](k *statespace.Kernel[R], sampleRate float64, fftSize int) (*Spectrum, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}
	h := k.ImpulseResponse(fftSize)
	ir := make([]float64, len(h))
	for i, v := range h {
		ir[i] = float64(v)
	}
	return Analyze(ir, sampleRate, fftSize)
}

// Bins returns the number of one-sided bins.
func (s *Spectrum) Bins() int { return len(s.Magnitude) }

// BinFrequency returns the center frequency of bin k in Hz.
func (s *Spectrum) BinFrequency(k int) float64 {
	return float64(k) * s.SampleRate / float64(s.FFTSize)
}

// MagnitudeDBAt returns the magnitude at freqHz in dB, linearly
// interpolating between neighboring bins. Frequencies outside
// [0, Nyquist] are clamped.
func (s *Spectrum) MagnitudeDBAt(freqHz float64) float64 {
	pos := freqHz * float64(s.FFTSize) / s.SampleRate
	last := float64(len(s.Magnitude) - 1)
	pos = math.Max(0, math.Min(pos, last))

	lo := int(math.Floor(pos))
	if lo >= len(s.Magnitude)-1 {
		return core.LinearToDB(s.Magnitude[len(s.Magnitude)-1])
	}
	frac := pos - float64(lo)
	m := s.Magnitude[lo]*(1-frac) + s.Magnitude[lo+1]*frac
	return core.LinearToDB(m)
}

// Deviation returns the largest absolute dB difference between the
// closed-form response of c and the measured spectrum. Bins where the
// closed-form response is below -100 dB are skipped.
func Deviation[R core.Real](c design.Coefficients[R], s *Spectrum) float64 {
	var worst float64
	for k, m := range s.Magnitude {
		want := core.LinearToDB(cmplx.Abs(c.Response(float64(k) / float64(s.FFTSize))))
		if want < floorDB {
			continue
		}
		if d := math.Abs(core.LinearToDB(m) - want); d > worst {
			worst = d
		}
	}
	return worst
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
