package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/statespace"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestAnalyze_Impulse(t *testing.T) {
	s, err := Analyze(testutil.Impulse[float64](16, 0), 48000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.FFTSize != 16 || s.Bins() != 9 {
		t.Fatalf("FFTSize = %d, Bins = %d", s.FFTSize, s.Bins())
	}
	for k, m := range s.Magnitude {
		if math.Abs(m-1) > 1e-12 {
			t.Fatalf("bin %d: |X| = %v, want 1", k, m)
		}
	}
	if got := s.BinFrequency(4); got != 12000 {
		t.Fatalf("BinFrequency(4) = %v", got)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	if _, err := Analyze(nil, 48000, 0); !errors.Is(err, ErrEmptyIR) {
		t.Fatalf("empty IR error = %v", err)
	}
	if _, err := Analyze([]float64{1}, 0, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("zero sample rate error = %v", err)
	}
	if _, err := Analyze([]float64{1}, 48000, 12); !errors.Is(err, ErrInvalidFFTSize) {
		t.Fatalf("non power-of-two error = %v", err)
	}
	if _, err := MeasureKernel(statespace.NewKernel[float64](), 48000, 1); !errors.Is(err, ErrInvalidFFTSize) {
		t.Fatalf("MeasureKernel size 1 error = %v", err)
	}
}

func TestMeasureKernel_MatchesClosedForm(t *testing.T) {
	tests := []struct {
		curve design.Curve
		f, q  float64
		gain  float64
	}{
		{design.Lowpass, 0.1, math.Sqrt(0.5), 0},
		{design.Highpass, 0.05, 1, 0},
		{design.Peak, 0.08, 2, 9},
		{design.Lowshelf, 0.04, 0.7, -6},
		{design.Highshelf, 0.2, 1, 4},
	}
	for _, tc := range tests {
		c, err := design.Compute(tc.curve, tc.f, tc.q, tc.gain)
		if err != nil {
			t.Fatal(err)
		}
		k := statespace.NewKernel[float64]()
		k.Set(c)

		s, err := MeasureKernel(k, 48000, 4096)
		if err != nil {
			t.Fatal(err)
		}
		if d := Deviation(c, s); d > 1e-6 {
			t.Errorf("%v: measured response deviates by %v dB", tc.curve, d)
		}
		if k.State() != [2]float64{} {
			t.Errorf("%v: MeasureKernel changed kernel state", tc.curve)
		}
	}
}

func TestMagnitudeDBAt(t *testing.T) {
	s := &Spectrum{SampleRate: 8, FFTSize: 8, Magnitude: []float64{1, 10, 100, 1000, 10}}
	if got := s.MagnitudeDBAt(1); math.Abs(got-20) > 1e-12 {
		t.Fatalf("MagnitudeDBAt(1) = %v, want 20", got)
	}
	if got := s.MagnitudeDBAt(-3); got != 0 {
		t.Fatalf("clamped low = %v, want 0", got)
	}
	if got := s.MagnitudeDBAt(100); math.Abs(got-20) > 1e-12 {
		t.Fatalf("clamped high = %v, want 20", got)
	}
	if got := s.MagnitudeDBAt(0.5); math.Abs(got-20*math.Log10(5.5)) > 1e-12 {
		t.Fatalf("interpolated = %v", got)
	}
}
