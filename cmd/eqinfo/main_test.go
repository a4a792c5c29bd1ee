package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func TestLogFrequencies(t *testing.T) {
	f := logFrequencies(48000, 8)
	if len(f) != 8 {
		t.Fatalf("len = %d, want 8", len(f))
	}
	if math.Abs(f[0]-20) > 1e-9 {
		t.Fatalf("first = %v, want 20", f[0])
	}
	if f[len(f)-1] >= 24000 {
		t.Fatalf("last = %v, must be below Nyquist", f[len(f)-1])
	}
	for i := 1; i < len(f); i++ {
		if f[i] <= f[i-1] {
			t.Fatalf("not increasing at %d: %v", i, f)
		}
	}
}

func TestPrintBand(t *testing.T) {
	b := band{curve: design.Peak, hz: 1000, q: 1, gainDB: 6, sampleRate: 48000}
	measured, err := measureBand(b, 4096)
	if err != nil {
		t.Fatalf("measureBand: %v", err)
	}

	var out bytes.Buffer
	if err := printBand(&out, b, 4, measured); err != nil {
		t.Fatalf("printBand: %v", err)
	}
	s := out.String()
	for _, want := range []string{"peak", "num", "den", "stable  true", "A  [", "Measured [dB]", "max deviation"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestPrintBand_AboveNyquist(t *testing.T) {
	b := band{curve: design.Lowpass, hz: 30000, q: 1, sampleRate: 48000}
	if err := printBand(&bytes.Buffer{}, b, 4, nil); err == nil {
		t.Fatal("expected error for frequency above Nyquist")
	}
}
