// Package testutil provides deterministic signals and assertions shared by
// the package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Impulse generates a unit impulse at the given position.
func Impulse[R core.Real](length, pos int) []R {
	out := make([]R, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise[R core.Real](seed int64, amplitude float64, length int) []R {
	out := make([]R, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = R((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// DeterministicSine generates a sine wave at freqHz.
func DeterministicSine[R core.Real](freqHz, sampleRate, amplitude float64, length int) []R {
	out := make([]R, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = R(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// Clone returns a copy of s.
func Clone[R core.Real](s []R) []R {
	out := make([]R, len(s))
	copy(out, s)
	return out
}
