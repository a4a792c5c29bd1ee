package statespace

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

var benchCoeffs = design.Parameters[float32]{
	Curve:     design.Peak,
	Frequency: 1000.0 / 48000,
	Resonance: 10,
	Gain:      -12,
}.DigitalTransfer()

func BenchmarkEval(b *testing.B) {
	k := NewKernel[float32]()
	k.Set(benchCoeffs)
	x := float32(1)
	for b.Loop() {
		x = k.Eval(x)
	}
	_ = x
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			k := NewKernel[float32]()
			k.Set(benchCoeffs)
			buf := make([]float32, size)
			for i := range buf {
				buf[i] = float32(i%7) * 0.1
			}
			b.SetBytes(int64(size * 4))
			b.ResetTimer()
			for b.Loop() {
				k.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkSampleAccurateAutomation(b *testing.B) {
	k := NewKernel[float32]()
	p := design.Parameters[float32]{Curve: design.Peak, Frequency: 1000.0 / 48000, Resonance: 10, Gain: -12}
	x := float32(0.5)
	for b.Loop() {
		k.Set(p.DigitalTransfer())
		x = k.Eval(x)
	}
	_ = x
}
