package eq_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func ExampleEqualizer() {
	e, err := eq.New(float32(48000))
	if err != nil {
		panic(err)
	}

	if err := e.Set(0, design.Highpass, 100, float32(math.Sqrt(0.5)), 0); err != nil {
		panic(err)
	}
	if err := e.Set(1, design.Peak, 1000, 10, -12); err != nil {
		panic(err)
	}

	h := make([]float32, 512)
	h[0] = 1
	e.ProcessBuffer(h)
	fmt.Printf("h[0] = %.4f\n", h[0])

	// The lowest band can be taken out of the path without losing its design.
	if err := e.SetBypass(0, true); err != nil {
		panic(err)
	}
	fmt.Println(e.IsBypassed(0), e.Design(0).Curve)
	// Output:
	// h[0] = 0.9906
	// true highpass
}

func ExampleFilter_SetFrequency() {
	f, err := eq.NewFilter(48000.0)
	if err != nil {
		panic(err)
	}

	err = f.SetFrequency(30000)
	fmt.Println(err)
	// Output:
	// design: frequency must be below Nyquist: 30000 Hz at 48000 Hz sample rate
}
