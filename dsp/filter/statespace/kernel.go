package statespace

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/internal/linalg"
)

// Kernel is a single second-order section in state-space form:
//
//	y  = C · [x, s0, s1]
//	s' = A s + B x
//
// The zero value is not usable; construct with [NewKernel].
type Kernel[R core.Real] struct {
	A linalg.Mat2[R]
	B linalg.Vec2[R]
	C linalg.Vec3[R]

	s          linalg.Vec2[R]
	configured bool
}

// NewKernel returns a kernel that passes its input through unchanged
// until the first call to [Kernel.Set]. The default matrices are A = 0,
// B = [1, 0] and C = [1, 0, 0]: C carries the input term so that
// Eval(x) == x, and B only feeds state that C never reads.
func NewKernel[R core.Real]() *Kernel[R] {
	k := &Kernel[R]{}
	k.setDefault()
	return k
}

func (k *Kernel[R]) setDefault() {
	k.A = linalg.Mat2[R]{}
	k.B = linalg.Vec2[R]{1, 0}
	k.C = linalg.Vec3[R]{1, 0, 0}
	k.configured = false
}

// Set derives the state-space matrices from normalized coefficients
// (Den[0] == 1). The memory state is preserved.
func (k *Kernel[R]) Set(c design.Coefficients[R]) {
	n, d := c.Num, c.Den
	k.A = linalg.Mat2[R]{
		{-d[1], 1},
		{-d[2], 0},
	}
	k.B = linalg.Vec2[R]{n[1] - d[1]*n[0], n[2] - d[2]*n[0]}
	k.C = linalg.Vec3[R]{n[0], 1, 0}
	k.configured = true
}

// Configured reports whether Set has been called at least once.
func (k *Kernel[R]) Configured() bool {
	return k.configured
}

// Reset zeroes the memory state. Coefficients are untouched.
func (k *Kernel[R]) Reset() {
	k.s = linalg.Vec2[R]{}
}

// Eval filters one sample.
func (k *Kernel[R]) Eval(x R) R {
	y := k.C.Dot(linalg.Vec3[R]{x, k.s[0], k.s[1]})
	k.s = k.A.MulVec(k.s).Add(k.B.Scale(x))
	return y
}

// ProcessBlock filters buf in place, in order. Zero-alloc.
func (k *Kernel[R]) ProcessBlock(buf []R) {
	for i, x := range buf {
		buf[i] = k.Eval(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (k *Kernel[R]) ProcessBlockTo(dst, src []R) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = k.Eval(x)
	}
}

// State returns a snapshot of the memory state [s0, s1].
func (k *Kernel[R]) State() [2]R {
	return [2]R(k.s)
}

// SetState restores a previously saved memory state.
func (k *Kernel[R]) SetState(state [2]R) {
	k.s = linalg.Vec2[R](state)
}

// ImpulseResponse computes n samples of the impulse response with the
// current matrices. The memory state is saved and restored.
func (k *Kernel[R]) ImpulseResponse(n int) []R {
	if n <= 0 {
		return nil
	}
	saved := k.State()
	k.Reset()
	ir := make([]R, n)
	ir[0] = k.Eval(1)
	for i := 1; i < n; i++ {
		ir[i] = k.Eval(0)
	}
	k.SetState(saved)
	return ir
}
