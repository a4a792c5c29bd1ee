package core

// EnsureLen returns a slice of length n, reusing buf when its capacity allows.
func EnsureLen[R Real](buf []R, n int) []R {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]R, n)
}

// Deinterleave copies channel ch of the interleaved frames in src into
// dst, converting the sample type. It returns the number of frames copied.
func Deinterleave[D, S Real](dst []D, src []S, channels, ch int) int {
	if channels < 1 || ch < 0 || ch >= channels {
		return 0
	}
	n := min(len(dst), len(src)/channels)
	for i := range n {
		dst[i] = D(src[i*channels+ch])
	}
	return n
}

// Interleave writes src into channel ch of the interleaved frames in dst.
// It returns the number of frames written.
func Interleave[D, S Real](dst []D, src []S, channels, ch int) int {
	if channels < 1 || ch < 0 || ch >= channels {
		return 0
	}
	n := min(len(src), len(dst)/channels)
	for i := range n {
		dst[i*channels+ch] = D(src[i])
	}
	return n
}
