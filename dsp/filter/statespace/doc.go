// Package statespace runs second-order filter sections in state-space
// form.
//
// A [Kernel] stores the companion-form matrices derived from normalized
// biquad coefficients together with a two-element memory vector. Output
// is computed from the memory before it advances, which makes the update
// equivalent to Direct Form II Transposed.
//
// [Kernel.Set] replaces the matrices and leaves the memory alone, so
// coefficients can change between any two samples without resetting the
// signal path. None of the methods allocate, block or fail; a Kernel is
// not safe for concurrent use.
package statespace
