// Package linalg provides the fixed-size vector and matrix values used by
// the filter design and state-space kernel. All operations are value
// semantics and never allocate.
package linalg

import "github.com/cwbudde/algo-eq/dsp/core"

// Vec2 is a 2-element column vector.
type Vec2[R core.Real] [2]R

// Vec3 is a 3-element column (or row) vector.
type Vec3[R core.Real] [3]R

// Mat2 is a row-major 2x2 matrix.
type Mat2[R core.Real] [2][2]R

// Mat3 is a row-major 3x3 matrix.
type Mat3[R core.Real] [3][3]R

// Add returns v + w.
func (v Vec2[R]) Add(w Vec2[R]) Vec2[R] {
	return Vec2[R]{v[0] + w[0], v[1] + w[1]}
}

// Scale returns k*v.
func (v Vec2[R]) Scale(k R) Vec2[R] {
	return Vec2[R]{k * v[0], k * v[1]}
}

// Dot returns the inner product v·w.
func (v Vec3[R]) Dot(w Vec3[R]) R {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Mul returns the elementwise product of v and w.
func (v Vec3[R]) Mul(w Vec3[R]) Vec3[R] {
	return Vec3[R]{v[0] * w[0], v[1] * w[1], v[2] * w[2]}
}

// Scale returns k*v.
func (v Vec3[R]) Scale(k R) Vec3[R] {
	return Vec3[R]{k * v[0], k * v[1], k * v[2]}
}

// MulVec returns m*v.
func (m Mat2[R]) MulVec(v Vec2[R]) Vec2[R] {
	return Vec2[R]{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// MulVec returns m*v.
func (m Mat3[R]) MulVec(v Vec3[R]) Vec3[R] {
	return Vec3[R]{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
