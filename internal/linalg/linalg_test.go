package linalg

import "testing"

func TestVec2(t *testing.T) {
	v := Vec2[float64]{1, 2}
	if got := v.Add(Vec2[float64]{3, -4}); got != (Vec2[float64]{4, -2}) {
		t.Fatalf("Add = %v", got)
	}
	if got := v.Scale(0.5); got != (Vec2[float64]{0.5, 1}) {
		t.Fatalf("Scale = %v", got)
	}
}

func TestVec3(t *testing.T) {
	v := Vec3[float32]{1, 2, 3}
	w := Vec3[float32]{4, 5, 6}
	if got := v.Dot(w); got != 32 {
		t.Fatalf("Dot = %v, want 32", got)
	}
	if got := v.Mul(w); got != (Vec3[float32]{4, 10, 18}) {
		t.Fatalf("Mul = %v", got)
	}
	if got := v.Scale(2); got != (Vec3[float32]{2, 4, 6}) {
		t.Fatalf("Scale = %v", got)
	}
}

func TestMat2MulVec(t *testing.T) {
	m := Mat2[float64]{{1, 2}, {3, 4}}
	if got := m.MulVec(Vec2[float64]{1, -1}); got != (Vec2[float64]{-1, -1}) {
		t.Fatalf("MulVec = %v", got)
	}
	var zero Mat2[float64]
	if got := zero.MulVec(Vec2[float64]{7, 8}); got != (Vec2[float64]{}) {
		t.Fatalf("zero MulVec = %v", got)
	}
}

func TestMat3MulVec(t *testing.T) {
	m := Mat3[float64]{
		{1, 1, 1},
		{-2, 0, 2},
		{1, -1, 1},
	}
	if got := m.MulVec(Vec3[float64]{1, 2, 3}); got != (Vec3[float64]{6, 4, 2}) {
		t.Fatalf("MulVec = %v", got)
	}
}
