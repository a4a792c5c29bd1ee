package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 0, true},
		{1, 1 + 1e-13, 0, true},
		{1, 1.1, 1e-3, false},
		{1e9, 1e9 + 1, 1e-6, true},
		{0, 1e-6, 1e-9, false},
	}
	for _, tc := range tests {
		if got := NearlyEqual(tc.a, tc.b, tc.eps); got != tc.want {
			t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.eps, got, tc.want)
		}
	}
}

func TestDBToLinear(t *testing.T) {
	if got := DBToLinear(0.0); got != 1 {
		t.Fatalf("DBToLinear(0) = %v, want 1", got)
	}
	if got := DBToLinear(20.0); !NearlyEqual(got, 10, 1e-12) {
		t.Fatalf("DBToLinear(20) = %v, want 10", got)
	}
	if got := DBToLinear(float32(-6)); math.Abs(float64(got)-0.501187) > 1e-5 {
		t.Fatalf("DBToLinear(-6) = %v, want ~0.501187", got)
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}
	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) || !IsFinite(float32(0)) {
		t.Fatal("finite values reported as non-finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(float32(math.Inf(-1))) {
		t.Fatal("non-finite values reported as finite")
	}
}
