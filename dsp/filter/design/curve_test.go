package design

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCurveString(t *testing.T) {
	if got := Lowshelf.String(); got != "lowshelf" {
		t.Fatalf("Lowshelf.String() = %q", got)
	}
	if got := Curve(42).String(); got != "Curve(42)" {
		t.Fatalf("Curve(42).String() = %q", got)
	}
}

func TestParseCurve(t *testing.T) {
	tests := []struct {
		in   string
		want Curve
	}{
		{"lowpass", Lowpass},
		{"  HighPass ", Highpass},
		{"bp", Bandpass},
		{"notch", Notch},
		{"bell", Peak},
		{"low-shelf", Lowshelf},
		{"hs", Highshelf},
	}
	for _, tc := range tests {
		got, err := ParseCurve(tc.in)
		if err != nil {
			t.Fatalf("ParseCurve(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseCurve(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseCurve("allpass"); !errors.Is(err, ErrInvalidCurve) {
		t.Fatalf("ParseCurve(allpass) error = %v, want ErrInvalidCurve", err)
	}
}

func TestCurveFromIndex(t *testing.T) {
	want := []Curve{Lowpass, Highpass, Bandpass, Notch, Peak, Lowshelf, Highshelf}
	for i, w := range want {
		got, err := CurveFromIndex(i)
		if err != nil {
			t.Fatalf("CurveFromIndex(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("CurveFromIndex(%d) = %v, want %v", i, got, w)
		}
	}
	for _, i := range []int{-1, 7, 100} {
		if _, err := CurveFromIndex(i); !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("CurveFromIndex(%d) error = %v, want ErrInvalidCurve", i, err)
		}
	}
}

func TestCurveFromLegacyIndex(t *testing.T) {
	want := map[int]Curve{
		0: Lowpass, 1: Highpass, 2: Bandpass, 3: Notch, 4: Peak,
		5: Lowpass, 6: Highpass,
	}
	for i, w := range want {
		got, err := CurveFromLegacyIndex(i)
		if err != nil {
			t.Fatalf("CurveFromLegacyIndex(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("CurveFromLegacyIndex(%d) = %v, want %v", i, got, w)
		}
	}
	if _, err := CurveFromLegacyIndex(7); !errors.Is(err, ErrInvalidCurve) {
		t.Fatalf("CurveFromLegacyIndex(7) error = %v, want ErrInvalidCurve", err)
	}
}

func TestCurveJSON(t *testing.T) {
	b, err := json.Marshal(struct{ C Curve }{Highshelf})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"C":"highshelf"}` {
		t.Fatalf("marshal = %s", b)
	}

	var v struct{ C Curve }
	if err := json.Unmarshal([]byte(`{"C":"notch"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.C != Notch {
		t.Fatalf("unmarshal = %v, want notch", v.C)
	}
	if err := json.Unmarshal([]byte(`{"C":"wobble"}`), &v); !errors.Is(err, ErrInvalidCurve) {
		t.Fatalf("unmarshal error = %v, want ErrInvalidCurve", err)
	}
	if _, err := json.Marshal(struct{ C Curve }{Curve(9)}); err == nil {
		t.Fatal("expected marshal error for invalid curve")
	}
}

func TestUsesGain(t *testing.T) {
	for _, c := range []Curve{Peak, Lowshelf, Highshelf} {
		if !c.UsesGain() {
			t.Errorf("%v.UsesGain() = false", c)
		}
	}
	for _, c := range []Curve{Lowpass, Highpass, Bandpass, Notch} {
		if c.UsesGain() {
			t.Errorf("%v.UsesGain() = true", c)
		}
	}
}
