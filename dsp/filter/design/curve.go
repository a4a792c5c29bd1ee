package design

import (
	"fmt"
	"strings"
)

// Curve is the qualitative shape of a filter section's frequency response.
type Curve int

// Supported curves. The numeric values follow declaration order and are
// what [CurveFromIndex] decodes.
const (
	Lowpass Curve = iota
	Highpass
	Bandpass
	Notch
	Peak
	Lowshelf
	Highshelf
)

var curveNames = [...]string{
	Lowpass:   "lowpass",
	Highpass:  "highpass",
	Bandpass:  "bandpass",
	Notch:     "notch",
	Peak:      "peak",
	Lowshelf:  "lowshelf",
	Highshelf: "highshelf",
}

var curveAliases = map[string]Curve{
	"lp":         Lowpass,
	"low-pass":   Lowpass,
	"hp":         Highpass,
	"high-pass":  Highpass,
	"bp":         Bandpass,
	"band-pass":  Bandpass,
	"bell":       Peak,
	"peaking":    Peak,
	"low-shelf":  Lowshelf,
	"ls":         Lowshelf,
	"high-shelf": Highshelf,
	"hs":         Highshelf,
}

// String returns the lower-case curve name.
func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// Valid reports whether c is one of the declared curves.
func (c Curve) Valid() bool {
	return c >= Lowpass && c <= Highshelf
}

// UsesGain reports whether the gain parameter affects the curve.
// Gain is accepted but ignored by the other curves.
func (c Curve) UsesGain() bool {
	return c == Peak || c == Lowshelf || c == Highshelf
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCurve, int(c))
	}
	return []byte(curveNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseCurve].
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCurve decodes a curve name. Matching is case-insensitive and
// accepts common short forms ("lp", "hs", "bell", ...).
func ParseCurve(name string) (Curve, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range curveNames {
		if n == key {
			return Curve(c), nil
		}
	}
	if c, ok := curveAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCurve, name)
}

// CurveFromIndex decodes an integer curve tag in declaration order
// (0 = Lowpass ... 6 = Highshelf).
func CurveFromIndex(i int) (Curve, error) {
	c := Curve(i)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidCurve, i)
	}
	return c, nil
}

// CurveFromLegacyIndex decodes integer tags written by legacy equalizer
// hosts, whose table maps 5 to Lowpass and 6 to Highpass. Every other
// value decodes as in [CurveFromIndex]. New encodings should use
// [CurveFromIndex].
func CurveFromLegacyIndex(i int) (Curve, error) {
	switch i {
	case 5:
		return Lowpass, nil
	case 6:
		return Highpass, nil
	}
	return CurveFromIndex(i)
}
