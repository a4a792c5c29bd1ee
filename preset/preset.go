// Package preset loads and stores equalizer settings as JSON.
//
// A preset records design parameters only (curve, frequency in Hz, Q,
// gain, bypass). Kernel memory is never persisted.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// ErrInvalidPreset is returned for structurally invalid preset files.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// File is the JSON schema for equalizer presets.
type File struct {
	SampleRate *float64      `json:"sample_rate,omitempty"`
	Bands      []BandSetting `json:"bands"`
}

// BandSetting is a partial band override. Nil fields keep the band's
// current value.
//
// CurveIndex accepts the integer encoding written by legacy
// equalizer hosts and is decoded with [design.CurveFromLegacyIndex].
// Curve takes precedence when both are present.
type BandSetting struct {
	Index       int           `json:"index"`
	Curve       *design.Curve `json:"curve,omitempty"`
	CurveIndex  *int          `json:"curve_index,omitempty"`
	FrequencyHz *float64      `json:"frequency_hz,omitempty"`
	Q           *float64      `json:"q,omitempty"`
	GainDB      *float64      `json:"gain_db,omitempty"`
	Bypass      *bool         `json:"bypass,omitempty"`
}

// LoadJSON reads and parses a preset file.
func LoadJSON(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a preset and checks its structure.
func Parse(b []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks band indices and the sample rate. Design parameters
// are validated when the preset is applied.
func (f *File) Validate() error {
	if f.SampleRate != nil && (*f.SampleRate <= 0 || !core.IsFinite(*f.SampleRate)) {
		return fmt.Errorf("%w: sample_rate must be > 0", ErrInvalidPreset)
	}
	seen := make(map[int]bool, len(f.Bands))
	for _, b := range f.Bands {
		if b.Index < 0 {
			return fmt.Errorf("%w: negative band index %d", ErrInvalidPreset, b.Index)
		}
		if seen[b.Index] {
			return fmt.Errorf("%w: duplicate band index %d", ErrInvalidPreset, b.Index)
		}
		seen[b.Index] = true
	}
	return nil
}

// Save writes f as indented JSON, creating parent directories.
func Save(path string, f *File) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

type pending[R core.Real] struct {
	idx    int
	params design.Parameters[R]
	bypass bool
}

// Apply applies f on top of the current equalizer settings. A band that
// receives any design field is enabled unless the preset bypasses it.
// Every band is designed against the target sample rate before anything
// is committed, so on error the equalizer is left unchanged.
func Apply[R core.Real](e *eq.Equalizer[R], f *File) error {
	if e == nil {
		return fmt.Errorf("%w: nil equalizer", ErrInvalidPreset)
	}
	if f == nil {
		return nil
	}
	if err := f.Validate(); err != nil {
		return err
	}

	rate := e.SampleRate()
	if f.SampleRate != nil {
		rate = R(*f.SampleRate)
	}

	updates := make([]pending[R], 0, len(f.Bands))
	for _, b := range f.Bands {
		u, err := resolve(e, b, rate)
		if err != nil {
			return err
		}
		updates = append(updates, u)
	}

	// SetSampleRate redesigns every band at its current frequency and fails
	// without side effects. Bands the preset moves are committed right after.
	if rate != e.SampleRate() {
		if err := e.SetSampleRate(rate); err != nil {
			return err
		}
	}
	for _, u := range updates {
		if err := e.SetParameters(u.idx, u.params); err != nil {
			return err
		}
		if err := e.SetBypass(u.idx, u.bypass); err != nil {
			return err
		}
	}
	return nil
}

// resolve merges b into the current design of its band, normalized for
// sampleRate. It checks the band index itself and fully designs the
// result, so committing a resolved band cannot fail.
func resolve[R core.Real](e *eq.Equalizer[R], b BandSetting, sampleRate R) (pending[R], error) {
	if err := e.CheckIndex(b.Index); err != nil {
		return pending[R]{}, err
	}
	p := e.Design(b.Index)
	touched := false

	switch {
	case b.Curve != nil:
		p.Curve = *b.Curve
		touched = true
	case b.CurveIndex != nil:
		c, err := design.CurveFromLegacyIndex(*b.CurveIndex)
		if err != nil {
			return pending[R]{}, fmt.Errorf("preset: band %d: %w", b.Index, err)
		}
		p.Curve = c
		touched = true
	}

	hz := e.FrequencyHz(b.Index)
	if b.FrequencyHz != nil {
		hz = R(*b.FrequencyHz)
		touched = true
	}
	norm, err := design.NormalizeFrequency(hz, sampleRate)
	if err != nil {
		return pending[R]{}, fmt.Errorf("preset: band %d: %w", b.Index, err)
	}
	if hz != e.FrequencyHz(b.Index) || sampleRate != e.SampleRate() {
		p.Frequency = norm
	}

	if b.Q != nil {
		p.Resonance = R(*b.Q)
		touched = true
	}
	if b.GainDB != nil {
		p.Gain = R(*b.GainDB)
		touched = true
	}
	if _, err := design.Compute(p.Curve, p.Frequency, p.Resonance, p.Gain); err != nil {
		return pending[R]{}, fmt.Errorf("preset: band %d: %w", b.Index, err)
	}

	bypass := e.IsBypassed(b.Index)
	if touched {
		bypass = false
	}
	if b.Bypass != nil {
		bypass = *b.Bypass
	}
	return pending[R]{idx: b.Index, params: p, bypass: bypass}, nil
}

// FromEqualizer captures every enabled band of e.
func FromEqualizer[R core.Real](e *eq.Equalizer[R]) *File {
	sr := float64(e.SampleRate())
	f := &File{SampleRate: &sr}
	for i := range e.NumBands() {
		if e.IsBypassed(i) {
			continue
		}
		p := e.Design(i)
		curve := p.Curve
		hz := float64(e.FrequencyHz(i))
		q := float64(p.Resonance)
		gain := float64(p.Gain)
		f.Bands = append(f.Bands, BandSetting{
			Index:       i,
			Curve:       &curve,
			FrequencyHz: &hz,
			Q:           &q,
			GainDB:      &gain,
		})
	}
	return f
}
