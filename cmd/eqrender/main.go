// Command eqrender runs a WAV file through the equalizer.
//
// Bands come from a JSON preset, from -band flags, or both; -band entries
// override preset bands with the same index. Every channel gets its own
// equalizer with identical settings.
//
// Examples:
//
//	eqrender -input in.wav -output out.wav -preset vocal.json
//	eqrender -input in.wav -output out.wav -band 0:highpass:80:0.7 -band 1:peak:3000:1.4:-3
//	eqrender -input in.wav -output out.wav -preset vocal.json -gain -1.5 -save effective.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/preset"
)

// bandFlags collects repeated -band values.
type bandFlags []preset.BandSetting

func (b *bandFlags) String() string { return fmt.Sprintf("%d band(s)", len(*b)) }

func (b *bandFlags) Set(v string) error {
	s, err := parseBand(v)
	if err != nil {
		return err
	}
	*b = append(*b, s)
	return nil
}

func main() {
	input := flag.String("input", "", "input WAV file path")
	output := flag.String("output", "output.wav", "output WAV file path")
	presetPath := flag.String("preset", "", "preset JSON file path (optional)")
	savePath := flag.String("save", "", "write the effective settings of channel 0 as a preset (optional)")
	gainDB := flag.Float64("gain", 0, "output gain in dB")
	blockSize := flag.Int("block", core.DefaultProcessorConfig().BlockSize, "processing block size in frames")
	var bands bandFlags
	flag.Var(&bands, "band", "band override index:curve:hz[:q[:gain_db]] (repeatable)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintf(os.Stderr, "Error: -input is required\n")
		flag.Usage()
		os.Exit(1)
	}

	settings := &preset.File{}
	if *presetPath != "" {
		f, err := preset.LoadJSON(*presetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading preset %q: %v\n", *presetPath, err)
			os.Exit(1)
		}
		settings = f
	}
	settings.Bands = mergeBands(settings.Bands, bands)
	// The input file decides the sample rate.
	settings.SampleRate = nil

	data, sampleRate, channels, err := readWAV(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", *input, err)
		os.Exit(1)
	}
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(sampleRate)),
		core.WithChannels(channels),
		core.WithBlockSize(*blockSize),
	)

	eqs, err := newEqualizers(cfg, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring equalizer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s: %d frames, %d channel(s) at %d Hz, %d active band(s)...\n",
		*input, cfg.Frames(len(data)), cfg.Channels, sampleRate, activeBands(eqs[0]))

	render(data, cfg, eqs, core.DBToLinear(*gainDB))

	if err := writeWAV(*output, data, sampleRate, channels); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing WAV file: %v\n", err)
		os.Exit(1)
	}
	if *savePath != "" {
		if err := preset.Save(*savePath, preset.FromEqualizer(eqs[0])); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving preset: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Successfully wrote %s\n", *output)
}

// parseBand decodes "index:curve:hz[:q[:gain_db]]".
func parseBand(v string) (preset.BandSetting, error) {
	parts := strings.Split(v, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return preset.BandSetting{}, fmt.Errorf("band %q: want index:curve:hz[:q[:gain_db]]", v)
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return preset.BandSetting{}, fmt.Errorf("band %q: index: %w", v, err)
	}
	curve, err := design.ParseCurve(parts[1])
	if err != nil {
		return preset.BandSetting{}, fmt.Errorf("band %q: %w", v, err)
	}
	s := preset.BandSetting{Index: idx, Curve: &curve}

	nums := make([]*float64, 0, 3)
	for _, p := range parts[2:] {
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return preset.BandSetting{}, fmt.Errorf("band %q: %w", v, err)
		}
		nums = append(nums, &x)
	}
	s.FrequencyHz = nums[0]
	if len(nums) > 1 {
		s.Q = nums[1]
	}
	if len(nums) > 2 {
		s.GainDB = nums[2]
	}
	return s, nil
}

// mergeBands overlays extra onto base, replacing entries with the same index.
func mergeBands(base, extra []preset.BandSetting) []preset.BandSetting {
	out := append([]preset.BandSetting(nil), base...)
	for _, e := range extra {
		replaced := false
		for i := range out {
			if out[i].Index == e.Index {
				out[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}

func newEqualizers(cfg core.ProcessorConfig, settings *preset.File) ([]*eq.Equalizer[float64], error) {
	eqs := make([]*eq.Equalizer[float64], cfg.Channels)
	for ch := range eqs {
		e, err := eq.New(cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		if err := preset.Apply(e, settings); err != nil {
			return nil, err
		}
		eqs[ch] = e
	}
	return eqs, nil
}

func activeBands(e *eq.Equalizer[float64]) int {
	n := 0
	for i := range e.NumBands() {
		if !e.IsBypassed(i) {
			n++
		}
	}
	return n
}

// render processes interleaved samples in place, one block of frames at
// a time, and applies the linear output gain.
func render(data []float32, cfg core.ProcessorConfig, eqs []*eq.Equalizer[float64], gain float64) {
	channels, blockSize := cfg.Channels, cfg.BlockSize
	frames := cfg.Frames(len(data))
	block := core.EnsureLen[float64](nil, blockSize)

	for start := 0; start < frames; start += blockSize {
		frame := data[start*channels:]
		for ch := range channels {
			buf := block[:core.Deinterleave(block, frame, channels, ch)]
			eqs[ch].ProcessBuffer(buf)
			if gain != 1 {
				vecmath.ScaleBlock(buf, buf, gain)
			}
			core.Interleave(frame, buf, channels, ch)
		}
	}
}

func readWAV(path string) ([]float32, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, errors.New("invalid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, 0, errors.New("invalid wav buffer")
	}
	if buf.Format.SampleRate <= 0 {
		return nil, 0, 0, fmt.Errorf("invalid wav sample-rate: %d", buf.Format.SampleRate)
	}
	if len(buf.Data) < buf.Format.NumChannels {
		return nil, 0, 0, errors.New("empty wav data")
	}
	return buf.Data, buf.Format.SampleRate, buf.Format.NumChannels, nil
}

func writeWAV(path string, data []float32, sampleRate, channels int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// 16-bit PCM (audioFormat = 1)
	encoder := wav.NewEncoder(file, sampleRate, 16, channels, 1)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		return err
	}
	return encoder.Close()
}
