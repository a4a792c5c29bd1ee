// Command eqinfo prints the design of a single equalizer band.
//
// Usage:
//
//	eqinfo [flags]
//
// It prints the normalized transfer function, the state-space matrices
// of the kernel and a magnitude table over log-spaced frequencies. With
// -measure the table also shows the FFT-measured response of the
// kernel's impulse response.
//
// Examples:
//
//	eqinfo -curve peak -freq 1000 -q 1.4 -gain 6
//	eqinfo -curve lowshelf -freq 120 -gain -4 -rate 44100
//	eqinfo -curve highpass -freq 80 -measure
//	eqinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/statespace"
	"github.com/cwbudde/algo-eq/measure/response"
)

type band struct {
	curve      design.Curve
	hz         float64
	q          float64
	gainDB     float64
	sampleRate float64
}

func main() {
	curveName := flag.String("curve", "peak", "filter curve (use -list to see available)")
	freq := flag.Float64("freq", 1000, "corner frequency in Hz")
	q := flag.Float64("q", math.Sqrt(0.5), "resonance (Q)")
	gain := flag.Float64("gain", 0, "gain in dB (peak and shelves)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	points := flag.Int("points", 16, "number of rows in the magnitude table")
	measure := flag.Bool("measure", false, "add FFT-measured magnitudes of the kernel impulse response")
	fftSize := flag.Int("fft", 8192, "FFT size for -measure")
	list := flag.Bool("list", false, "list available curve names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients, state-space matrices and magnitude response of one EQ band.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -curve peak -freq 1000 -q 1.4 -gain 6\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -curve highpass -freq 80 -measure\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	curve, err := design.ParseCurve(*curveName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	b := band{curve: curve, hz: *freq, q: *q, gainDB: *gain, sampleRate: *rate}

	var measured *response.Spectrum
	if *measure {
		measured, err = measureBand(b, *fftSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := printBand(os.Stdout, b, *points, measured); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for c := design.Lowpass; c <= design.Highshelf; c++ {
		fmt.Fprintln(w, c)
	}
}

func (b band) coefficients() (design.Coefficients[float64], error) {
	f, err := design.NormalizeFrequency(b.hz, b.sampleRate)
	if err != nil {
		return design.Coefficients[float64]{}, err
	}
	return design.Compute(b.curve, f, b.q, b.gainDB)
}

func measureBand(b band, fftSize int) (*response.Spectrum, error) {
	c, err := b.coefficients()
	if err != nil {
		return nil, err
	}
	k := statespace.NewKernel[float64]()
	k.Set(c)
	return response.MeasureKernel(k, b.sampleRate, fftSize)
}

func printBand(w io.Writer, b band, points int, measured *response.Spectrum) error {
	c, err := b.coefficients()
	if err != nil {
		return err
	}
	k := statespace.NewKernel[float64]()
	k.Set(c)

	fmt.Fprintf(w, "%s  %.2f Hz  Q %.4f  %.2f dB  @ %.0f Hz\n\n", b.curve, b.hz, b.q, b.gainDB, b.sampleRate)
	fmt.Fprintf(w, "num  % .9f % .9f % .9f\n", c.Num[0], c.Num[1], c.Num[2])
	fmt.Fprintf(w, "den  % .9f % .9f % .9f\n", c.Den[0], c.Den[1], c.Den[2])
	fmt.Fprintf(w, "stable  %t\n\n", c.Stable())
	fmt.Fprintf(w, "A  [% .9f % .9f]\n   [% .9f % .9f]\n", k.A[0][0], k.A[0][1], k.A[1][0], k.A[1][1])
	fmt.Fprintf(w, "B  [% .9f % .9f]\n", k.B[0], k.B[1])
	fmt.Fprintf(w, "C  [% .9f % .9f % .9f]\n\n", k.C[0], k.C[1], k.C[2])

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Frequency [Hz]\tMagnitude [dB]\tPhase [deg]"
	rule := "--------------\t--------------\t-----------"
	if measured != nil {
		header += "\tMeasured [dB]"
		rule += "\t-------------"
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, hz := range logFrequencies(b.sampleRate, points) {
		norm := hz / b.sampleRate
		row := fmt.Sprintf("%.1f\t%.4f\t%.2f", hz, c.MagnitudeDB(norm), c.Phase(norm)*180/math.Pi)
		if measured != nil {
			row += fmt.Sprintf("\t%.4f", measured.MagnitudeDBAt(hz))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if measured != nil {
		if _, err := fmt.Fprintf(tw, "\nmax deviation\t%.2e dB\n", response.Deviation(c, measured)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

// logFrequencies returns n log-spaced frequencies from 20 Hz to just
// below Nyquist.
func logFrequencies(sampleRate float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	lo := 20.0
	hi := sampleRate / 2 * 0.99
	if hi <= lo {
		lo = hi / 100
	}
	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range n {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}
