// Package design turns equalizer band settings into digital biquad
// coefficients.
//
// A band is described by [Parameters]: a [Curve], a normalized corner
// frequency, a resonance (Q) and a gain in dB. [Parameters.DigitalTransfer]
// builds the analog prototype for the curve with a pre-warped corner,
// maps numerator and denominator through the bilinear transform and
// normalizes the result so that Den[0] == 1.
//
// The functions here are pure and allocation-free, so they may be called
// from an audio thread. Runtime processing lives in dsp/filter/statespace.
package design
