// Package eq composes state-space filter sections into equalizers.
//
// [Filter] is a single band that owns its design parameters and kernel
// and recomputes coefficients eagerly on every parameter change.
// [Equalizer] holds an ordered set of bands (32 by default), each with
// its own bypass flag, and folds every sample through the active bands
// in band order.
//
// Parameter setters validate their input and leave the band untouched on
// failure. Processing never allocates. Neither type is safe for
// concurrent use: the audio thread that calls ProcessSample must also
// apply parameter changes, or the host must synchronize externally.
package eq
