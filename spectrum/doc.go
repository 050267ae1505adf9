// Package spectrum evaluates closed-form approximations of power spectral
// densities and correlation shapes for the modulation and BOC kinds, plus an
// FFT periodogram of sampled signals for comparison.
//
// The analytic curves are teaching approximations (sinc², sinc·cosine,
// weighted two-term sums, damped cosines); they are not transforms of any
// generated sequence.
//
// Numeric policy (applied by every exported function):
//
//   - linear PSD:  NaN/±Inf ⇒ 0, negative ⇒ FloorLinear (0)
//   - dB PSD:      NaN, −Inf or anything below FloorDB ⇒ FloorDB (−100 dB)
//   - correlation: NaN/±Inf ⇒ 0
//   - Sinc(0) == 1 exactly
package spectrum
