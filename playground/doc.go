// Package playground builds the configurable teaching signal: a data
// pattern spread by an optional chip code, modulated onto a carrier and
// buried in uniform noise.
//
// 🚀 What is the playground?
//
//	Build samples a fixed 2 s window at 1000 samples/s:
//
//	  data(t)     = ±1 from the data pattern, one bit per 1/DataRate s
//	  code(t)     = ±1 from the code pattern, one chip per 1/ChipRate s
//	  baseband(t) = data(t) · code(t)
//	  modulated   = carrier(baseband, t)        (bpsk, qpsk, boc11, boc61)
//	  noisy       = modulated + (u − 0.5)·2·NoiseLevel
//
//	The carrier frequency is in MHz and is deliberately far above the
//	sample rate; the waveform aliases exactly as the teaching demo does.
//
// ✨ Analysis
//
//	Analyze derives the figures shown next to the waveforms: processing
//	gain, occupied bandwidth, nominal SNR, measured signal and noise RMS
//	(gonum stat), the analytic spectral density and an FFT periodogram of
//	the noisy output.
//
// ⚙️ Usage
//
//	p := playground.DefaultParams()
//	p.Code = playground.CodeCA
//	b := playground.Build(p, playground.WithRand(rng))
//	a := playground.Analyze(b)
//
// Unknown pattern names fall back to their defaults, and an empty or
// invalid custom bit string falls back to DefaultCustomData.
package playground
