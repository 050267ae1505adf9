// Package gnssviz is a numeric toolkit for teaching GNSS signal structure:
// spreading codes, carrier and BOC modulation, analytic spectra and
// correlation, the GPS L1 multiplex and a configurable signal playground.
//
// 🚀 What is gnssviz?
//
//	A set of small, deterministic-by-default packages whose functions
//	return plain numeric series. A presentation layer feeds them user
//	settings and draws the results; nothing here depends on a display.
//		• chips       — C/A, PRN, PRBS-7, Walsh and random ±1 codes
//		• correlate   — normalized linear autocorrelation
//		• modulation  — BPSK, QPSK, MSK and GMSK waveforms, constellations, eyes
//		• boc         — BOC, MBOC and AltBOC subcarriers and standards
//		• spectrum    — analytic PSD/correlation models and FFT periodograms
//		• l1          — GPS L1 C/A, P(Y), M and L1C multiplex views
//		• combined    — data × code × carrier walkthrough and acquisition scan
//		• playground  — configurable data/code/carrier builder and analysis
//		• animation   — pull iterators of animation frames
//		• session     — caller-owned view state and YAML configuration
//		• render      — surface-agnostic draw commands for every view
//
// ✨ Guarantees
//
//   - Total numerics – no panics on degenerate input; NaN and ±Inf are
//     clamped, empty inputs give empty outputs
//   - Explicit randomness – every random draw comes from an injectable
//     *rand.Rand, nil meaning the global source
//   - No globals – state lives in a session.State owned by the caller
//
// ⚙️ Usage
//
//	st := session.DefaultState()
//	st.SwitchTab(session.TabBOC, nil)
//	st.SetBOCKind(boc.AltBOC)
//	panels := render.Scene(st, render.Surface{Width: 800, Height: 400}, nil)
//
//	go get github.com/katalvlaran/gnssviz
package gnssviz
