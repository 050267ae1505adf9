// Package l1 approximates the GPS L1 (1575.42 MHz) multiplex: per-service
// spectra for C/A, P(Y), M code and L1C, their constellations, the signal
// structure blocks, the I/Q rail assignment of the orthogonal view and the
// acquisition-animation state.
//
// Spectra are in dB relative to an arbitrary reference and floored at
// spectrum.FloorDB.
package l1
