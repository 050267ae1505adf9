// Package modulation synthesizes carrier-modulated waveforms (BPSK, QPSK,
// MSK, GMSK) from closed-form expressions, together with the constellation
// and eye-diagram point clouds shown next to them.
//
// Units: time is in seconds and the carrier value is used as cycles per
// second of display time, so a "10 MHz" slider value draws ten cycles per
// display second. Bit duration is 1/DataRate.
//
// Simplifications kept on purpose:
//   - QPSK takes its Q rail from the next data bit, not a half-symbol offset.
//   - GMSK applies no Gaussian filter to the phase; it equals MSK here.
//   - Noise is uniform, scaled by 10^(−SNR/20); it is not calibrated AWGN.
package modulation
