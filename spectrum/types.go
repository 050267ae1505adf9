package spectrum

import "math"

// Floors applied to reported spectra.
const (
	FloorLinear = 0.0
	FloorDB     = -100.0
)

// Curve is a sampled function of frequency (or lag).
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.X) }

// ClampLinear applies the linear PSD policy.
func ClampLinear(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < FloorLinear {
		return FloorLinear
	}

	return v
}

// ClampDB applies the dB PSD policy. +Inf is treated as a non-finite result
// and reported at the floor as well.
func ClampDB(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < FloorDB {
		return FloorDB
	}

	return v
}

// Finite zeroes NaN and ±Inf.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
