// Package rng centralizes the uniform draws used by the non-deterministic
// generators. A nil *rand.Rand means the process-wide source.
package rng

import "math/rand/v2"

// Float64 returns a uniform value in [0, 1) from r, or from the global
// source when r is nil.
func Float64(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}

	return r.Float64()
}

// IntN returns a uniform value in [0, n) from r, or from the global source
// when r is nil. n must be positive.
func IntN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}

	return r.IntN(n)
}

// Sign returns +1 or -1 with equal probability.
func Sign(r *rand.Rand) float64 {
	if Float64(r) > 0.5 {
		return 1
	}

	return -1
}

// Centered returns a uniform value in [-0.5, 0.5) scaled by scale.
func Centered(r *rand.Rand, scale float64) float64 {
	return (Float64(r) - 0.5) * scale
}
