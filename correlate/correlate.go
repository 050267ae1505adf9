package correlate

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point sample type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Autocorrelate returns the linear autocorrelation of seq for every lag in
// [−(N−1), N−1], normalized by N.
//
// Algorithm Outline:
//  1. Let n = len(seq). Allocate 2n−1 outputs; index n−1 is lag 0.
//  2. For lag = −(n−1)..(n−1):
//     sum seq[i]·seq[i+lag] over 0 ≤ i, i+lag < n
//     out[lag+n−1] = sum / n
//
// Guarantees:
//   - len(out) == 2n−1 (empty input ⇒ empty output);
//   - out[n−1] == (1/n)·Σ seq[i]².
func Autocorrelate[T Number](seq []T) []float64 {
	n := len(seq)
	if n == 0 {
		return []float64{}
	}

	out := make([]float64, 2*n-1)
	for lag := -(n - 1); lag < n; lag++ {
		lo, hi := 0, n
		if lag < 0 {
			lo = -lag
		} else {
			hi = n - lag
		}
		var sum float64
		for i := lo; i < hi; i++ {
			sum += float64(seq[i]) * float64(seq[i+lag])
		}
		out[lag+n-1] = sum / float64(n)
	}

	return out
}

// Lags returns the lag index for each position of a profile computed from a
// sequence of length n.
func Lags(n int) []int {
	if n <= 0 {
		return []int{}
	}
	lags := make([]int, 2*n-1)
	for i := range lags {
		lags[i] = i - (n - 1)
	}

	return lags
}

// Peak returns the position and value of the largest profile entry. The
// first maximum wins on ties. An empty profile yields (−1, 0).
func Peak(profile []float64) (index int, value float64) {
	if len(profile) == 0 {
		return -1, 0
	}
	index, value = 0, profile[0]
	for i, v := range profile[1:] {
		if v > value {
			index, value = i+1, v
		}
	}

	return index, value
}

// MaxSidelobe returns the largest absolute value outside the centre lag.
// Profiles with fewer than three entries have no sidelobes and yield 0.
func MaxSidelobe(profile []float64) float64 {
	if len(profile) < 3 {
		return 0
	}
	centre := len(profile) / 2
	var peak float64
	for i, v := range profile {
		if i == centre {
			continue
		}
		peak = math.Max(peak, math.Abs(v))
	}

	return peak
}
