package correlate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/correlate"
)

// TestAutocorrelate_Alternating covers the 4-chip alternating code.
func TestAutocorrelate_Alternating(t *testing.T) {
	got := correlate.Autocorrelate([]int{1, -1, 1, -1})
	require.Len(t, got, 7)
	assert.InDeltaSlice(t, []float64{-0.25, 0.5, -0.75, 1, -0.75, 0.5, -0.25}, got, 1e-12)
}

// TestAutocorrelate_Empty verifies empty input gives an empty, non-nil profile.
func TestAutocorrelate_Empty(t *testing.T) {
	got := correlate.Autocorrelate([]float64{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestAutocorrelate_LengthAndCentre checks 2N−1 length and the lag-0 energy.
func TestAutocorrelate_LengthAndCentre(t *testing.T) {
	cases := []struct {
		name string
		seq  []float64
	}{
		{"Single", []float64{3}},
		{"Ramp", []float64{1, 2, 3, 4, 5}},
		{"Mixed", []float64{0.5, -2, 0, 1.5}},
		{"PRN", chips.PRN(63).Float64s()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.seq)
			got := correlate.Autocorrelate(tc.seq)
			require.Len(t, got, 2*n-1)
			var energy float64
			for _, v := range tc.seq {
				energy += v * v
			}
			assert.InDelta(t, energy/float64(n), got[n-1], 1e-12)
		})
	}
}

// TestAutocorrelate_Symmetric verifies r(−k) == r(k) for real sequences.
func TestAutocorrelate_Symmetric(t *testing.T) {
	got := correlate.Autocorrelate(chips.CA(5, 127))
	for i, j := 0, len(got)-1; i < j; i, j = i+1, j-1 {
		assert.InDelta(t, got[i], got[j], 1e-12)
	}
}

// TestAutocorrelate_NoWraparound checks that the outermost lags use one product.
func TestAutocorrelate_NoWraparound(t *testing.T) {
	seq := []int8{1, 1, 1, -1}
	got := correlate.Autocorrelate(seq)
	assert.InDelta(t, -0.25, got[0], 1e-12)
	assert.InDelta(t, -0.25, got[len(got)-1], 1e-12)
}

// TestChipSequence_CentreIsOne confirms normalized lag-0 value for ±1 codes.
func TestChipSequence_CentreIsOne(t *testing.T) {
	for _, kind := range chips.Kinds() {
		got := correlate.Autocorrelate(chips.Generate(kind, 100))
		idx, v := correlate.Peak(got)
		assert.Equal(t, 99, idx, "kind=%s", kind)
		assert.InDelta(t, 1.0, v, 1e-12, "kind=%s", kind)
	}
}

// TestLags checks the lag axis.
func TestLags(t *testing.T) {
	assert.Equal(t, []int{-2, -1, 0, 1, 2}, correlate.Lags(3))
	assert.Empty(t, correlate.Lags(0))
}

// TestPeakAndSidelobe covers helper edge cases.
func TestPeakAndSidelobe(t *testing.T) {
	idx, v := correlate.Peak(nil)
	assert.Equal(t, -1, idx)
	assert.Zero(t, v)

	profile := correlate.Autocorrelate([]int{1, -1, 1, -1})
	assert.InDelta(t, 0.75, correlate.MaxSidelobe(profile), 1e-12)
	assert.Zero(t, correlate.MaxSidelobe([]float64{1}))
}
