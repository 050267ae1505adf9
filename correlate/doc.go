// Package correlate computes discrete autocorrelation profiles of chip
// sequences.
//
// The profile is linear (non-circular): for lag k the sum runs only over
// indices where both seq[i] and seq[i+k] exist, and every sum is divided by
// N. Consumers must not expect periodic wraparound; edge lags taper toward 0.
//
// Performance:
//
//   - Time:   O(N²)
//   - Memory: O(N) for the 2N−1 output values
package correlate
