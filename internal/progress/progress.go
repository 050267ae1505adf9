// Package progress normalizes animation progress values.
package progress

import "math"

// Clamp limits p to [0, 1]. NaN maps to 0 so the result is always safe to
// scale and convert to an index.
func Clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}

	return math.Max(0, math.Min(1, p))
}
