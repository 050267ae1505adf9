package correlate_test

import (
	"testing"

	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/correlate"
)

// BenchmarkAutocorrelate_CA1023 measures a full-length C/A profile.
func BenchmarkAutocorrelate_CA1023(b *testing.B) {
	code := chips.CA(1, 1023)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = correlate.Autocorrelate(code)
	}
}
