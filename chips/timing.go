package chips

import "strings"

// Timing summarizes how a code of a given length repeats at a chip rate.
type Timing struct {
	PeriodMs     float64 // one full code period
	RepetitionHz float64
	ChipNs       float64 // duration of one chip
}

// TimingFor returns the timing of a length-chip code at chipRateMcps. A
// non-positive rate or length yields the zero Timing.
func TimingFor(length int, chipRateMcps float64) Timing {
	if length <= 0 || chipRateMcps <= 0 {
		return Timing{}
	}
	period := float64(length) / (chipRateMcps * 1e6) * 1e3

	return Timing{
		PeriodMs:     period,
		RepetitionHz: 1e3 / period,
		ChipNs:       1e3 / chipRateMcps,
	}
}

// Bits renders at most limit leading chips as '1' (+1) and '0' (−1), with
// "..." appended when the sequence is longer.
func (s Sequence) Bits(limit int) string {
	n := min(max(limit, 0), len(s))
	var b strings.Builder
	b.Grow(n + 3)
	for _, c := range s[:n] {
		if c > 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	if len(s) > n {
		b.WriteString("...")
	}

	return b.String()
}
