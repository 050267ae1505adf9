package chips

import "math/rand/v2"

// Chip is a single spreading-code symbol, +1 or −1.
type Chip = int8

// Sequence is an ordered run of chips.
type Sequence []Chip

// Float64s converts the sequence into a float slice for waveform math.
func (s Sequence) Float64s() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = float64(c)
	}

	return out
}

// Kind selects a code generator.
type Kind string

const (
	// KindCA is the simplified GPS C/A generator.
	KindCA Kind = "ca"
	// KindPRN is the single-register pseudorandom generator.
	KindPRN Kind = "prn"
	// KindGold picks a random PRN for the C/A generator on every call.
	KindGold Kind = "gold"
	// KindKasami reuses the PRN generator.
	KindKasami Kind = "kasami"
)

// DefaultKind is used when a kind string is not recognized.
const DefaultKind = KindCA

// DefaultPRN is the C/A satellite number used when none is supplied.
const DefaultPRN = 1

// Kinds lists every supported generator in display order.
func Kinds() []Kind {
	return []Kind{KindCA, KindPRN, KindGold, KindKasami}
}

// ParseKind maps a user-facing name onto a Kind. Unknown names fall back to
// DefaultKind; ok reports whether the name was recognized.
func ParseKind(s string) (k Kind, ok bool) {
	switch Kind(s) {
	case KindCA, KindPRN, KindGold, KindKasami:
		return Kind(s), true
	default:
		return DefaultKind, false
	}
}

// Options configures Generate.
type Options struct {
	// PRN selects the G2 delay pair for KindCA (reduced modulo 32).
	PRN int
	// Rand drives KindGold and Random. Nil uses the global source.
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns PRN=DefaultPRN and the global random source.
func DefaultOptions() Options {
	return Options{PRN: DefaultPRN}
}

// WithPRN selects the C/A satellite number.
func WithPRN(prn int) Option {
	return func(o *Options) { o.PRN = prn }
}

// WithRand injects a random source for the non-deterministic kinds.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
