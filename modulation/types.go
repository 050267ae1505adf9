package modulation

import "math/rand/v2"

// Kind enumerates the carrier modulations.
type Kind string

const (
	BPSK Kind = "bpsk"
	QPSK Kind = "qpsk"
	MSK  Kind = "msk"
	GMSK Kind = "gmsk"
)

// DefaultKind is used when a kind string is not recognized.
const DefaultKind = BPSK

// Kinds lists every modulation in display order.
func Kinds() []Kind {
	return []Kind{BPSK, QPSK, MSK, GMSK}
}

// ParseKind maps a name to a Kind, falling back to DefaultKind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case BPSK, QPSK, MSK, GMSK:
		return Kind(s), true
	default:
		return DefaultKind, false
	}
}

// Params is the carrier-modulation configuration record.
type Params struct {
	Kind       Kind    `yaml:"kind"`
	CarrierMHz float64 `yaml:"carrier_mhz"`
	DataRate   float64 `yaml:"data_rate"` // bps
	SNRdB      float64 `yaml:"snr_db"`
}

// DefaultParams returns BPSK at 10 MHz, 100 bps and 20 dB SNR.
func DefaultParams() Params {
	return Params{Kind: BPSK, CarrierMHz: 10, DataRate: 100, SNRdB: 20}
}

// BitDuration returns 1/DataRate, or 0 for a non-positive rate.
func (p Params) BitDuration() float64 {
	if p.DataRate <= 0 {
		return 0
	}

	return 1 / p.DataRate
}

// Point is one I/Q constellation sample.
type Point struct {
	I, Q float64
}

// Waveform is a sampled modulated carrier with its data-bit overlay.
type Waveform struct {
	Time   []float64 // seconds
	Signal []float64
	Bits   []float64 // ±1 per bit
	Params Params
}

// Options configures the random draws of the synthesizer.
type Options struct {
	Rand          *rand.Rand
	Bits          []float64 // explicit ±1 data; nil draws NumBits random bits
	NumBits       int
	SamplesPerBit int
}

// Option mutates Options.
type Option func(*Options)

// Defaults for Synthesize.
const (
	DefaultNumBits       = 8
	DefaultSamplesPerBit = 100
)

// DefaultOptions returns 8 random bits at 100 samples per bit.
func DefaultOptions() Options {
	return Options{NumBits: DefaultNumBits, SamplesPerBit: DefaultSamplesPerBit}
}

// WithRand injects the random source for bits and noise.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithBits fixes the data bits (any non-negative value maps to +1).
func WithBits(bits []float64) Option {
	return func(o *Options) { o.Bits = bits }
}

// WithSamplesPerBit overrides the sampling density; values < 1 are ignored.
func WithSamplesPerBit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.SamplesPerBit = n
		}
	}
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
