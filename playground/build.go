package playground

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gnssviz/boc"
	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/internal/progress"
	"github.com/katalvlaran/gnssviz/internal/rng"
)

const (
	// SampleRate is the number of samples per second of every series.
	SampleRate = 1000
	// Duration is the length of the window in seconds.
	Duration = 2.0

	goldLength = 15
	caLength   = 31
	walshChips = 4
)

var (
	binaryBits      = []int{1, 0, 1, 1, 0, 1, 0, 0}
	alternatingBits = []int{0, 1, 0, 1, 0, 1, 0, 1}
	customCode      = chips.Sequence{1, -1, 1, 1, -1, 1, -1}
)

// Bundle carries every intermediate series of a build. All series share the
// length of Time.
type Bundle struct {
	Params   Params
	Time     []float64 // seconds
	DataBits []int     // 0/1
	Code     chips.Sequence

	DataSignal []float64
	CodeSignal []float64
	Baseband   []float64
	Modulated  []float64
	Noisy      []float64
}

// DataBits resolves the data pattern of p into 0/1 bits.
func DataBits(p Params) []int {
	switch p.Data {
	case DataAlternating:
		return append([]int(nil), alternatingBits...)
	case DataPRBS:
		return chips.PRBS7()
	case DataCustom:
		if bits := parseBits(p.CustomData); len(bits) > 0 {
			return bits
		}

		return parseBits(DefaultCustomData)
	default:
		return append([]int(nil), binaryBits...)
	}
}

// parseBits keeps the '0' and '1' characters of s.
func parseBits(s string) []int {
	var bits []int
	for _, r := range s {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		}
	}

	return bits
}

// SpreadingCode resolves the code pattern of p. CodeNone is the single chip
// +1. CodeGold draws fresh random chips on every call.
func SpreadingCode(p Params, r *rand.Rand) chips.Sequence {
	switch p.Code {
	case CodeWalsh:
		return chips.Walsh(walshChips)
	case CodeGold:
		return chips.Random(goldLength, chips.WithRand(r))
	case CodeCA:
		return chips.CA(chips.DefaultPRN, caLength)
	case CodeCustom:
		return append(chips.Sequence(nil), customCode...)
	default:
		return chips.Sequence{1}
	}
}

// index returns ⌊t·rate⌋ mod n, or 0 for a non-positive rate.
func index(t, rate float64, n int) int {
	if rate <= 0 || n == 0 {
		return 0
	}
	i := int(math.Floor(t*rate)) % n
	if i < 0 {
		i += n
	}

	return i
}

// Build produces the full signal chain for p. Unknown enum values are
// resolved to their defaults before use and the resolved values are stored
// in the returned Bundle.
func Build(p Params, opts ...Option) Bundle {
	o := gatherOptions(opts)
	p = resolve(p)

	n := int(SampleRate * Duration)
	b := Bundle{
		Params:     p,
		Time:       make([]float64, n),
		DataBits:   DataBits(p),
		Code:       SpreadingCode(p, o.Rand),
		DataSignal: make([]float64, n),
		CodeSignal: make([]float64, n),
		Baseband:   make([]float64, n),
		Noisy:      make([]float64, n),
	}

	for i := range b.Time {
		t := float64(i) / SampleRate
		b.Time[i] = t
		if b.DataBits[index(t, p.DataRate, len(b.DataBits))] == 1 {
			b.DataSignal[i] = 1
		} else {
			b.DataSignal[i] = -1
		}
		b.CodeSignal[i] = float64(b.Code[index(t, p.ChipRate, len(b.Code))])
	}
	floats.MulTo(b.Baseband, b.DataSignal, b.CodeSignal)
	b.Modulated = modulate(b.Baseband, b.Time, p.Carrier, p.CarrierMHz)

	noise := make([]float64, n)
	for i := range noise {
		noise[i] = rng.Centered(o.Rand, 2*p.NoiseLevel)
	}
	floats.AddTo(b.Noisy, b.Modulated, noise)

	return b
}

func resolve(p Params) Params {
	p.Mode, _ = ParseMode(string(p.Mode))
	p.Data, _ = ParseDataPattern(string(p.Data))
	p.Code, _ = ParseCodePattern(string(p.Code))
	p.Carrier, _ = ParseCarrier(string(p.Carrier))

	return p
}

// modulate applies the carrier to baseband. QPSK uses the next baseband
// sample as its Q rail; the BOC presets multiply by a sine-phased square
// subcarrier at 1.023 or 6.138 MHz.
func modulate(baseband, time []float64, kind CarrierKind, carrierMHz float64) []float64 {
	fc := carrierMHz * 1e6
	out := make([]float64, len(baseband))
	last := len(baseband) - 1
	for i, t := range time {
		arg := 2 * math.Pi * fc * t
		switch kind {
		case CarrierQPSK:
			q := baseband[min(i+1, last)]
			out[i] = baseband[i]*math.Cos(arg) + q*math.Sin(arg)
		case CarrierBOC11:
			sc := boc.Subcarrier(boc.BOC11, boc.Subcarrier11MHz, boc.Sine, t*1e6)
			out[i] = baseband[i] * sc * math.Cos(arg)
		case CarrierBOC61:
			sc := boc.Subcarrier(boc.BOC61, boc.Subcarrier61MHz, boc.Sine, t*1e6)
			out[i] = baseband[i] * sc * math.Cos(arg)
		default:
			out[i] = baseband[i] * math.Cos(arg)
		}
	}

	return out
}

// VisibleSamples returns how many leading samples an animation reveals at
// progress at when it displays the first window seconds of the bundle.
// NaN progress or window reveals nothing.
func VisibleSamples(b Bundle, window, at float64) int {
	n := len(b.Time)
	if n < 2 || !(window > 0) {
		return 0
	}
	end := b.Time[n-1]
	window = math.Min(window, end)

	return int(math.Floor(float64(n) * window / end * progress.Clamp(at)))
}
