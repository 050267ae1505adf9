package modulation

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/internal/rng"
)

const (
	constellationNoise = 0.3
	eyeNoise           = 0.1
)

// Amplitude evaluates the modulated carrier at time t (seconds).
//
//	BPSK:      bit·cos(2πf t)
//	QPSK:      bit·cos(2πf t) + next·sin(2πf t)
//	MSK/GMSK:  cos(2πf t + bit·π t / (2·Tb))
//
// A zero bit duration drops the MSK phase term instead of dividing by zero.
// Unknown kinds evaluate as BPSK.
func Amplitude(kind Kind, carrier, bitDuration, bit, next, t float64) float64 {
	wt := 2 * math.Pi * carrier * t
	switch kind {
	case QPSK:
		return bit*math.Cos(wt) + next*math.Sin(wt)
	case MSK, GMSK:
		var dphi float64
		if bitDuration != 0 {
			dphi = bit * math.Pi * t / (2 * bitDuration)
		}

		return math.Cos(wt + dphi)
	default:
		return bit * math.Cos(wt)
	}
}

// NoiseScale converts an SNR in dB to the uniform noise span 10^(−snr/20).
func NoiseScale(snrDB float64) float64 {
	return math.Pow(10, -snrDB/20)
}

// Noise draws one uniform sample in [−scale/2, scale/2).
func Noise(scale float64, r *rand.Rand) float64 {
	return rng.Centered(r, scale)
}

// RandomBits draws n independent ±1 data bits.
func RandomBits(n int, r *rand.Rand) []float64 {
	if n <= 0 {
		return []float64{}
	}
	bits := make([]float64, n)
	for i := range bits {
		bits[i] = rng.Sign(r)
	}

	return bits
}

// Synthesize samples the carrier for p over len(bits) bit periods and adds
// uniform noise for p.SNRdB.
func Synthesize(p Params, opts ...Option) Waveform {
	o := gatherOptions(opts)
	bits := normalizeBits(o.Bits)
	if bits == nil {
		bits = RandomBits(o.NumBits, o.Rand)
	}

	n := len(bits)
	total := n * o.SamplesPerBit
	tb := p.BitDuration()
	scale := NoiseScale(p.SNRdB)

	w := Waveform{
		Time:   make([]float64, total),
		Signal: make([]float64, total),
		Bits:   bits,
		Params: p,
	}
	for i := 0; i < total; i++ {
		t := float64(i) * tb / float64(o.SamplesPerBit)
		idx := i / o.SamplesPerBit
		next := bits[min(idx+1, n-1)]
		w.Time[i] = t
		w.Signal[i] = Amplitude(p.Kind, p.CarrierMHz, tb, bits[idx], next, t) + Noise(scale, o.Rand)
	}

	return w
}

func normalizeBits(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	for i, b := range in {
		if b >= 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}

	return out
}

// Constellation scatters n received symbols for kind: BPSK on the I axis,
// QPSK on the four corners, MSK/GMSK on the unit circle. Each coordinate
// gets uniform noise of span 0.3·NoiseScale(snr).
func Constellation(kind Kind, snrDB float64, n int, r *rand.Rand) []Point {
	if n <= 0 {
		return []Point{}
	}
	noise := NoiseScale(snrDB) * constellationNoise
	pts := make([]Point, n)
	for i := range pts {
		var p Point
		switch kind {
		case QPSK:
			p = Point{I: rng.Sign(r), Q: rng.Sign(r)}
		case MSK, GMSK:
			phase := rng.Float64(r) * 2 * math.Pi
			p = Point{I: math.Cos(phase), Q: math.Sin(phase)}
		default:
			p = Point{I: rng.Sign(r)}
		}
		p.I += rng.Centered(r, noise)
		p.Q += rng.Centered(r, noise)
		pts[i] = p
	}

	return pts
}

// EyeDiagram returns traces overlaid on a two-symbol window t ∈ [−1, 1).
// Each trace switches from one random bit to the next at t=0; GMSK traces are
// weighted by exp(−(2t)²).
func EyeDiagram(kind Kind, snrDB float64, traces, samplesPerSymbol int, r *rand.Rand) [][]float64 {
	if traces <= 0 || samplesPerSymbol <= 0 {
		return [][]float64{}
	}
	noise := NoiseScale(snrDB) * eyeNoise
	out := make([][]float64, traces)
	for tr := range out {
		bits := RandomBits(3, r)
		row := make([]float64, 2*samplesPerSymbol)
		for i := range row {
			t := float64(i)/float64(samplesPerSymbol) - 1
			v := bits[0]
			if t >= 0 {
				v = bits[1]
			}
			if kind == GMSK {
				v *= math.Exp(-(2 * t) * (2 * t))
			}
			row[i] = v + rng.Centered(r, noise)
		}
		out[tr] = row
	}

	return out
}
