package combined

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/internal/rng"
)

const (
	// ComponentCodeLength is the PRN length of the components view.
	ComponentCodeLength = 32
	// SignalCodeLength is the PRN length of the transmitted signal.
	SignalCodeLength = 50

	componentCarrierCycles = 10
	signalCarrierCycles    = 15

	// Attenuation and NoiseLevel describe the static received signal.
	Attenuation = 0.1
	NoiseLevel  = 0.2

	// DetectionThreshold is the acquisition threshold of a Scan.
	DetectionThreshold = 0.5

	mainPeakHalfWidth = 0.1
	noiseFloorSpan    = 0.1
)

var (
	componentData = []float64{1, -1, 1, -1}
	signalData    = []float64{1, -1, 1, -1, 1}
)

// at returns seq[⌊t·len⌋] for t in [0, 1).
func at(seq []float64, t float64) float64 {
	i := int(t * float64(len(seq)))
	if i >= len(seq) {
		i = len(seq) - 1
	}

	return seq[i]
}

func carrier(cycles, phase, t float64) float64 {
	return math.Cos(2*math.Pi*cycles*t + phase)
}

func sample(n int, fn func(t float64) float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = fn(float64(i) / float64(n))
	}

	return out
}

// Components returns the rows shown by view, each sampled at n points:
// data bits [1,-1,1,-1], PRN(32) chips and a 10-cycle carrier.
// Unknown views behave as ViewAll.
func Components(view View, n int) []Row {
	view, _ = ParseView(string(view))
	code := chips.PRN(ComponentCodeLength).Float64s()

	var rows []Row
	if view == ViewAll || view == ViewDataOnly {
		rows = append(rows, Row{Component: Data, Label: Data.Label(), Progress: 1,
			Samples: sample(n, func(t float64) float64 { return at(componentData, t) })})
	}
	if view == ViewAll || view == ViewCodeOnly {
		rows = append(rows, Row{Component: Code, Label: Code.Label(), Progress: 1,
			Samples: sample(n, func(t float64) float64 { return at(code, t) })})
	}
	if view == ViewAll || view == ViewCarrierOnly {
		rows = append(rows, Row{Component: Carrier, Label: Carrier.Label(), Progress: 1,
			Samples: sample(n, func(t float64) float64 { return carrier(componentCarrierCycles, 0, t) })})
	}

	return rows
}

// composite is D(t)·C(t)·cos(2π·cycles·t + phase) over the five-bit data and
// PRN(50) code.
func composite(code []float64, cycles, phase, t float64) float64 {
	return at(signalData, t) * at(code, t) * carrier(cycles, phase, t)
}

// Transmitted returns n samples of s(t) = D(t)·C(t)·cos(2π·15t).
func Transmitted(n int) []float64 {
	code := chips.PRN(SignalCodeLength).Float64s()

	return sample(n, func(t float64) float64 {
		return composite(code, signalCarrierCycles, 0, t)
	})
}

// Received returns the transmitted signal scaled by Attenuation plus
// uniform noise in [-NoiseLevel/2, NoiseLevel/2).
func Received(n int, r *rand.Rand) []float64 {
	out := Transmitted(n)
	for i := range out {
		out[i] = Attenuation*out[i] + rng.Centered(r, NoiseLevel)
	}

	return out
}

// scanLag maps lag index i of numLags onto [-1, 1).
func scanLag(i, numLags int) float64 {
	return (float64(i)/float64(numLags) - 0.5) * 2
}

// scanValue is the triangular main peak 1 − 10|lag| inside |lag| < 0.1 and
// a uniform noise floor in [-0.05, 0.05) elsewhere. onPeak reports which.
func scanValue(lag float64, r *rand.Rand) (v float64, onPeak bool) {
	if math.Abs(lag) < mainPeakHalfWidth {
		return 1 - math.Abs(lag)/mainPeakHalfWidth, true
	}

	return rng.Centered(r, noiseFloorSpan), false
}

// AcquisitionScan sweeps numLags lags across one code period either side of
// alignment. The peak is the first strictly largest positive value.
func AcquisitionScan(numLags int, r *rand.Rand) Scan {
	s := Scan{PeakIndex: -1, Threshold: DetectionThreshold}
	if numLags <= 0 {
		s.Lags, s.Values = []float64{}, []float64{}
		return s
	}
	s.Lags = make([]float64, numLags)
	s.Values = make([]float64, numLags)
	for i := range numLags {
		lag := scanLag(i, numLags)
		v, _ := scanValue(lag, r)
		s.Lags[i], s.Values[i] = lag, v
		if v > s.PeakValue {
			s.PeakIndex, s.PeakValue = i, v
		}
	}
	s.Detected = s.PeakValue >= s.Threshold

	return s
}
