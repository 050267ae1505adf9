package l1

import (
	"math"

	"github.com/katalvlaran/gnssviz/internal/progress"
)

// Point is a labelled constellation point in unit I/Q coordinates.
type Point struct {
	Service Service
	I, Q    float64
	Label   string
}

const (
	qpskRadius = 0.6
	offsetI    = 0.3 // combined view: spread services apart
	offsetQ    = 0.2
	shrink     = 0.6
)

// Constellation returns the symbol points of a service. C/A and P(Y) are
// BPSK, M code shows its BOC ring structure, L1C shows QPSK with Gray
// labels, and All overlays C/A, P(Y) and L1C at reduced scale.
func Constellation(svc Service) []Point {
	switch svc {
	case CA, PY:
		return bpsk(svc, 0, 0, 1)
	case M:
		var pts []Point
		for _, ang := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
			for _, d := range []float64{0.5, 0.8} {
				pts = append(pts, Point{Service: M, I: d * math.Cos(ang), Q: d * math.Sin(ang)})
			}
		}

		return pts
	case L1C:
		return qpsk(0, 0, 1)
	default:
		pts := bpsk(CA, -offsetI, offsetQ, shrink)
		pts = append(pts, bpsk(PY, offsetI, offsetQ, shrink)...)

		return append(pts, qpsk(0, -offsetQ, shrink)...)
	}
}

func bpsk(svc Service, ci, cq, scale float64) []Point {
	return []Point{
		{Service: svc, I: ci + scale, Q: cq, Label: "+1"},
		{Service: svc, I: ci - scale, Q: cq, Label: "-1"},
	}
}

func qpsk(ci, cq, scale float64) []Point {
	r := qpskRadius * scale
	return []Point{
		{Service: L1C, I: ci + r, Q: cq + r, Label: "00"},
		{Service: L1C, I: ci - r, Q: cq + r, Label: "01"},
		{Service: L1C, I: ci - r, Q: cq - r, Label: "11"},
		{Service: L1C, I: ci + r, Q: cq - r, Label: "10"},
	}
}

// Block is one stage of the signal-structure diagram.
type Block struct {
	Service Service
	Name    string
	Rate    string
}

// Structure lists the generation chain of a service from data to carrier.
// All lists the four service inputs feeding the combiner.
func Structure(svc Service) []Block {
	carrier := Block{Service: svc, Name: "L1 Carrier", Rate: "1575.42 MHz"}
	switch svc {
	case CA:
		return []Block{
			{Service: CA, Name: "Navigation Data", Rate: "50 bps"},
			{Service: CA, Name: "C/A Code", Rate: "1.023 Mcps"},
			carrier,
		}
	case PY:
		return []Block{
			{Service: PY, Name: "Navigation Data", Rate: "50 bps"},
			{Service: PY, Name: "P(Y) Code", Rate: "10.23 Mcps"},
			carrier,
		}
	case M:
		return []Block{
			{Service: M, Name: "M Code Data", Rate: "classified"},
			{Service: M, Name: "M Code BOC(10,5)", Rate: "5.115 Mcps"},
			carrier,
		}
	case L1C:
		return []Block{
			{Service: L1C, Name: "L1C Data", Rate: "100 sps"},
			{Service: L1C, Name: "L1C Pilot", Rate: "No Data"},
			{Service: L1C, Name: "L1C Code", Rate: "1.023 Mcps"},
			carrier,
		}
	default:
		return []Block{
			{Service: CA, Name: "L1 C/A"},
			{Service: PY, Name: "P(Y)"},
			{Service: M, Name: "M Code"},
			{Service: L1C, Name: "L1C"},
			{Service: All, Name: "Combiner", Rate: "1575.42 MHz"},
		}
	}
}

// Acquisition phases in animation order.
var phases = [...]string{"Searching...", "Signal Detected", "Acquiring Lock", "Tracking"}

const lockThreshold = 0.7

// Acquisition is the animated receiver state at a given progress.
type Acquisition struct {
	Progress   float64
	Phase      string
	NoiseLevel float64 // 1 − progress
	Locked     bool    // progress > 0.7
}

// AcquisitionState derives the acquisition state from progress ∈ [0,1].
// Out-of-range progress is clamped; NaN counts as 0.
func AcquisitionState(at float64) Acquisition {
	p := progress.Clamp(at)
	idx := min(int(p*float64(len(phases))), len(phases)-1)

	return Acquisition{
		Progress:   p,
		Phase:      phases[idx],
		NoiseLevel: 1 - p,
		Locked:     p > lockThreshold,
	}
}
