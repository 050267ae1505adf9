package combined

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/internal/progress"
	"github.com/katalvlaran/gnssviz/internal/rng"
)

const (
	stagePhase      = 0.1 // carrier phase advance per step, components frame
	travelPhase     = 0.2 // transmission frame
	receptionPhase  = 0.15
	frameCycles     = 20 // carrier cycles in transmission and reception frames
	buildCycles     = 15
	waveWidth       = 0.3
	peakFoundLevel  = 0.8
	noiseFlickerArg = 0.3 // noise envelope sin(step·0.3 + i·0.1)
	noiseFlickerIdx = 0.1
)

// stageStarts are the progress values at which data, code and carrier
// start building. Each stage completes a third of the timeline later.
var stageStarts = [...]float64{0, 0.33, 0.66}

var frameData = []float64{1, -1, 1, -1, 1, -1, 1, 1}

// ComponentsFrame builds the component rows progressively: data during the
// first third of the timeline, then code, then a carrier whose phase
// advances with step. A row appears once progress passes its start and holds
// only the revealed prefix of its n samples. Progress is clamped to [0,1].
func ComponentsFrame(prog float64, step, n int) []Row {
	if n < 0 {
		n = 0
	}
	pos := progress.Clamp(prog)
	code := chips.PRN(ComponentCodeLength).Float64s()
	fns := [...]func(t float64) float64{
		func(t float64) float64 { return at(frameData, t) },
		func(t float64) float64 { return at(code, t) },
		func(t float64) float64 { return carrier(buildCycles, float64(step)*stagePhase, t) },
	}
	comps := [...]Component{Data, Code, Carrier}

	var rows []Row
	for k, start := range stageStarts {
		if pos <= start {
			break
		}
		p := math.Min((pos-start)*3, 1)
		visible := int(float64(n) * p)
		samples := make([]float64, visible)
		for i := range samples {
			samples[i] = fns[k](float64(i) / float64(n))
		}
		rows = append(rows, Row{Component: comps[k], Label: comps[k].Label(), Samples: samples, Progress: p})
	}

	return rows
}

// TransmissionFrame shows the composite signal behind a leading edge at
// normalized position progress. Amplitude rises toward the edge as
// exp(−d/0.3)·0.5 + 0.5 with d the distance behind it.
func TransmissionFrame(at float64, step, n int) Transmission {
	pos := progress.Clamp(at)
	tr := Transmission{Progress: pos, WavePosition: pos, WaveWidth: waveWidth, Samples: []float64{}}
	code := chips.PRN(SignalCodeLength).Float64s()
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		if t > tr.WavePosition {
			break
		}
		amp := math.Exp(-math.Abs(t-tr.WavePosition)/waveWidth)*0.5 + 0.5
		tr.Samples = append(tr.Samples, composite(code, frameCycles, float64(step)*travelPhase, t)*amp)
	}

	return tr
}

// ReceptionFrame shows the signal fading along the path: strength falls
// from 0.8 to 0.2 and noise rises from 0.1 to 0.4 as progress goes 0 → 1.
// The noise carries a flickering sin(0.3·step + 0.1·i) envelope.
func ReceptionFrame(at float64, step, n int, r *rand.Rand) Reception {
	p := progress.Clamp(at)
	rc := Reception{
		Progress:       p,
		SignalStrength: 0.8 - p*0.6,
		NoiseLevel:     0.1 + p*0.3,
	}
	rc.PathLossDB = 20 * math.Log10(1/rc.SignalStrength)
	code := chips.PRN(SignalCodeLength).Float64s()
	rc.Samples = sample(n, func(t float64) float64 {
		return rc.SignalStrength * composite(code, frameCycles, float64(step)*receptionPhase, t)
	})
	for i := range rc.Samples {
		envelope := math.Sin(float64(step)*noiseFlickerArg + float64(i)*noiseFlickerIdx)
		rc.Samples[i] += rng.Centered(r, rc.NoiseLevel) * envelope
	}

	return rc
}

// CorrelationFrame reveals an acquisition scan up to lag index
// progress·numLags. Only revealed main-peak values count toward the peak
// and PeakFound.
func CorrelationFrame(at float64, numLags int, r *rand.Rand) ScanFrame {
	f := ScanFrame{Scan: Scan{PeakIndex: -1, Threshold: DetectionThreshold, Lags: []float64{}, Values: []float64{}}}
	if numLags <= 0 {
		return f
	}
	f.ScanPosition = progress.Clamp(at) * float64(numLags)
	f.Lags = make([]float64, numLags)
	f.Values = make([]float64, numLags)
	for i := range numLags {
		lag := scanLag(i, numLags)
		v, onPeak := scanValue(lag, r)
		f.Lags[i], f.Values[i] = lag, v
		revealed := float64(i) <= f.ScanPosition
		if revealed {
			f.Visible = i + 1
		}
		if onPeak && revealed {
			if v > f.PeakValue {
				f.PeakIndex, f.PeakValue = i, v
			}
			if v > peakFoundLevel {
				f.PeakFound = true
			}
		}
	}
	f.Detected = f.PeakValue >= f.Threshold

	return f
}
