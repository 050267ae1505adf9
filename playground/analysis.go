package playground

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gnssviz/spectrum"
)

const (
	densityPoints  = 100
	densityFloorDB = -80.0
	minNoiseLevel  = 0.01 // stands in for a zero noise level in the SNR figure
	qpskCorner     = 0.6
	bpskOffset     = 0.6
)

// Point is one ideal constellation symbol in unit I/Q coordinates.
type Point struct {
	I, Q float64
}

// Analysis holds the derived figures of a Bundle.
type Analysis struct {
	ProcessingGainDB float64 // 10·log10(ChipRate/DataRate)
	BandwidthHz      float64 // 2·ChipRate
	SNRdB            float64 // −10·log10(NoiseLevel), 0 noise counts as 0.01
	CDMA             bool    // a spreading code is applied

	// Qualitative labels shown in the advanced view.
	Autocorrelation string
	Multipath       string

	SignalRMS float64 // RMS of the noiseless modulated signal
	NoiseRMS  float64 // RMS of Noisy − Modulated

	Density       spectrum.Curve // analytic PSD over ±CarrierMHz, dB
	Periodogram   spectrum.Curve // FFT of Noisy, dB
	Constellation []Point
}

// Analyze computes the analysis panel for b. Non-finite figures (for
// example a zero data rate) are reported as 0.
func Analyze(b Bundle) Analysis {
	p := b.Params
	spread := p.Code != CodeNone

	noise := p.NoiseLevel
	if noise == 0 {
		noise = minNoiseLevel
	}

	a := Analysis{
		ProcessingGainDB: spectrum.Finite(10 * math.Log10(p.ChipRate/p.DataRate)),
		BandwidthHz:      2 * p.ChipRate,
		SNRdB:            spectrum.Finite(-10 * math.Log10(noise)),
		CDMA:             spread,
		Autocorrelation:  "Poor",
		Multipath:        "Susceptible",
		SignalRMS:        rms(b.Modulated),
		Periodogram:      spectrum.Periodogram(b.Noisy, SampleRate),
		Constellation:    Constellation(p.Carrier),
	}
	if spread {
		a.Autocorrelation, a.Multipath = "Good", "Resistant"
	}

	if len(b.Noisy) == len(b.Modulated) && len(b.Noisy) > 0 {
		residual := make([]float64, len(b.Noisy))
		floats.SubTo(residual, b.Noisy, b.Modulated)
		a.NoiseRMS = rms(residual)
	}

	a.Density = spectrum.Sweep(densityPoints, 2*p.CarrierMHz, 0, func(f float64) float64 {
		return math.Max(spectrum.SpreadSpectrumDB(f, p.CarrierMHz, p.DataRate, p.ChipRate, spread), densityFloorDB)
	})

	return a
}

// rms returns sqrt(mean(x²)), 0 for an empty slice.
func rms(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sq := make([]float64, len(x))
	floats.MulTo(sq, x, x)

	return math.Sqrt(stat.Mean(sq, nil))
}

// Constellation returns the ideal symbol points of kind. The BOC presets
// are binary and share the BPSK pair.
func Constellation(kind CarrierKind) []Point {
	if kind == CarrierQPSK {
		return []Point{
			{qpskCorner, qpskCorner}, {-qpskCorner, qpskCorner},
			{-qpskCorner, -qpskCorner}, {qpskCorner, -qpskCorner},
		}
	}

	return []Point{{-bpskOffset, 0}, {bpskOffset, 0}}
}
