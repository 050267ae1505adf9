package spectrum

import (
	"math"

	"github.com/katalvlaran/gnssviz/boc"
	"github.com/katalvlaran/gnssviz/modulation"
)

const (
	dcNullWidth      = 0.001 // |f/chipRate| below this is the BOC DC null
	mainPeakWidth    = 0.01  // |lag| below this reports the unit main peak
	sidePeakWidth    = 0.1
	sidePeakGain     = 0.3
	sidePeakMinMHz   = 2.0
	mbocMainWeight   = 0.75
	mbocHighWeight   = 0.25
	spreadZeroOffset = 1e-6 // Hz
)

// Sinc returns sin(πx)/(πx) with the limiting value 1 at x = 0.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x

	return math.Sin(px) / px
}

// ToDB converts a linear power ratio to dB under the dB floor policy.
func ToDB(power float64) float64 {
	return ClampDB(10 * math.Log10(power))
}

// AmplitudeDB converts an amplitude ratio to dB (20·log10|a|) under the dB
// floor policy.
func AmplitudeDB(a float64) float64 {
	return ClampDB(20 * math.Log10(math.Abs(a)))
}

// ModulationPSD approximates the normalized baseband PSD of kind at freq
// (Hz) for dataRate (bps).
//
//	BPSK:      sinc²(f/R)
//	QPSK:      sinc²(2f/R)
//	MSK/GMSK:  cos²(πf/2R) / (1 − (2f/R)²)
//
// Unknown kinds evaluate as BPSK.
func ModulationPSD(kind modulation.Kind, freq, dataRate float64) float64 {
	var psd float64
	switch kind {
	case modulation.QPSK:
		s := Sinc(freq / (dataRate / 2))
		psd = s * s
	case modulation.MSK, modulation.GMSK:
		c := math.Cos(math.Pi * freq / (2 * dataRate))
		r := 2 * freq / dataRate
		psd = c * c / (1 - r*r)
	default:
		s := Sinc(freq / dataRate)
		psd = s * s
	}

	return ClampLinear(psd)
}

// BOCPSD approximates the BOC power spectrum at freq (MHz offset from the
// carrier). It is (sinc(f/Rc)·shape)² with a null at DC, where shape is
//
//	mboc:    0.75·cos(πf/1.023) + 0.25·cos(πf/6.138)
//	altboc:  cos(πf/fs)·cos(πf/2fs)
//	others:  cos(πf/fs)
func BOCPSD(kind boc.Kind, freq, subcarrierMHz, chipRateMcps float64) float64 {
	nf := freq / chipRateMcps
	if math.Abs(nf) < dcNullWidth {
		return FloorLinear
	}

	var shape float64
	switch kind {
	case boc.MBOC:
		shape = mbocMainWeight*math.Cos(math.Pi*freq/boc.Subcarrier11MHz) +
			mbocHighWeight*math.Cos(math.Pi*freq/boc.Subcarrier61MHz)
	case boc.AltBOC:
		shape = math.Cos(math.Pi*freq/subcarrierMHz) * math.Cos(math.Pi*freq/(2*subcarrierMHz))
	default:
		shape = math.Cos(math.Pi * freq / subcarrierMHz)
	}
	v := Sinc(nf) * shape

	return ClampLinear(v * v)
}

// BOCCorrelation approximates the BOC autocorrelation at lag (chips).
//
//	|lag| < 0.01:  1
//	mboc:          sinc(lag)·(0.75·cos(π·1.023·lag/Rc) + 0.25·cos(π·6.138·lag/Rc))
//	altboc:        sinc(lag)·cos(π·fs·lag/Rc)·e^(−|lag|)
//	others:        sinc(lag)·cos(π·fs·lag/Rc)
//
// Subcarriers above 2 MHz add 0.3·sinc(lag) within ±0.1 chip of the side
// peak at Rc/fs.
func BOCCorrelation(kind boc.Kind, lag, subcarrierMHz, chipRateMcps float64) float64 {
	if math.Abs(lag) < mainPeakWidth {
		return 1
	}
	s := Sinc(lag)

	var corr float64
	switch kind {
	case boc.MBOC:
		c1 := math.Cos(math.Pi * boc.Subcarrier11MHz * lag / chipRateMcps)
		c6 := math.Cos(math.Pi * boc.Subcarrier61MHz * lag / chipRateMcps)
		corr = s * (mbocMainWeight*c1 + mbocHighWeight*c6)
	case boc.AltBOC:
		corr = s * math.Cos(math.Pi*subcarrierMHz*lag/chipRateMcps) * math.Exp(-math.Abs(lag))
	default:
		corr = s * math.Cos(math.Pi*subcarrierMHz*lag/chipRateMcps)
	}

	if subcarrierMHz > sidePeakMinMHz {
		side := chipRateMcps / subcarrierMHz
		if math.Abs(math.Abs(lag)-side) < sidePeakWidth {
			corr += sidePeakGain * s
		}
	}

	return Finite(corr)
}

// SpreadSpectrumDB approximates the PSD (dB) of a data×code×carrier signal at
// freqMHz. The data term is sinc(Δf/Rb); when spread is true a code term
// sinc(Δf/Rc) multiplies it. Δf = freq − carrier in Hz.
func SpreadSpectrumDB(freqMHz, carrierMHz, dataRate, chipRate float64, spread bool) float64 {
	df := (freqMHz - carrierMHz) * 1e6
	near := math.Abs(df) < spreadZeroOffset

	data := 1.0
	if !near {
		data = Sinc(df / dataRate)
	}
	code := 1.0
	if spread && !near {
		code = Sinc(df / chipRate)
	}

	return AmplitudeDB(data * code)
}

// Sweep samples fn at n points spread uniformly over [centre−span/2,
// centre+span/2).
func Sweep(n int, span, centre float64, fn func(x float64) float64) Curve {
	if n <= 0 {
		return Curve{X: []float64{}, Y: []float64{}}
	}
	c := Curve{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		x := centre + (float64(i)/float64(n)-0.5)*span
		c.X[i] = x
		c.Y[i] = fn(x)
	}

	return c
}
