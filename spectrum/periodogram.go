package spectrum

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Periodogram computes the one-sided, Hann-windowed power spectrum of signal
// sampled at sampleRate (samples per unit time). X holds frequencies in
// cycles per unit time and Y the power in dB relative to a full-scale tone,
// floored at FloorDB. Signals shorter than two samples yield an empty curve.
func Periodogram(signal []float64, sampleRate float64) Curve {
	n := len(signal)
	if n < 2 || sampleRate <= 0 {
		return Curve{X: []float64{}, Y: []float64{}}
	}

	window := hann(n)
	windowed := make([]float64, n)
	floats.MulTo(windowed, signal, window)
	gain := floats.Sum(window) / 2 // a unit-amplitude tone peaks at gain
	for i := range windowed {
		windowed[i] = Finite(windowed[i])
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	c := Curve{X: make([]float64, len(coeffs)), Y: make([]float64, len(coeffs))}
	for i, z := range coeffs {
		mag := math.Hypot(real(z), imag(z)) / gain
		c.X[i] = fft.Freq(i) * sampleRate
		c.Y[i] = AmplitudeDB(mag)
	}

	return c
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}
