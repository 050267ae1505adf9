package render

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/modulation"
	"github.com/katalvlaran/gnssviz/session"
	"github.com/katalvlaran/gnssviz/spectrum"
)

const (
	constellationSymbols = 200
	spectrumPoints       = 1000
	spectrumSpanRates    = 5 // PSD plot covers [−5·DataRate, 5·DataRate)
	eyeTraces            = 20
	eyeSamples           = 20
)

// Carrier draws the modulated waveform, its constellation, the analytic
// PSD and the eye diagram for st.Carrier. r drives bits and noise.
func Carrier(st *session.State, s Surface, r *rand.Rand) []Panel {
	s = s.orDefault()
	p := st.Carrier

	tp := panel("carrier_time")
	w := modulation.Synthesize(p, modulation.WithRand(r))
	tp.add(grid(s, 8, 4)...)
	tp.add(Trace(w.Signal, s, Band{Center: s.Height / 2, Scale: s.Height / 3}, stroke(colorBlue, 1.5)))
	if n := len(w.Bits); n > 0 {
		bits := make([]float64, len(w.Signal))
		for i := range bits {
			bits[i] = w.Bits[i*n/len(bits)]
		}
		tp.add(Trace(bits, s, Band{Center: s.Height / 2, Scale: s.Height / 2.5}, dashed(colorRed)))
	}
	tp.add(text(10, 20, fmt.Sprintf("%s @ %g MHz, %g bps, SNR %g dB",
		string(p.Kind), p.CarrierMHz, p.DataRate, p.SNRdB), Style{}))

	cp := panel("constellation")
	cx, cy := s.Width/2, s.Height/2
	radius := math.Min(s.Width, s.Height) * 0.35
	cp.add(axes(cx, cy, s.Width, s.Height)...)
	sym := modulation.Constellation(p.Kind, p.SNRdB, constellationSymbols, r)
	pts := make([]Point, len(sym))
	for i, q := range sym {
		pts[i] = Point{X: cx + q.I*radius, Y: cy - q.Q*radius}
	}
	cp.add(Command{Op: OpPoints, Points: pts, Style: Style{Color: colorRed, Width: 2, Fill: true, Alpha: 0.6}})
	cp.add(text(10, 20, "Constellation", Style{}))

	sp := panel("spectrum")
	span := spectrumSpanRates * p.DataRate
	psd := spectrum.Sweep(spectrumPoints, 2*span, 0, func(f float64) float64 {
		return spectrum.ModulationPSD(p.Kind, f, p.DataRate)
	})
	sp.add(grid(s, 10, 4)...)
	sp.add(Trace(psd.Y, s, Band{Center: s.Height - 20, Scale: (s.Height - 40) / maxAbs(psd.Y)}, stroke(colorBlue, 2)))
	sp.add(line(s.Width/2, 0, s.Width/2, s.Height, dashed(colorAxis)),
		text(10, 20, "Power Spectral Density", Style{}),
		text(10, s.Height-5, fmt.Sprintf("%+g Hz", -span), Style{Font: fontSmall}),
		text(s.Width/2-10, s.Height-5, "0 Hz", Style{Font: fontSmall}),
		text(s.Width-60, s.Height-5, fmt.Sprintf("%+g Hz", span), Style{Font: fontSmall}))

	ep := panel("eye")
	ep.add(line(s.Width/2, 0, s.Width/2, s.Height, dashed(colorAxis)))
	for _, tr := range modulation.EyeDiagram(p.Kind, p.SNRdB, eyeTraces, eyeSamples, r) {
		ep.add(Trace(tr, s, Band{Center: s.Height / 2, Scale: s.Height / 3},
			Style{Color: colorBlue, Width: 1, Alpha: 0.3}))
	}
	ep.add(text(10, 20, "Eye Diagram", Style{}))

	return []Panel{*tp, *cp, *sp, *ep}
}
