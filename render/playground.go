package render

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/animation"
	"github.com/katalvlaran/gnssviz/playground"
	"github.com/katalvlaran/gnssviz/session"
)

// inputWindow is the span, in seconds, of the input and output plots.
const inputWindow = 1.0

// windowed returns the leading samples of x covering inputWindow seconds.
func windowed(b playground.Bundle, x []float64) []float64 {
	n := playground.VisibleSamples(b, inputWindow, 1)
	return x[:min(n, len(x))]
}

// inputPanel draws data, code and their product over the input window,
// revealed up to progress.
func inputPanel(b playground.Bundle, s Surface, progress float64) *Panel {
	p := panel("input_signals")
	h := s.Height / 3
	n := playground.VisibleSamples(b, inputWindow, 1)
	visible := playground.VisibleSamples(b, inputWindow, progress)
	rows := []struct {
		label  string
		values []float64
		color  string
	}{
		{fmt.Sprintf("Data (%g bps)", b.Params.DataRate), b.DataSignal, colorRed},
		{fmt.Sprintf("Code (%g cps)", b.Params.ChipRate), b.CodeSignal, colorBlue},
		{"Data × Code", b.Baseband, colorPurple},
	}
	for i, r := range rows {
		band := Band{Center: h*float64(i) + h/2, Scale: h * 0.3}
		p.add(traceOver(r.values[:min(visible, len(r.values))], n, s.Width, 0, band, stroke(r.color, 2)),
			text(10, h*float64(i)+14, r.label, Style{Color: r.color}))
	}

	return p
}

func modulationPanel(b playground.Bundle, s Surface) *Panel {
	p := panel("modulation_process")
	half := s.Height / 2
	p.add(Trace(windowed(b, b.Baseband), s, Band{Center: half / 2, Scale: half * 0.35}, stroke(colorPurple, 1.5)),
		Trace(windowed(b, b.Modulated), s, Band{Center: half + half/2, Scale: half * 0.35}, stroke(colorGreen, 1)),
		text(10, 14, "Baseband", Style{}),
		text(10, half+14, fmt.Sprintf("%s @ %g MHz", string(b.Params.Carrier), b.Params.CarrierMHz), Style{}))

	return p
}

func outputPanel(b playground.Bundle, s Surface) *Panel {
	p := panel("final_output")
	p.add(Trace(windowed(b, b.Noisy), s, Band{Center: s.Height / 2, Scale: s.Height / 3}, stroke(colorAmber, 1)),
		text(10, 20, fmt.Sprintf("Output with %.0f%% noise", b.Params.NoiseLevel*100), Style{}))

	return p
}

func analysisPanel(a playground.Analysis, s Surface) *Panel {
	p := panel("analysis")
	half := s.Width / 2
	sub := Surface{Width: half, Height: s.Height}

	// spectral density: −80 dB at the axis, 0 dB near the top
	band := Band{Center: s.Height - 30, Scale: (s.Height - 60) / 80}
	density := make([]float64, len(a.Density.Y))
	for i, v := range a.Density.Y {
		density[i] = v + 80
	}
	p.add(Trace(density, sub, band, stroke(colorBlue, 2)),
		line(0, s.Height-30, half, s.Height-30, stroke(colorAxis, 1)),
		text(half/2-60, 20, "Power Spectral Density", Style{}))

	cx, cy := half+half/2, s.Height/2
	radius := math.Min(half, s.Height) * 0.3
	p.add(axes(cx, cy, half-40, s.Height-40)...)
	pts := make([]Point, len(a.Constellation))
	for i, q := range a.Constellation {
		pts[i] = Point{X: cx + q.I*radius, Y: cy - q.Q*radius}
	}
	p.add(Command{Op: OpPoints, Points: pts, Style: Style{Color: colorRed, Width: 4, Fill: true}},
		text(cx-60, 20, "Constellation Diagram", Style{}))

	return p
}

// annotate adds the per-mode overlays.
func annotate(panels []Panel, b playground.Bundle, a playground.Analysis, s Surface) {
	switch b.Params.Mode {
	case playground.ModeAdvanced:
		for i := range panels {
			switch panels[i].Name {
			case "modulation_process":
				panels[i].add(
					text(s.Width-200, s.Height-30, fmt.Sprintf("Processing Gain: %.1f dB", a.ProcessingGainDB), Style{}),
					text(s.Width-200, s.Height-15, fmt.Sprintf("Bandwidth: %g Hz", a.BandwidthHz), Style{}))
			case "final_output":
				cdma := "Disabled"
				if a.CDMA {
					cdma = "Enabled"
				}
				panels[i].add(
					text(10, s.Height-30, fmt.Sprintf("Estimated SNR: %.1f dB", a.SNRdB), Style{}),
					text(10, s.Height-15, "CDMA: "+cdma, Style{}))
			case "analysis":
				panels[i].add(
					text(s.Width/2-80, s.Height-30, "GNSS Signal Properties", Style{Font: fontBold}),
					text(s.Width/4-50, s.Height-15, "Autocorrelation: "+a.Autocorrelation, Style{Font: fontSmall}),
					text(3*s.Width/4-50, s.Height-15, "Multipath: "+a.Multipath, Style{Font: fontSmall}))
			}
		}
	case playground.ModeComparison:
		for i := range panels {
			panels[i].add(line(s.Width/2, 0, s.Width/2, s.Height, Style{Color: "#cccccc", Width: 2, Dash: []float64{3, 3}}),
				text(s.Width/4-50, 15, "Configuration A", Style{}),
				text(3*s.Width/4-50, 15, "Configuration B", Style{}))
		}
	case playground.ModeInteractive:
		h := s.Height
		for i, y := range []float64{h / 6, h / 2, 5 * h / 6} {
			panels[0].add(circle(s.Width-30, y, 15, Style{Color: colorText, Width: 2}),
				text(s.Width-34, y+4, fmt.Sprint(i+1), Style{}))
		}
	}
}

// Playground builds the signal for st.Playground and draws the input,
// modulation, output and analysis panels with the overlays of its mode.
func Playground(st *session.State, s Surface, r *rand.Rand) []Panel {
	s = s.orDefault()
	b := playground.Build(st.Playground, playground.WithRand(r))
	a := playground.Analyze(b)

	panels := []Panel{
		*inputPanel(b, s, 1),
		*modulationPanel(b, s),
		*outputPanel(b, s),
		*analysisPanel(a, s),
	}
	annotate(panels, b, a, s)

	return panels
}

// PlaygroundFrame draws one frame of the build-up animation: the inputs
// revealed up to the frame progress, a sweep over the modulation plot, a
// growing strength bar and a scanning beam over the spectrum.
func PlaygroundFrame(st *session.State, s Surface, f animation.Frame, r *rand.Rand) []Panel {
	s = s.orDefault()
	b := playground.Build(st.Playground, playground.WithRand(r))
	a := playground.Analyze(b)
	pct := fmt.Sprintf("%.0f%%", f.Progress*100)

	ip := inputPanel(b, s, f.Progress)
	ip.add(text(10, 20, "Building Signal... "+pct, Style{}))

	mp := modulationPanel(b, s)
	mp.add(rect(0, 0, s.Width*f.Progress, s.Height, Style{Color: colorPurple, Fill: true, Alpha: 0.2}),
		text(s.Width/2-60, 30, "Modulating... "+pct, Style{Color: colorPurple, Font: fontBold}))

	op := outputPanel(b, s)
	bx := s.Width - 220
	op.add(rect(bx, 20, 200, 20, Style{Color: colorGrid, Fill: true}),
		rect(bx, 20, 200*f.Progress, 20, Style{Color: colorGreen, Fill: true}),
		rect(bx, 20, 200, 20, stroke(colorText, 1)),
		text(bx+40, 15, "Signal Strength: "+pct, Style{}))

	ap := analysisPanel(a, s)
	beam := f.Progress * s.Width / 2
	ap.add(rect(beam-10, 0, 20, s.Height, Style{Color: "#ffff00", Fill: true, Alpha: 0.3}))

	return []Panel{*ip, *mp, *op, *ap}
}
