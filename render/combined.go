package render

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/animation"
	"github.com/katalvlaran/gnssviz/combined"
	"github.com/katalvlaran/gnssviz/session"
)

const (
	componentSamples   = 500
	signalSamples      = 1000
	frameComponentRows = 200
	frameSignalSamples = 500
	scanLags           = 100
)

var componentColors = map[combined.Component]string{
	combined.Data:    colorRed,
	combined.Code:    colorBlue,
	combined.Carrier: colorGreen,
}

// componentRow returns the 1-based row and amplitude divisor of c.
func componentRow(c combined.Component) (row, div float64) {
	switch c {
	case combined.Data:
		return 1, 3
	case combined.Code:
		return 2, 3
	default:
		return 3, 4
	}
}

func componentsPanel(rows []combined.Row, n int, s Surface, withProgress bool) *Panel {
	p := panel("components")
	lh := s.Height / 4
	for _, r := range rows {
		row, div := componentRow(r.Component)
		band := Band{Center: lh * row, Scale: lh / div}
		p.add(traceOver(r.Samples, n, s.Width, 0, band, stroke(componentColors[r.Component], 2)))
		label := r.Label
		if withProgress {
			label = fmt.Sprintf("%s - %.0f%%", label, r.Progress*100)
		}
		p.add(text(10, lh*row-lh/2+5, label, Style{Color: componentColors[r.Component]}))
	}

	return p
}

// scanBand maps a correlation value onto the scan plot.
func scanBand(s Surface) Band {
	return Band{Center: s.Height - 0.1*s.Height/1.2, Scale: s.Height / 1.2}
}

func scanPanel(scan combined.Scan, visible int, s Surface) *Panel {
	p := panel("correlation_process")
	band := scanBand(s)
	p.add(traceOver(scan.Values[:visible], len(scan.Values), s.Width, 0, band, stroke(colorGreen, 2)))
	ty := band.Y(scan.Threshold)
	p.add(line(0, ty, s.Width, ty, dashed(colorRed)),
		text(10, ty-5, "Acquisition Threshold", Style{}))

	return p
}

// Combined draws the static signal-combination views: components, the
// transmitted signal, the received signal and the correlation scan.
func Combined(st *session.State, s Surface, r *rand.Rand) []Panel {
	s = s.orDefault()

	cp := componentsPanel(combined.Components(st.Combined.View, componentSamples), componentSamples, s, false)
	cp.add(text(40, 25, "Signal: "+st.Combined.Signal, Style{Font: "14px Arial"}))

	mid := Band{Center: s.Height / 2, Scale: s.Height / 3}
	fp := panel("final_signal")
	fp.add(Trace(combined.Transmitted(signalSamples), s, mid, stroke(colorPurple, 1.5)),
		text(10, 20, "Transmitted GNSS Signal", Style{}),
		text(10, s.Height-10, "s(t) = √P × D(t) × C(t) × cos(2πf₀t + φ)", Style{}))

	rp := panel("received_signal")
	rp.add(Trace(combined.Received(signalSamples, r), s, Band{Center: s.Height / 2, Scale: s.Height / 2}, stroke(colorAmber, 1)),
		text(10, 20, "Received Signal (with noise)", Style{}),
		text(10, 35, "Signal buried in noise (-130 dBm typical)", Style{}))

	scan := combined.AcquisitionScan(scanLags, r)
	sp := scanPanel(scan, len(scan.Values), s)
	sp.add(text(10, 20, "Correlation Function", Style{}))
	if scan.PeakIndex >= 0 {
		px := float64(scan.PeakIndex) / float64(len(scan.Values)) * s.Width
		py := scanBand(s).Y(scan.PeakValue)
		sp.add(circle(px, py, 4, Style{Color: colorRed, Fill: true}),
			text(px+10, py-10, "Peak = Signal Detected", Style{}))
	}

	return []Panel{*cp, *fp, *rp, *sp}
}

// CombinedFrame draws one frame of the signal-propagation animation.
func CombinedFrame(st *session.State, s Surface, f animation.Frame, r *rand.Rand) []Panel {
	s = s.orDefault()

	cp := componentsPanel(combined.ComponentsFrame(f.Progress, f.Step, frameComponentRows), frameComponentRows, s, true)

	tr := combined.TransmissionFrame(f.Progress, f.Step, frameSignalSamples)
	tp := panel("final_signal")
	tp.add(traceOver(tr.Samples, frameSignalSamples, s.Width, 0, Band{Center: s.Height / 2, Scale: s.Height / 3}, stroke(colorPurple, 2)))
	edge, width := tr.WavePosition*s.Width, tr.WaveWidth*s.Width
	tp.add(rect(math.Max(0, edge-width), 0, width, s.Height, Style{Color: colorPurple, Fill: true, Alpha: 0.3}),
		text(10, 20, "Signal Transmission from Satellite", Style{}),
		text(10, 35, fmt.Sprintf("Progress: %.0f%%", f.Progress*100), Style{}))

	rc := combined.ReceptionFrame(f.Progress, f.Step, frameSignalSamples, r)
	rp := panel("received_signal")
	rp.add(Trace(rc.Samples, s, Band{Center: s.Height / 2, Scale: s.Height / 2}, stroke(colorAmber, 1)),
		rect(10, 10, 100*rc.SignalStrength, 20, Style{Color: colorAmber, Fill: true, Alpha: rc.SignalStrength}),
		rect(10, 10, 100, 20, stroke(colorText, 1)),
		text(120, 25, fmt.Sprintf("Signal Strength: %.0f%%", rc.SignalStrength*100), Style{}),
		text(10, s.Height-10, fmt.Sprintf("Path Loss: %.1f dB", rc.PathLossDB), Style{}))

	sf := combined.CorrelationFrame(f.Progress, scanLags, r)
	sp := scanPanel(sf.Scan, sf.Visible, s)
	sx := sf.ScanPosition / scanLags * s.Width
	sp.add(line(sx, 0, sx, s.Height, stroke(colorRed, 2)),
		text(10, 20, "Correlation Process - Code Acquisition", Style{}),
		text(10, 35, fmt.Sprintf("Scanning: %.0f%%", f.Progress*100), Style{}))
	if sf.PeakFound {
		sp.add(text(s.Width-150, 30, "SIGNAL ACQUIRED!", Style{Color: colorGreen, Font: fontBold}))
	} else {
		sp.add(text(s.Width-100, 30, "Searching...", Style{Color: colorRed}))
	}

	return []Panel{*cp, *tp, *rp, *sp}
}
