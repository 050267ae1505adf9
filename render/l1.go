package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gnssviz/animation"
	"github.com/katalvlaran/gnssviz/l1"
	"github.com/katalvlaran/gnssviz/session"
	"github.com/katalvlaran/gnssviz/spectrum"
)

const (
	l1SpectrumPoints = 400
	l1TopDB          = -60.0
	blockWidth       = 160.0
	blockHeight      = 30.0
)

var serviceColors = map[l1.Service]string{
	l1.CA:  colorBlue,
	l1.PY:  colorRed,
	l1.M:   colorGreen,
	l1.L1C: colorPurple,
	l1.All: colorText,
}

// dbBand maps [FloorDB, l1TopDB] onto the plot height with 20 units of
// margin at the top and bottom.
func dbBand(s Surface) Band {
	scale := (s.Height - 40) / (l1TopDB - spectrum.FloorDB)
	return Band{Center: s.Height - 20 + spectrum.FloorDB*scale, Scale: scale}
}

func l1SpectrumPanel(st *session.State, s Surface) *Panel {
	p := panel("l1_spectrum")
	band := dbBand(s)
	for _, tr := range l1.Spectrum(st.L1.Service, st.L1.OffsetMHz, l1SpectrumPoints) {
		p.add(Trace(tr.Curve.Y, s, band, stroke(serviceColors[tr.Service], 2)))
		if st.L1.ShowDetails {
			p.add(text(s.Width-170, band.Y(tr.PeakDB)+12, fmt.Sprintf("%s %.0f dB", tr.Label, tr.PeakDB),
				Style{Color: serviceColors[tr.Service], Font: fontSmall}))
		}
	}
	p.add(line(s.Width/2, 0, s.Width/2, s.Height, dashed(colorAxis)),
		text(10, 20, fmt.Sprintf("L1 Spectrum @ %.2f MHz", l1.CenterMHz+st.L1.OffsetMHz), Style{}),
		text(0, s.Height-5, fmt.Sprintf("%+g MHz", st.L1.OffsetMHz-l1.SpanMHz/2), Style{Font: fontSmall}),
		text(s.Width-50, s.Height-5, fmt.Sprintf("%+g MHz", st.L1.OffsetMHz+l1.SpanMHz/2), Style{Font: fontSmall}))

	return p
}

// l1ConstellationPanel draws the symbol points; spread scales a ring drawn
// around each point to show residual noise.
func l1ConstellationPanel(st *session.State, s Surface, spread float64) *Panel {
	p := panel("l1_constellation")
	cx, cy := s.Width/2, s.Height/2
	radius := math.Min(s.Width, s.Height) * 0.35
	p.add(axes(cx, cy, s.Width, s.Height)...)
	for _, pt := range l1.Constellation(st.L1.Service) {
		x, y := cx+pt.I*radius, cy-pt.Q*radius
		color := serviceColors[pt.Service]
		p.add(circle(x, y, 5, Style{Color: color, Fill: true}))
		if spread > 0 {
			p.add(circle(x, y, 5+spread*radius*0.3, Style{Color: color, Width: 1, Alpha: 0.4}))
		}
		if st.L1.ShowDetails && pt.Label != "" {
			p.add(text(x+8, y-8, pt.Label, Style{Color: color, Font: fontSmall}))
		}
	}
	p.add(text(10, 20, "Constellation", Style{}))

	return p
}

func l1StructurePanel(st *session.State, s Surface) *Panel {
	p := panel("l1_structure")
	blocks := l1.Structure(st.L1.Service)
	x := (s.Width - blockWidth) / 2
	step := (s.Height - 40) / float64(len(blocks))
	for i, b := range blocks {
		y := 30 + float64(i)*step
		color := serviceColors[b.Service]
		p.add(rect(x, y, blockWidth, blockHeight, Style{Color: color, Width: 2}),
			text(x+8, y+19, b.Name, Style{Color: color}))
		if st.L1.ShowDetails && b.Rate != "" {
			p.add(text(x+blockWidth+8, y+19, b.Rate, Style{Font: fontSmall}))
		}
		if i > 0 {
			p.add(line(s.Width/2, y-step+blockHeight, s.Width/2, y, stroke(colorAxis, 1)))
		}
	}
	p.add(text(10, 20, "Signal Structure", Style{}))

	return p
}

// l1OrthogonalPanel draws the I and Q rails side by side with the content
// each service places on them.
func l1OrthogonalPanel(st *session.State, s Surface) *Panel {
	p := panel("l1_orthogonal")
	w, h := s.Width*0.4, s.Height*0.3
	y := s.Height * 0.2
	ch := l1.Orthogonal(st.L1.Service)
	rails := []struct {
		x     float64
		title string
		color string
		rail  l1.Channel
	}{
		{s.Width * 0.1, "I Channel (In-phase)", colorRed, ch.I},
		{s.Width * 0.55, "Q Channel (Quadrature)", colorBlue, ch.Q},
	}
	p.add(text(s.Width/2-140, 25, "GPS L1 Orthogonal Signal Components", Style{Font: fontBold}))
	for _, r := range rails {
		content := Style{Color: r.color}
		if r.rail.Empty() {
			content.Color = colorAxis
		}
		p.add(rect(r.x, y, w, h, Style{Color: r.color, Fill: true, Alpha: 0.1}),
			rect(r.x, y, w, h, stroke(r.color, 2)),
			text(r.x+8, y-10, r.title, Style{Color: r.color, Font: fontBold}),
			text(r.x+8, y+30, r.rail.Label, content))
	}
	if st.L1.ShowDetails {
		eqY := s.Height * 0.7
		p.add(text(20, eqY, "Signal Equations:", Style{}))
		for i, eq := range l1.Equations {
			p.add(text(20, eqY+float64(i+1)*20, eq, Style{}))
		}
	}

	return p
}

// l1DetailPanel is the structure diagram, or the I/Q rail layout when the
// orthogonal view is selected.
func l1DetailPanel(st *session.State, s Surface) *Panel {
	if st.L1.View == l1.ViewOrthogonal {
		return l1OrthogonalPanel(st, s)
	}

	return l1StructurePanel(st, s)
}

// L1 draws the multiplexed L1 spectrum, constellation and signal structure
// for st.L1. The orthogonal view replaces the structure panel with the I/Q
// rail layout.
func L1(st *session.State, s Surface) []Panel {
	s = s.orDefault()
	return []Panel{*l1SpectrumPanel(st, s), *l1ConstellationPanel(st, s, 0), *l1DetailPanel(st, s)}
}

// L1Frame draws one frame of the acquisition animation: a frequency scan
// line over the spectrum, constellation points tightening as noise falls,
// and the acquisition phase.
func L1Frame(st *session.State, s Surface, f animation.Frame) []Panel {
	s = s.orDefault()
	acq := l1.AcquisitionState(f.Progress)

	sp := l1SpectrumPanel(st, s)
	sx := acq.Progress * s.Width
	sp.add(line(sx, 0, sx, s.Height, stroke(colorAmber, 2)))

	cp := l1ConstellationPanel(st, s, acq.NoiseLevel)

	ap := l1DetailPanel(st, s)
	color := colorRed
	if acq.Locked {
		color = colorGreen
	}
	ap.add(text(s.Width-160, 20, acq.Phase, Style{Color: color, Font: fontBold}),
		rect(s.Width-160, 30, 150*acq.Progress, 8, Style{Color: color, Fill: true}),
		rect(s.Width-160, 30, 150, 8, stroke(colorText, 1)))

	return []Panel{*sp, *cp, *ap}
}
