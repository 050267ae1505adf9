package render

import (
	"fmt"

	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/correlate"
	"github.com/katalvlaran/gnssviz/session"
)

const codeDisplayChips = 50

// VisibleChips returns how many chips the code plot shows: 200 up to
// 1 Mcps, 100 up to 5 Mcps and 50 above, never more than length.
func VisibleChips(chipRateMcps float64, length int) int {
	limit := 50
	switch {
	case chipRateMcps <= 1:
		limit = 200
	case chipRateMcps <= 5:
		limit = 100
	}

	return max(min(limit, length), 0)
}

// RangingCode draws the chip waveform, its autocorrelation and the code
// summary of st.Code.
func RangingCode(st *session.State, s Surface) []Panel {
	s = s.orDefault()
	code := st.Code
	rate := st.Ranging.ChipRateMcps

	// chip waveform
	cp := panel("code")
	cp.add(grid(s, 10, 4)...)
	visible := VisibleChips(rate, len(code))
	band := Band{Center: s.Height / 2, Scale: s.Height / 4}
	if visible > 0 {
		cw := s.Width / float64(visible)
		pts := make([]Point, 0, 2*visible)
		for i, c := range code[:visible] {
			y := band.Y(float64(c))
			pts = append(pts, Point{X: float64(i) * cw, Y: y}, Point{X: float64(i+1) * cw, Y: y})
		}
		cp.add(Command{Op: OpPolyline, Points: pts, Style: stroke(colorBlue, 2)})
	}
	tm := chips.TimingFor(1, rate)
	cp.add(
		text(10, 20, "Chip Value", Style{}),
		text(10, s.Height/4+5, "+1", Style{}),
		text(10, 3*s.Height/4+5, "-1", Style{}),
		text(10, s.Height-40, fmt.Sprintf("Chip Rate: %g Mcps", rate), Style{}),
		text(10, s.Height-25, fmt.Sprintf("Chip Duration: %.1f ns", tm.ChipNs), Style{}),
		text(10, s.Height-10, fmt.Sprintf("Display Time: %.1f μs (%d chips)", float64(visible)*tm.ChipNs/1e3, visible), Style{}),
	)

	// autocorrelation
	ap := panel("autocorrelation")
	ap.add(grid(s, 10, 4)...)
	profile := correlate.Autocorrelate(code.Float64s())
	norm := maxAbs(profile)
	ap.add(Trace(profile, s, Band{Center: s.Height / 2, Scale: s.Height / 2 / norm}, stroke(colorRed, 2)))
	if idx, val := correlate.Peak(profile); idx >= 0 {
		ap.add(text(float64(idx)/float64(len(profile))*s.Width+5, s.Height/2-val/norm*s.Height/2+15,
			fmt.Sprintf("Peak: %.2f", val), Style{Color: colorRed}))
	}
	ap.add(text(10, 20, "Autocorrelation", Style{}))

	// summary
	ip := &Panel{Name: "code_info"}
	ct := chips.TimingFor(len(code), rate)
	ip.add(
		text(0, 12, fmt.Sprintf("Code (%d chips): %s", len(code), code.Bits(codeDisplayChips)), Style{}),
		text(0, 28, fmt.Sprintf("Code Period: %.3f ms (%.1f Hz repetition)", ct.PeriodMs, ct.RepetitionHz), Style{}),
		text(0, 44, fmt.Sprintf("Chip Rate: %g Mcps, Chip Duration: %.1f ns", rate, tm.ChipNs), Style{}),
	)

	return []Panel{*cp, *ap, *ip}
}
