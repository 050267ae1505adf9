package render

// panel starts a Panel with a cleared background.
func panel(name string) *Panel {
	return &Panel{Name: name, Commands: []Command{{Op: OpClear, Style: Style{Color: colorBackground}}}}
}

func (p *Panel) add(cmds ...Command) {
	p.Commands = append(p.Commands, cmds...)
}

// Trace maps values onto a polyline spanning the surface width: sample i is
// drawn at x = i/len·Width and y = band.Y(v). An empty series yields a
// polyline without points.
func Trace(values []float64, s Surface, band Band, style Style) Command {
	s = s.orDefault()
	return traceOver(values, len(values), s.Width, 0, band, style)
}

// traceOver draws values at x = offset + i/n·width, so a prefix of a longer
// series keeps its horizontal position.
func traceOver(values []float64, n int, width, offset float64, band Band, style Style) Command {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{X: offset + float64(i)/float64(n)*width, Y: band.Y(v)}
	}

	return Command{Op: OpPolyline, Points: pts, Style: style}
}

func line(x0, y0, x1, y1 float64, style Style) Command {
	return Command{Op: OpPolyline, Points: []Point{{x0, y0}, {x1, y1}}, Style: style}
}

func text(x, y float64, s string, style Style) Command {
	if style.Color == "" {
		style.Color = colorText
	}
	if style.Font == "" {
		style.Font = fontLabel
	}

	return Command{Op: OpText, X: x, Y: y, Text: s, Style: style}
}

func rect(x, y, w, h float64, style Style) Command {
	return Command{Op: OpRect, X: x, Y: y, W: w, H: h, Style: style}
}

func circle(x, y, r float64, style Style) Command {
	return Command{Op: OpCircle, X: x, Y: y, R: r, Style: style}
}

func stroke(color string, width float64) Style {
	return Style{Color: color, Width: width}
}

func dashed(color string) Style {
	return Style{Color: color, Width: 1, Dash: []float64{3, 3}}
}

// grid draws cols+1 vertical and rows+1 horizontal lines.
func grid(s Surface, cols, rows int) []Command {
	st := stroke(colorGrid, 0.5)
	out := make([]Command, 0, cols+rows+2)
	for i := 0; i <= cols; i++ {
		x := float64(i) / float64(cols) * s.Width
		out = append(out, line(x, 0, x, s.Height, st))
	}
	for i := 0; i <= rows; i++ {
		y := float64(i) / float64(rows) * s.Height
		out = append(out, line(0, y, s.Width, y, st))
	}

	return out
}

// axes draws the centre cross of a constellation plot.
func axes(cx, cy, w, h float64) []Command {
	st := stroke(colorAxis, 1)
	return []Command{
		line(cx, cy-h/2, cx, cy+h/2, st),
		line(cx-w/2, cy, cx+w/2, cy, st),
	}
}

// maxAbs returns the largest magnitude in v, or 1 when v is all zeros.
func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		m = max(m, x)
	}
	if m == 0 {
		return 1
	}

	return m
}
