package render

// Surface is the drawing area size in device-independent units.
type Surface struct {
	Width, Height float64
}

// DefaultSurface is used when a host reports an empty surface.
var DefaultSurface = Surface{Width: 600, Height: 300}

// orDefault replaces a degenerate surface with DefaultSurface.
func (s Surface) orDefault() Surface {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSurface
	}

	return s
}

// Op is a drawing primitive.
type Op string

const (
	OpClear    Op = "clear"
	OpPolyline Op = "polyline"
	OpPoints   Op = "points"
	OpRect     Op = "rect"
	OpCircle   Op = "circle"
	OpText     Op = "text"
)

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// Style carries the stroke and fill attributes of a command.
type Style struct {
	Color string
	Width float64   // stroke width, or point radius for OpPoints
	Dash  []float64 // nil for solid lines
	Fill  bool
	Alpha float64 // 0 means opaque
	Font  string
}

// Command is one drawing instruction. Which fields matter depends on Op:
//
//	OpClear     Style.Color
//	OpPolyline  Points
//	OpPoints    Points (each drawn as a dot of radius Style.Width)
//	OpRect      X, Y, W, H
//	OpCircle    X, Y, R
//	OpText      X, Y, Text
type Command struct {
	Op     Op
	Points []Point
	X, Y   float64
	W, H   float64
	R      float64
	Text   string
	Style  Style
}

// Panel is the command list of one drawing area.
type Panel struct {
	Name     string
	Commands []Command
}

// Band maps a value v onto y = Center − v·Scale.
type Band struct {
	Center float64
	Scale  float64
}

// Y returns the surface y coordinate of v.
func (b Band) Y(v float64) float64 {
	return b.Center - v*b.Scale
}

// Palette.
const (
	colorBackground = "#ffffff"
	colorGrid       = "#e0e0e0"
	colorAxis       = "#666666"
	colorText       = "#333333"
	colorBlue       = "#2563eb"
	colorRed        = "#dc2626"
	colorGreen      = "#059669"
	colorPurple     = "#7c3aed"
	colorAmber      = "#f59e0b"

	fontLabel = "12px Arial"
	fontSmall = "10px Arial"
	fontBold  = "bold 14px Arial"
)
