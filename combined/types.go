package combined

// View selects which component rows Components returns.
type View string

const (
	ViewAll         View = "all"
	ViewDataOnly    View = "data_only"
	ViewCodeOnly    View = "code_only"
	ViewCarrierOnly View = "carrier_only"
)

// DefaultView is used for unrecognized names.
const DefaultView = ViewAll

// ParseView maps a name onto a View, falling back to DefaultView.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewAll, ViewDataOnly, ViewCodeOnly, ViewCarrierOnly:
		return View(s), true
	default:
		return DefaultView, false
	}
}

// Component names one row of the components view.
type Component string

const (
	Data    Component = "data"
	Code    Component = "code"
	Carrier Component = "carrier"
)

// Label returns the legend text of c.
func (c Component) Label() string {
	switch c {
	case Data:
		return "Navigation Data (50 bps)"
	case Code:
		return "Ranging Code (1.023 Mcps)"
	default:
		return "L1 Carrier (1575.42 MHz)"
	}
}

// Row is one sampled component. Progress is 1 for static rows; animated rows
// carry the fraction built so far and only that prefix of Samples.
type Row struct {
	Component Component
	Label     string
	Samples   []float64
	Progress  float64
}

// Scan is a correlation sweep over lags in [-1, 1) code periods.
type Scan struct {
	Lags      []float64
	Values    []float64
	PeakIndex int     // -1 when nothing rose above zero
	PeakValue float64 // 0 when PeakIndex is -1
	Threshold float64
	Detected  bool // PeakValue ≥ Threshold
}

// Transmission is one frame of the travelling-wave animation.
type Transmission struct {
	Progress     float64
	WavePosition float64 // leading edge, normalized time
	WaveWidth    float64
	Samples      []float64 // only samples behind the leading edge
}

// Reception is one frame of the fading-reception animation.
type Reception struct {
	Progress       float64
	SignalStrength float64
	NoiseLevel     float64
	PathLossDB     float64
	Samples        []float64
}

// ScanFrame is one frame of the acquisition-scan animation.
type ScanFrame struct {
	Scan
	ScanPosition float64 // lag index reached by the scan
	Visible      int     // number of leading values revealed
	PeakFound    bool    // a revealed main-peak value exceeded 0.8
}
