package l1

import (
	"math"

	"github.com/katalvlaran/gnssviz/spectrum"
)

// CenterMHz is the L1 carrier frequency.
const CenterMHz = 1575.42

// SpanMHz is the width of the spectrum window around the carrier.
const SpanMHz = 40.0

// Service identifies an L1 signal component.
type Service string

const (
	CA  Service = "ca"
	PY  Service = "py"
	M   Service = "m"
	L1C Service = "l1c"
	All Service = "all"
)

// DefaultService is used for unrecognized names.
const DefaultService = All

// Services lists the individual services (without All) in display order.
func Services() []Service {
	return []Service{CA, PY, M, L1C}
}

// ParseService maps a name to a Service, falling back to DefaultService.
func ParseService(s string) (Service, bool) {
	switch Service(s) {
	case CA, PY, M, L1C, All:
		return Service(s), true
	default:
		return DefaultService, false
	}
}

// Includes reports whether view shows svc.
func (view Service) Includes(svc Service) bool {
	return view == All || view == svc
}

// Label returns the legend text of a service.
func (s Service) Label() string {
	switch s {
	case CA:
		return "L1 C/A (1.023 MHz)"
	case PY:
		return "P(Y) Code (10.23 MHz)"
	case M:
		return "M Code (5.115 MHz)"
	case L1C:
		return "L1C (25.6 MHz)"
	default:
		return "L1 Combined"
	}
}

type psdModel struct {
	level float64 // dB at the main lobe
	width float64 // MHz between nulls
	slope float64 // dB per MHz roll-off
	split bool    // M-code split-spectrum lobe
}

var models = map[Service]psdModel{
	CA:  {level: -70, width: 1.023, slope: 0.5},
	PY:  {level: -65, width: 10.23, slope: 0.2},
	M:   {level: -68, width: 5.115, slope: 0.3, split: true},
	L1C: {level: -63, width: 25.6, slope: 0.1},
}

const mSplitMHz = 24.0

// ServicePSD returns the approximate PSD (dB) of svc at offsetMHz from the
// L1 carrier: level + 20·log10|sinc(f/w)·lobe| − slope·|f|. All and unknown
// services report the floor.
func ServicePSD(svc Service, offsetMHz float64) float64 {
	m, ok := models[svc]
	if !ok {
		return spectrum.FloorDB
	}
	a := spectrum.Sinc(offsetMHz / m.width)
	if m.split {
		a *= math.Cos(math.Pi * offsetMHz / mSplitMHz)
	}

	return spectrum.ClampDB(m.level + spectrum.AmplitudeDB(a) - m.slope*math.Abs(offsetMHz))
}

// Trace is the spectrum of one service.
type Trace struct {
	Service Service
	Label   string
	Curve   spectrum.Curve // X: offset from CenterMHz (MHz), Y: dB
	PeakDB  float64
}

// Spectrum samples n points of every service shown by view over the 40 MHz
// window centred on offsetMHz.
func Spectrum(view Service, offsetMHz float64, n int) []Trace {
	var out []Trace
	for _, svc := range Services() {
		if !view.Includes(svc) {
			continue
		}
		c := spectrum.Sweep(n, SpanMHz, offsetMHz, func(f float64) float64 {
			return ServicePSD(svc, f)
		})
		peak := spectrum.FloorDB
		for _, v := range c.Y {
			peak = math.Max(peak, v)
		}
		out = append(out, Trace{Service: svc, Label: svc.Label(), Curve: c, PeakDB: peak})
	}

	return out
}
