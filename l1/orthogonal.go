package l1

// View selects what the L1 tab shows.
type View string

const (
	ViewSpectrum      View = "spectrum"
	ViewConstellation View = "constellation"
	ViewStructure     View = "structure"
	ViewOrthogonal    View = "orthogonal"
)

// DefaultView replaces unknown view names.
const DefaultView = ViewSpectrum

// ParseView maps a name onto a View, falling back to DefaultView.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewSpectrum, ViewConstellation, ViewStructure, ViewOrthogonal:
		return View(s), true
	default:
		return DefaultView, false
	}
}

// Channel is the content carried on one quadrature rail. Services is empty
// for an unused rail.
type Channel struct {
	Label    string
	Services []Service
}

// Empty reports whether nothing is modulated on the rail.
func (c Channel) Empty() bool { return len(c.Services) == 0 }

// Channels holds the in-phase and quadrature rails of a service.
type Channels struct {
	I, Q Channel
}

var emptyRail = Channel{Label: "(Empty)"}

// Orthogonal returns the I/Q rail assignment of svc. Unknown services are
// treated as All.
func Orthogonal(svc Service) Channels {
	switch svc {
	case CA:
		return Channels{I: Channel{Label: "C/A Code + Nav Data", Services: []Service{CA}}, Q: emptyRail}
	case PY:
		return Channels{
			I: Channel{Label: "P Code + Nav Data", Services: []Service{PY}},
			Q: Channel{Label: "Y Code (Encrypted)", Services: []Service{PY}},
		}
	case M:
		return Channels{I: emptyRail, Q: Channel{Label: "M Code", Services: []Service{M}}}
	case L1C:
		return Channels{
			I: Channel{Label: "L1C Data Channel", Services: []Service{L1C}},
			Q: Channel{Label: "L1C Pilot Channel", Services: []Service{L1C}},
		}
	default:
		return Channels{
			I: Channel{Label: "C/A + P + L1C Data", Services: []Service{CA, PY, L1C}},
			Q: Channel{Label: "Y + M + L1C Pilot", Services: []Service{PY, M, L1C}},
		}
	}
}

// Equations are the composite signal relations shown with the orthogonal
// view details.
var Equations = []string{
	"I(t) = ΣAᵢ × Dᵢ(t) × Cᵢ(t)",
	"Q(t) = ΣAⱼ × Dⱼ(t) × Cⱼ(t)",
	"s(t) = I(t)cos(ωt) + Q(t)sin(ωt)",
}
