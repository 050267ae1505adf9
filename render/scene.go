package render

import (
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/animation"
	"github.com/katalvlaran/gnssviz/session"
)

// Scene draws the static view of st.Tab. Unknown tabs draw the ranging
// view.
func Scene(st *session.State, s Surface, r *rand.Rand) []Panel {
	switch st.Tab {
	case session.TabCarrier:
		return Carrier(st, s, r)
	case session.TabBOC:
		return BOC(st, s)
	case session.TabCombined:
		return Combined(st, s, r)
	case session.TabL1:
		return L1(st, s)
	case session.TabPlayground:
		return Playground(st, s, r)
	default:
		return RangingCode(st, s)
	}
}

// SceneFrame draws one animation frame of st.Tab. Tabs without an
// animation draw their static view.
func SceneFrame(st *session.State, s Surface, f animation.Frame, r *rand.Rand) []Panel {
	switch st.Tab {
	case session.TabCombined:
		return CombinedFrame(st, s, f, r)
	case session.TabL1:
		return L1Frame(st, s, f)
	case session.TabPlayground:
		return PlaygroundFrame(st, s, f, r)
	default:
		return Scene(st, s, r)
	}
}

// Animation returns the frame sequence of tab and whether it has one.
func Animation(tab session.Tab) (animation.Sequence, bool) {
	switch tab {
	case session.TabCombined:
		return animation.SignalPropagation, true
	case session.TabL1:
		return animation.L1Acquisition, true
	case session.TabPlayground:
		return animation.Playground, true
	default:
		return animation.Sequence{}, false
	}
}
