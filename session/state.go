package session

import (
	"log"
	"math/rand/v2"

	"github.com/katalvlaran/gnssviz/animation"
	"github.com/katalvlaran/gnssviz/boc"
	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/combined"
	"github.com/katalvlaran/gnssviz/l1"
	"github.com/katalvlaran/gnssviz/modulation"
	"github.com/katalvlaran/gnssviz/playground"
)

// Tab identifies one interactive view.
type Tab string

const (
	TabRanging    Tab = "ranging"
	TabCarrier    Tab = "carrier"
	TabBOC        Tab = "boc"
	TabCombined   Tab = "combined"
	TabL1         Tab = "l1multiplexing"
	TabPlayground Tab = "playground"
)

// DefaultTab is shown first and replaces unknown tab names.
const DefaultTab = TabRanging

// ParseTab maps a name onto a Tab.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabRanging, TabCarrier, TabBOC, TabCombined, TabL1, TabPlayground:
		return Tab(s), true
	default:
		return DefaultTab, false
	}
}

// Ranging configures the ranging-code view.
type Ranging struct {
	Kind         chips.Kind `yaml:"kind"`
	Length       int        `yaml:"length"`
	ChipRateMcps float64    `yaml:"chip_rate_mcps"`
	PRN          int        `yaml:"prn"`
}

// Combined configures the signal-combination view.
type Combined struct {
	Signal string        `yaml:"signal"`
	View   combined.View `yaml:"view"`
}

// L1 configures the L1 multiplexing view.
type L1 struct {
	Service     l1.Service `yaml:"service"`
	View        l1.View    `yaml:"view"`
	OffsetMHz   float64    `yaml:"offset_mhz"`
	ShowDetails bool       `yaml:"show_details"`
}

// State is the complete view state. The zero value is not useful; start
// from DefaultState.
type State struct {
	Tab        Tab               `yaml:"tab"`
	Ranging    Ranging           `yaml:"ranging"`
	Carrier    modulation.Params `yaml:"carrier"`
	BOC        boc.Params        `yaml:"boc"`
	Combined   Combined          `yaml:"combined"`
	L1         L1                `yaml:"l1"`
	Playground playground.Params `yaml:"playground"`

	// Code is the last generated ranging code.
	Code chips.Sequence `yaml:"-"`

	// Logger receives fallback notices. Nil disables logging.
	Logger *log.Logger `yaml:"-"`

	appliedBOC boc.Kind
}

// Defaults of the ranging and combined views.
const (
	DefaultCodeLength   = 31
	DefaultChipRateMcps = 1.023
	DefaultSignal       = "gps_l1"
)

// DefaultState returns every tab at its reset values with a freshly
// generated default code. The BOC standard of the default kind counts as
// applied.
func DefaultState() *State {
	s := &State{
		Tab: DefaultTab,
		Ranging: Ranging{
			Kind:         chips.DefaultKind,
			Length:       DefaultCodeLength,
			ChipRateMcps: DefaultChipRateMcps,
			PRN:          chips.DefaultPRN,
		},
		Carrier:    modulation.DefaultParams(),
		BOC:        boc.DefaultParams(),
		Combined:   Combined{Signal: DefaultSignal, View: combined.DefaultView},
		L1:         L1{Service: l1.DefaultService, View: l1.DefaultView, ShowDetails: true},
		Playground: playground.DefaultParams(),
	}
	s.appliedBOC = s.BOC.Kind
	s.RegenerateCode(nil)

	return s
}

func (s *State) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// SetBOCKind selects kind. The standard subcarrier and chip rate are loaded
// only when kind differs from the last applied kind, so manual rate edits
// survive repeated updates of the same kind. It reports whether the
// standard was applied.
func (s *State) SetBOCKind(kind boc.Kind) bool {
	kind = s.bocKind(kind)
	s.BOC.Kind = kind
	if kind == s.appliedBOC {
		return false
	}
	s.applyBOCStandard()

	return true
}

// ResetBOC re-applies the standard parameters of the current kind.
func (s *State) ResetBOC() {
	s.BOC.Kind = s.bocKind(s.BOC.Kind)
	s.applyBOCStandard()
}

func (s *State) applyBOCStandard() {
	std := boc.StandardFor(s.BOC.Kind)
	s.BOC.SubcarrierMHz = std.SubcarrierMHz
	s.BOC.ChipRateMcps = std.ChipRateMcps
	s.appliedBOC = s.BOC.Kind
}

func (s *State) bocKind(kind boc.Kind) boc.Kind {
	k, ok := boc.ParseKind(string(kind))
	if !ok {
		s.logf("session: unknown BOC kind %q, using %s", kind, k)
	}

	return k
}

// RegenerateCode draws a new ranging code from the current ranging settings
// and stores it in Code. r drives the random "gold" kind; nil uses the
// global source.
func (s *State) RegenerateCode(r *rand.Rand) chips.Sequence {
	s.Code = chips.Generate(s.Ranging.Kind, s.Ranging.Length,
		chips.WithPRN(s.Ranging.PRN), chips.WithRand(r))

	return s.Code
}

// SwitchTab shows tab and cancels any animation p is running. p may be nil.
func (s *State) SwitchTab(tab Tab, p *animation.Player) {
	if p != nil {
		p.Stop()
	}
	t, ok := ParseTab(string(tab))
	if !ok {
		s.logf("session: unknown tab %q, using %s", tab, t)
	}
	s.Tab = t
}

// ResetPlayground restores the playground defaults.
func (s *State) ResetPlayground() {
	s.Playground = playground.DefaultParams()
}

// Normalize replaces every unknown enumerated value with its default.
func (s *State) Normalize() {
	s.Tab = fallback(s, "tab", s.Tab, ParseTab)
	s.Ranging.Kind = fallback(s, "code kind", s.Ranging.Kind, chips.ParseKind)
	s.Carrier.Kind = fallback(s, "modulation", s.Carrier.Kind, modulation.ParseKind)
	s.BOC.Kind = s.bocKind(s.BOC.Kind)
	s.BOC.Phase = fallback(s, "BOC phase", s.BOC.Phase, boc.ParsePhase)
	s.Combined.View = fallback(s, "component view", s.Combined.View, combined.ParseView)
	s.L1.Service = fallback(s, "L1 service", s.L1.Service, l1.ParseService)
	s.L1.View = fallback(s, "L1 view", s.L1.View, l1.ParseView)
	pg := &s.Playground
	pg.Mode = fallback(s, "playground mode", pg.Mode, playground.ParseMode)
	pg.Data = fallback(s, "data pattern", pg.Data, playground.ParseDataPattern)
	pg.Code = fallback(s, "code pattern", pg.Code, playground.ParseCodePattern)
	pg.Carrier = fallback(s, "carrier", pg.Carrier, playground.ParseCarrier)
}

func fallback[T ~string](s *State, what string, v T, parse func(string) (T, bool)) T {
	out, ok := parse(string(v))
	if !ok {
		s.logf("session: unknown %s %q, using %s", what, v, out)
	}

	return out
}
