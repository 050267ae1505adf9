package boc

// Kind enumerates the BOC variants.
type Kind string

const (
	BOC11     Kind = "boc_1_1"
	BOC61     Kind = "boc_6_1"
	BOC105    Kind = "boc_10_5"
	BOC152_5  Kind = "boc_15_2.5"
	MBOC      Kind = "mboc"
	AltBOC    Kind = "altboc"
	BOC11Sine Kind = "boc_1_1_sine"
	BOC21     Kind = "boc_2_1"
	BOC41     Kind = "boc_4_1"
)

// DefaultKind is used for unrecognized kinds.
const DefaultKind = BOC11

// Reference subcarriers used by MBOC and the playground presets.
const (
	Subcarrier11MHz = 1.023
	Subcarrier61MHz = 6.138
)

// Phase selects the subcarrier phasing.
type Phase string

const (
	Sine   Phase = "sine"
	Cosine Phase = "cosine"
)

// DefaultPhase is used for unrecognized phase names.
const DefaultPhase = Cosine

// Params is the BOC configuration record.
type Params struct {
	Kind          Kind    `yaml:"kind"`
	SubcarrierMHz float64 `yaml:"subcarrier_mhz"`
	ChipRateMcps  float64 `yaml:"chip_rate_mcps"`
	Phase         Phase   `yaml:"phase"`
}

// Standard describes the published parameters of one BOC kind.
type Standard struct {
	Kind          Kind
	SubcarrierMHz float64
	ChipRateMcps  float64
	Description   string
	Usage         string
}

// Params converts the standard row into a configuration record with phase.
func (s Standard) Params(phase Phase) Params {
	return Params{Kind: s.Kind, SubcarrierMHz: s.SubcarrierMHz, ChipRateMcps: s.ChipRateMcps, Phase: phase}
}

var standards = map[Kind]Standard{
	BOC11:     {BOC11, 1.023, 1.023, "Galileo E1 Open Service", "Used in Galileo E1 Open Service. Provides 1.023 MHz spectrum split."},
	BOC61:     {BOC61, 6.138, 1.023, "Galileo E1 Public Regulated Service", "Used in Galileo E1 PRS. Higher subcarrier frequency for better multipath resistance."},
	BOC105:    {BOC105, 10.23, 5.115, "GPS L1C", "Used in GPS L1C. Higher chip rate improves ranging accuracy."},
	BOC152_5:  {BOC152_5, 15.345, 2.5575, "Galileo E5a/E5b", "Used in Galileo E5a/E5b. Wideband signal with excellent performance."},
	MBOC:      {MBOC, 1.023, 1.023, "Multiplexed BOC", "Multiplexed BOC combining BOC(1,1) and BOC(6,1) for optimized performance."},
	BOC11Sine: {BOC11Sine, 1.023, 1.023, "BOC(1,1) Sine Phase", "Enhanced BOC configuration for improved signal performance."},
	BOC21:     {BOC21, 2.046, 1.023, "Enhanced Resolution BOC", "Enhanced BOC configuration for improved signal performance."},
	BOC41:     {BOC41, 4.092, 1.023, "High Precision BOC", "Enhanced BOC configuration for improved signal performance."},
	AltBOC:    {AltBOC, 15.345, 10.23, "Galileo E5 AltBOC", "Alternative BOC used in Galileo E5. Complex subcarrier modulation."},
}

// Kinds lists every BOC kind in display order.
func Kinds() []Kind {
	return []Kind{BOC11, BOC61, BOC105, BOC152_5, MBOC, AltBOC, BOC11Sine, BOC21, BOC41}
}

// ParseKind maps a name to a Kind, falling back to DefaultKind.
func ParseKind(s string) (Kind, bool) {
	if _, ok := standards[Kind(s)]; ok {
		return Kind(s), true
	}

	return DefaultKind, false
}

// ParsePhase maps a name to a Phase, falling back to DefaultPhase.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case Sine, Cosine:
		return Phase(s), true
	default:
		return DefaultPhase, false
	}
}

// StandardFor returns the standard row for kind, or the boc_1_1 row for
// unknown kinds (keeping the caller's kind out of the result).
func StandardFor(kind Kind) Standard {
	if s, ok := standards[kind]; ok {
		return s
	}

	return standards[DefaultKind]
}

// DefaultParams returns the standard boc_1_1 configuration in cosine phase.
func DefaultParams() Params {
	return StandardFor(DefaultKind).Params(DefaultPhase)
}
