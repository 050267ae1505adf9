package playground

import "math/rand/v2"

// DataPattern selects the data bit source.
type DataPattern string

const (
	DataBinary      DataPattern = "binary"
	DataAlternating DataPattern = "alternating"
	DataPRBS        DataPattern = "prbs"
	DataCustom      DataPattern = "custom"
)

// CodePattern selects the spreading code.
type CodePattern string

const (
	CodeNone   CodePattern = "none"
	CodeWalsh  CodePattern = "walsh"
	CodeGold   CodePattern = "gold"
	CodeCA     CodePattern = "ca"
	CodeCustom CodePattern = "custom"
)

// CarrierKind selects the carrier modulation.
type CarrierKind string

const (
	CarrierBPSK  CarrierKind = "bpsk"
	CarrierQPSK  CarrierKind = "qpsk"
	CarrierBOC11 CarrierKind = "boc11"
	CarrierBOC61 CarrierKind = "boc61"
)

// Mode selects which set of annotations a presentation layer shows.
type Mode string

const (
	ModeBasic       Mode = "basic"
	ModeAdvanced    Mode = "advanced"
	ModeComparison  Mode = "comparison"
	ModeInteractive Mode = "interactive"
)

// Defaults for unrecognized names.
const (
	DefaultDataPattern = DataBinary
	DefaultCodePattern = CodeNone
	DefaultCarrier     = CarrierBPSK
	DefaultMode        = ModeBasic
	DefaultCustomData  = "10110100"
)

// ParseDataPattern maps a name onto a DataPattern.
func ParseDataPattern(s string) (DataPattern, bool) {
	switch DataPattern(s) {
	case DataBinary, DataAlternating, DataPRBS, DataCustom:
		return DataPattern(s), true
	default:
		return DefaultDataPattern, false
	}
}

// ParseCodePattern maps a name onto a CodePattern.
func ParseCodePattern(s string) (CodePattern, bool) {
	switch CodePattern(s) {
	case CodeNone, CodeWalsh, CodeGold, CodeCA, CodeCustom:
		return CodePattern(s), true
	default:
		return DefaultCodePattern, false
	}
}

// ParseCarrier maps a name onto a CarrierKind.
func ParseCarrier(s string) (CarrierKind, bool) {
	switch CarrierKind(s) {
	case CarrierBPSK, CarrierQPSK, CarrierBOC11, CarrierBOC61:
		return CarrierKind(s), true
	default:
		return DefaultCarrier, false
	}
}

// ParseMode maps a name onto a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeBasic, ModeAdvanced, ModeComparison, ModeInteractive:
		return Mode(s), true
	default:
		return DefaultMode, false
	}
}

// Params is the playground configuration record.
type Params struct {
	Mode       Mode        `yaml:"mode"`
	Data       DataPattern `yaml:"data_pattern"`
	CustomData string      `yaml:"custom_data"`
	Code       CodePattern `yaml:"code_pattern"`
	Carrier    CarrierKind `yaml:"carrier"`
	CarrierMHz float64     `yaml:"carrier_mhz"`
	DataRate   float64     `yaml:"data_rate"`   // bps
	ChipRate   float64     `yaml:"chip_rate"`   // chips/s
	NoiseLevel float64     `yaml:"noise_level"` // peak uniform noise amplitude
}

// DefaultParams returns the reset state: binary data, no spreading, BPSK at
// 5 MHz, 10 bps, 31 chips/s and 10 % noise.
func DefaultParams() Params {
	return Params{
		Mode:       DefaultMode,
		Data:       DefaultDataPattern,
		CustomData: DefaultCustomData,
		Code:       DefaultCodePattern,
		Carrier:    DefaultCarrier,
		CarrierMHz: 5,
		DataRate:   10,
		ChipRate:   31,
		NoiseLevel: 0.1,
	}
}

// Options configures Build.
type Options struct {
	// Rand drives the "gold" code and the noise. Nil uses the global source.
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithRand injects a random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
