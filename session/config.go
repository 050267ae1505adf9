package session

import (
	"fmt"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// bocRates captures whether the file spelled out BOC rates. Omitted rates
// come from the standard of the configured kind.
type bocRates struct {
	BOC struct {
		SubcarrierMHz *float64 `yaml:"subcarrier_mhz"`
		ChipRateMcps  *float64 `yaml:"chip_rate_mcps"`
	} `yaml:"boc"`
}

// LoadConfig reads a YAML state file. Settings missing from the file keep
// their DefaultState values. logger may be nil.
func LoadConfig(path string, logger *log.Logger) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}

	return ParseConfig(data, logger)
}

// ParseConfig decodes YAML state from data. See LoadConfig.
func ParseConfig(data []byte, logger *log.Logger) (*State, error) {
	s := DefaultState()
	s.Logger = logger
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	var rates bocRates
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	s.Normalize()
	s.ResetBOC()
	if v := rates.BOC.SubcarrierMHz; v != nil {
		s.BOC.SubcarrierMHz = *v
	}
	if v := rates.BOC.ChipRateMcps; v != nil {
		s.BOC.ChipRateMcps = *v
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.RegenerateCode(nil)

	return s, nil
}

// Validate rejects NaN, infinite and negative numeric settings, and
// non-positive rates where a rate divides.
func (s *State) Validate() error {
	checks := []struct {
		name     string
		v        float64
		positive bool
	}{
		{"ranging.length", float64(s.Ranging.Length), false},
		{"ranging.chip_rate_mcps", s.Ranging.ChipRateMcps, true},
		{"carrier.carrier_mhz", s.Carrier.CarrierMHz, false},
		{"carrier.data_rate", s.Carrier.DataRate, true},
		{"carrier.snr_db", math.Abs(s.Carrier.SNRdB), false},
		{"boc.subcarrier_mhz", s.BOC.SubcarrierMHz, true},
		{"boc.chip_rate_mcps", s.BOC.ChipRateMcps, true},
		{"l1.offset_mhz", math.Abs(s.L1.OffsetMHz), false},
		{"playground.carrier_mhz", s.Playground.CarrierMHz, false},
		{"playground.data_rate", s.Playground.DataRate, false},
		{"playground.chip_rate", s.Playground.ChipRate, false},
		{"playground.noise_level", s.Playground.NoiseLevel, false},
	}
	for _, c := range checks {
		switch {
		case math.IsNaN(c.v) || math.IsInf(c.v, 0):
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, c.name)
		case c.v < 0:
			return fmt.Errorf("%w: %s=%g is negative", ErrInvalidConfig, c.name, c.v)
		case c.positive && c.v == 0:
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, c.name)
		}
	}

	return nil
}
