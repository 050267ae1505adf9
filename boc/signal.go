package boc

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gnssviz/chips"
)

const (
	mbocMainWeight = 0.75
	mbocHighWeight = 0.25

	minPeriods = 2
	maxPeriods = 8
)

// sign mirrors a three-valued signum: −1, 0 or +1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// square returns sign(sin) or sign(cos) of 2π·f·t.
func square(freqMHz float64, phase Phase, tMicros float64) float64 {
	arg := 2 * math.Pi * freqMHz * tMicros
	if phase == Sine {
		return sign(math.Sin(arg))
	}

	return sign(math.Cos(arg))
}

// AltBOCSubcarrier returns the two-rail AltBOC subcarrier
// sign(cos) + j·sign(sin) at tMicros.
func AltBOCSubcarrier(freqMHz, tMicros float64) complex128 {
	arg := 2 * math.Pi * freqMHz * tMicros
	return complex(sign(math.Cos(arg)), sign(math.Sin(arg)))
}

// Subcarrier evaluates the subcarrier of kind at tMicros.
//
//   - mboc:          0.75·sign(sin 2π·1.023t) + 0.25·sign(sin 2π·6.138t)
//   - altboc:        real rail of AltBOCSubcarrier
//   - boc_1_1_sine:  sign(sin 2πft) regardless of phase
//   - others:        sign(sin) or sign(cos) per phase
func Subcarrier(kind Kind, freqMHz float64, phase Phase, tMicros float64) float64 {
	switch kind {
	case MBOC:
		return mbocMainWeight*square(Subcarrier11MHz, Sine, tMicros) +
			mbocHighWeight*square(Subcarrier61MHz, Sine, tMicros)
	case AltBOC:
		return real(AltBOCSubcarrier(freqMHz, tMicros))
	case BOC11Sine:
		return square(freqMHz, Sine, tMicros)
	default:
		return square(freqMHz, phase, tMicros)
	}
}

// ChipAt returns code[⌊t·chipRate⌋ mod len(code)], or 0 for an empty code or
// a non-positive chip rate.
func ChipAt(code chips.Sequence, chipRateMcps, tMicros float64) float64 {
	if len(code) == 0 || chipRateMcps <= 0 {
		return 0
	}
	idx := int(math.Floor(tMicros*chipRateMcps)) % len(code)
	if idx < 0 {
		idx += len(code)
	}

	return float64(code[idx])
}

// Product evaluates chip(t)·subcarrier(t) for p.
func Product(code chips.Sequence, p Params, tMicros float64) float64 {
	return ChipAt(code, p.ChipRateMcps, tMicros) * Subcarrier(p.Kind, p.SubcarrierMHz, p.Phase, tMicros)
}

// Series is a sampled waveform with its time axis in microseconds.
type Series struct {
	Time   []float64
	Values []float64
}

// SubcarrierWaveform samples n points of the subcarrier over an adaptive
// window of clamp(f, 2, 8) subcarrier periods.
func SubcarrierWaveform(p Params, n int) Series {
	if n <= 0 || p.SubcarrierMHz <= 0 {
		return Series{Time: []float64{}, Values: []float64{}}
	}
	periods := math.Max(minPeriods, math.Min(maxPeriods, p.SubcarrierMHz))
	span := periods / p.SubcarrierMHz

	s := Series{Time: make([]float64, n), Values: make([]float64, n)}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) * span
		s.Time[i] = t
		s.Values[i] = Subcarrier(p.Kind, p.SubcarrierMHz, p.Phase, t)
	}

	return s
}

// ProductWaveform samples the BOC product over one period of code with
// samplesPerChip points per chip.
func ProductWaveform(p Params, code chips.Sequence, samplesPerChip int) Series {
	if samplesPerChip <= 0 || len(code) == 0 || p.ChipRateMcps <= 0 {
		return Series{Time: []float64{}, Values: []float64{}}
	}
	total := len(code) * samplesPerChip
	tc := 1 / p.ChipRateMcps

	s := Series{Time: make([]float64, total), Values: make([]float64, total)}
	for i := 0; i < total; i++ {
		t := float64(i) * tc / float64(samplesPerChip)
		s.Time[i] = t
		chip := float64(code[i/samplesPerChip])
		s.Values[i] = chip * Subcarrier(p.Kind, p.SubcarrierMHz, p.Phase, t)
	}

	return s
}

// Modified reports whether current deviates from the standard parameters of
// its kind.
func Modified(current Params) bool {
	std := StandardFor(current.Kind)
	return current.SubcarrierMHz != std.SubcarrierMHz || current.ChipRateMcps != std.ChipRateMcps
}

// Describe renders the information panel text for current.
func Describe(current Params) string {
	std := StandardFor(current.Kind)
	title := strings.ReplaceAll(strings.ToUpper(string(current.Kind)), "_", "(")

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", title, std.Description)
	fmt.Fprintf(&b, "Current: %g MHz subcarrier, %g Mcps chip rate\n", current.SubcarrierMHz, current.ChipRateMcps)
	fmt.Fprintf(&b, "Standard: %g MHz subcarrier, %g Mcps chip rate\n", std.SubcarrierMHz, std.ChipRateMcps)
	b.WriteString(std.Usage)
	if Modified(current) {
		b.WriteString("\n\nNote: You've modified the standard parameters. Use sliders to experiment!")
	}

	return b.String()
}
