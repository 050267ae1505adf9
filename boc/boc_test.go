package boc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnssviz/boc"
	"github.com/katalvlaran/gnssviz/chips"
)

// TestStandardFor_Table checks the published parameter pairs.
func TestStandardFor_Table(t *testing.T) {
	cases := []struct {
		kind     boc.Kind
		sub, chp float64
	}{
		{boc.BOC11, 1.023, 1.023},
		{boc.BOC61, 6.138, 1.023},
		{boc.BOC105, 10.23, 5.115},
		{boc.BOC152_5, 15.345, 2.5575},
		{boc.MBOC, 1.023, 1.023},
		{boc.AltBOC, 15.345, 10.23},
		{boc.BOC11Sine, 1.023, 1.023},
		{boc.BOC21, 2.046, 1.023},
		{boc.BOC41, 4.092, 1.023},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			s := boc.StandardFor(tc.kind)
			assert.Equal(t, tc.kind, s.Kind)
			assert.Equal(t, tc.sub, s.SubcarrierMHz)
			assert.Equal(t, tc.chp, s.ChipRateMcps)
			assert.NotEmpty(t, s.Description)
		})
	}
	assert.Len(t, boc.Kinds(), len(cases))
}

// TestStandardFor_Fallback verifies unknown kinds map onto boc_1_1.
func TestStandardFor_Fallback(t *testing.T) {
	s := boc.StandardFor("boc_99_1")
	assert.Equal(t, boc.BOC11, s.Kind)
	assert.Equal(t, 1.023, s.SubcarrierMHz)
	assert.Equal(t, 1.023, s.ChipRateMcps)

	k, ok := boc.ParseKind("nope")
	assert.False(t, ok)
	assert.Equal(t, boc.BOC11, k)

	ph, ok := boc.ParsePhase("triangle")
	assert.False(t, ok)
	assert.Equal(t, boc.Cosine, ph)
}

// TestSubcarrier_Values samples quarter periods of a 1 MHz subcarrier.
func TestSubcarrier_Values(t *testing.T) {
	// t = 0.125 µs ⇒ 45°: sin>0, cos>0; t = 0.375 µs ⇒ 135°: sin>0, cos<0.
	assert.Equal(t, 1.0, boc.Subcarrier(boc.BOC11, 1, boc.Sine, 0.125))
	assert.Equal(t, 1.0, boc.Subcarrier(boc.BOC11, 1, boc.Sine, 0.375))
	assert.Equal(t, -1.0, boc.Subcarrier(boc.BOC11, 1, boc.Cosine, 0.375))
	assert.Equal(t, -1.0, boc.Subcarrier(boc.BOC11, 1, boc.Sine, 0.625))
	assert.Equal(t, 0.0, boc.Subcarrier(boc.BOC11, 1, boc.Sine, 0), "sign(0) is 0")

	// boc_1_1_sine ignores the phase selector.
	assert.Equal(t, 1.0, boc.Subcarrier(boc.BOC11Sine, 1, boc.Cosine, 0.375))
}

// TestSubcarrier_MBOC checks the weighted two-term sum stays in its range.
func TestSubcarrier_MBOC(t *testing.T) {
	allowed := []float64{-1, -0.5, 0.5, 1, 0.75, -0.75, 0.25, -0.25, 0}
	for i := 1; i < 500; i++ {
		v := boc.Subcarrier(boc.MBOC, 0, boc.Cosine, float64(i)*0.0137)
		assert.Contains(t, allowed, v)
	}
	// Early in the first half period both sines are positive.
	assert.Equal(t, 1.0, boc.Subcarrier(boc.MBOC, 0, boc.Cosine, 0.01))
}

// TestSubcarrier_AltBOCRealRail uses the cosine rail only.
func TestSubcarrier_AltBOCRealRail(t *testing.T) {
	z := boc.AltBOCSubcarrier(1, 0.375)
	assert.Equal(t, complex(-1, 1), z)
	assert.Equal(t, real(z), boc.Subcarrier(boc.AltBOC, 1, boc.Sine, 0.375))
}

// TestProduct multiplies chip and subcarrier.
func TestProduct(t *testing.T) {
	code := chips.Sequence{1, -1}
	p := boc.Params{Kind: boc.BOC11, SubcarrierMHz: 2, ChipRateMcps: 1, Phase: boc.Sine}
	// t = 0.1 µs: chip 0 (+1), sin(2π·0.2) > 0.
	assert.Equal(t, 1.0, boc.Product(code, p, 0.1))
	// t = 1.1 µs: chip 1 (−1), sin(2π·2.2) > 0.
	assert.Equal(t, -1.0, boc.Product(code, p, 1.1))
	// wraps modulo code length.
	assert.Equal(t, boc.Product(code, p, 0.1), boc.Product(code, p, 2.1))
	assert.Zero(t, boc.ChipAt(nil, 1, 0.5))
}

// TestSubcarrierWaveform_Window checks sample count and adaptive window.
func TestSubcarrierWaveform_Window(t *testing.T) {
	s := boc.SubcarrierWaveform(boc.StandardFor(boc.BOC61).Params(boc.Sine), 600)
	require.Len(t, s.Values, 600)
	// 6.138 MHz ⇒ 6.138 periods over 1 µs.
	assert.InDelta(t, 1.0*599/600, s.Time[599], 1e-12)

	s = boc.SubcarrierWaveform(boc.DefaultParams(), 100)
	// 1.023 MHz clamps to 2 periods.
	assert.InDelta(t, 2/1.023*99/100, s.Time[99], 1e-12)

	assert.Empty(t, boc.SubcarrierWaveform(boc.Params{}, 10).Values)
}

// TestProductWaveform_Shape checks sizes and ±1 values.
func TestProductWaveform_Shape(t *testing.T) {
	code := chips.PRN(16)
	s := boc.ProductWaveform(boc.StandardFor(boc.BOC11).Params(boc.Sine), code, 50)
	require.Len(t, s.Values, 800)
	for _, v := range s.Values {
		assert.Contains(t, []float64{-1, 0, 1}, v)
	}
	assert.Empty(t, boc.ProductWaveform(boc.DefaultParams(), code, 0).Values)
}

// TestDescribe renders the panel text and the modified note.
func TestDescribe(t *testing.T) {
	std := boc.StandardFor(boc.BOC61).Params(boc.Cosine)
	txt := boc.Describe(std)
	assert.Contains(t, txt, "BOC(6(1 - Galileo E1 Public Regulated Service")
	assert.Contains(t, txt, "Standard: 6.138 MHz subcarrier, 1.023 Mcps chip rate")
	assert.NotContains(t, txt, "modified")
	assert.False(t, boc.Modified(std))

	std.SubcarrierMHz = 7
	assert.True(t, boc.Modified(std))
	assert.Contains(t, boc.Describe(std), "You've modified the standard parameters")
}
