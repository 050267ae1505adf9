package l1_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnssviz/l1"
	"github.com/katalvlaran/gnssviz/spectrum"
)

// TestServicePSD_Peaks checks the main-lobe levels at the carrier.
func TestServicePSD_Peaks(t *testing.T) {
	assert.InDelta(t, -70.0, l1.ServicePSD(l1.CA, 0), 1e-12)
	assert.InDelta(t, -65.0, l1.ServicePSD(l1.PY, 0), 1e-12)
	assert.InDelta(t, -68.0, l1.ServicePSD(l1.M, 0), 1e-12)
	assert.InDelta(t, -63.0, l1.ServicePSD(l1.L1C, 0), 1e-12)
	assert.Equal(t, spectrum.FloorDB, l1.ServicePSD(l1.All, 0))
}

// TestServicePSD_Floor sweeps every service across the window.
func TestServicePSD_Floor(t *testing.T) {
	for _, svc := range l1.Services() {
		for f := -30.0; f <= 30; f += 0.01 {
			v := l1.ServicePSD(svc, f)
			require.GreaterOrEqual(t, v, spectrum.FloorDB, "svc=%s f=%g", svc, f)
			require.LessOrEqual(t, v, -63.0)
		}
	}
	// far out of band
	assert.Equal(t, spectrum.FloorDB, l1.ServicePSD(l1.CA, 1.023*1e9))
}

// TestSpectrum_Views checks which traces each view returns.
func TestSpectrum_Views(t *testing.T) {
	all := l1.Spectrum(l1.All, 0, 200)
	require.Len(t, all, 4)
	for _, tr := range all {
		assert.Equal(t, 200, tr.Curve.Len())
		assert.NotEmpty(t, tr.Label)
	}
	one := l1.Spectrum(l1.PY, 2.5, 100)
	require.Len(t, one, 1)
	assert.Equal(t, l1.PY, one[0].Service)
	assert.InDelta(t, 2.5-20, one[0].Curve.X[0], 1e-12)
}

// TestConstellation_Shapes counts points per service.
func TestConstellation_Shapes(t *testing.T) {
	assert.Len(t, l1.Constellation(l1.CA), 2)
	assert.Len(t, l1.Constellation(l1.PY), 2)
	assert.Len(t, l1.Constellation(l1.M), 8)
	l1c := l1.Constellation(l1.L1C)
	require.Len(t, l1c, 4)
	assert.Equal(t, "00", l1c[0].Label)
	assert.InDelta(t, 0.6, l1c[0].I, 1e-12)
	assert.Len(t, l1.Constellation(l1.All), 8)
}

// TestStructure covers each chain ending at the carrier or combiner.
func TestStructure(t *testing.T) {
	for _, svc := range l1.Services() {
		blocks := l1.Structure(svc)
		require.NotEmpty(t, blocks)
		assert.Equal(t, "L1 Carrier", blocks[len(blocks)-1].Name)
	}
	all := l1.Structure(l1.All)
	assert.Equal(t, "Combiner", all[len(all)-1].Name)
}

// TestAcquisitionState walks the four phases.
func TestAcquisitionState(t *testing.T) {
	cases := []struct {
		p      float64
		phase  string
		locked bool
	}{
		{0, "Searching...", false},
		{0.3, "Signal Detected", false},
		{0.6, "Acquiring Lock", false},
		{0.8, "Tracking", true},
		{1, "Tracking", true},
		{7, "Tracking", true},
		{-1, "Searching...", false},
		{math.NaN(), "Searching...", false},
		{math.Inf(1), "Tracking", true},
	}
	for _, tc := range cases {
		a := l1.AcquisitionState(tc.p)
		assert.Equal(t, tc.phase, a.Phase, "p=%g", tc.p)
		assert.Equal(t, tc.locked, a.Locked, "p=%g", tc.p)
		assert.InDelta(t, 1-a.Progress, a.NoiseLevel, 1e-12)
	}
}

// TestParseService covers the fallback.
func TestParseService(t *testing.T) {
	s, ok := l1.ParseService("galileo")
	assert.False(t, ok)
	assert.Equal(t, l1.All, s)
	assert.True(t, l1.All.Includes(l1.M))
	assert.False(t, l1.CA.Includes(l1.M))
}

// TestParseView covers every view and the fallback.
func TestParseView(t *testing.T) {
	cases := []struct {
		in   string
		want l1.View
		ok   bool
	}{
		{"spectrum", l1.ViewSpectrum, true},
		{"constellation", l1.ViewConstellation, true},
		{"structure", l1.ViewStructure, true},
		{"orthogonal", l1.ViewOrthogonal, true},
		{"waterfall", l1.ViewSpectrum, false},
		{"", l1.ViewSpectrum, false},
	}
	for _, tc := range cases {
		v, ok := l1.ParseView(tc.in)
		assert.Equal(t, tc.want, v, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

// TestOrthogonal checks the I/Q rail assignment of each service.
func TestOrthogonal(t *testing.T) {
	cases := []struct {
		svc    l1.Service
		i, q   string
		qEmpty bool
		iEmpty bool
	}{
		{l1.CA, "C/A Code + Nav Data", "(Empty)", true, false},
		{l1.PY, "P Code + Nav Data", "Y Code (Encrypted)", false, false},
		{l1.M, "(Empty)", "M Code", false, true},
		{l1.L1C, "L1C Data Channel", "L1C Pilot Channel", false, false},
		{l1.All, "C/A + P + L1C Data", "Y + M + L1C Pilot", false, false},
		{l1.Service("l5"), "C/A + P + L1C Data", "Y + M + L1C Pilot", false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.svc), func(t *testing.T) {
			ch := l1.Orthogonal(tc.svc)
			assert.Equal(t, tc.i, ch.I.Label)
			assert.Equal(t, tc.q, ch.Q.Label)
			assert.Equal(t, tc.iEmpty, ch.I.Empty())
			assert.Equal(t, tc.qEmpty, ch.Q.Empty())
		})
	}

	all := l1.Orthogonal(l1.All)
	assert.Equal(t, []l1.Service{l1.CA, l1.PY, l1.L1C}, all.I.Services)
	assert.Equal(t, []l1.Service{l1.PY, l1.M, l1.L1C}, all.Q.Services)
	require.Len(t, l1.Equations, 3)
}
