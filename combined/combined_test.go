package combined_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/combined"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(3, 11)) }

// TestComponents_Views checks row selection and the fallback view.
func TestComponents_Views(t *testing.T) {
	cases := []struct {
		view combined.View
		want []combined.Component
	}{
		{combined.ViewAll, []combined.Component{combined.Data, combined.Code, combined.Carrier}},
		{combined.ViewDataOnly, []combined.Component{combined.Data}},
		{combined.ViewCodeOnly, []combined.Component{combined.Code}},
		{combined.ViewCarrierOnly, []combined.Component{combined.Carrier}},
		{"spaghetti", []combined.Component{combined.Data, combined.Code, combined.Carrier}},
	}
	for _, tc := range cases {
		rows := combined.Components(tc.view, 500)
		require.Len(t, rows, len(tc.want), "view=%s", tc.view)
		for i, r := range rows {
			assert.Equal(t, tc.want[i], r.Component)
			assert.Len(t, r.Samples, 500)
			assert.Equal(t, 1.0, r.Progress)
		}
	}
}

// TestComponents_Values spot-checks each row.
func TestComponents_Values(t *testing.T) {
	rows := combined.Components(combined.ViewAll, 500)
	data, code, carrier := rows[0].Samples, rows[1].Samples, rows[2].Samples

	assert.Equal(t, 1.0, data[0])
	assert.Equal(t, -1.0, data[125])
	assert.Equal(t, -1.0, data[499])

	prn := chips.PRN(combined.ComponentCodeLength)
	for i, v := range code {
		assert.Equal(t, float64(prn[i*combined.ComponentCodeLength/500]), v)
	}

	assert.InDelta(t, 1.0, carrier[0], 1e-12)
	assert.InDelta(t, 1.0, carrier[50], 1e-9) // one full cycle
}

// TestTransmitted_Bounded checks |s(t)| ≤ 1 and the first sample.
func TestTransmitted_Bounded(t *testing.T) {
	s := combined.Transmitted(1000)
	require.Len(t, s, 1000)
	assert.InDelta(t, 1.0, s[0], 1e-12)
	for _, v := range s {
		require.LessOrEqual(t, math.Abs(v), 1.0+1e-12)
	}
	assert.Empty(t, combined.Transmitted(0))
}

// TestReceived_NoiseBand checks the noise stays within ±NoiseLevel/2.
func TestReceived_NoiseBand(t *testing.T) {
	tx := combined.Transmitted(1000)
	rx := combined.Received(1000, seeded())
	require.Len(t, rx, len(tx))
	for i := range rx {
		d := rx[i] - combined.Attenuation*tx[i]
		require.GreaterOrEqual(t, d, -combined.NoiseLevel/2)
		require.Less(t, d, combined.NoiseLevel/2)
	}
}

// TestAcquisitionScan checks the main peak sits at zero lag.
func TestAcquisitionScan(t *testing.T) {
	s := combined.AcquisitionScan(100, seeded())
	require.Len(t, s.Values, 100)
	assert.InDelta(t, -1.0, s.Lags[0], 1e-12)
	assert.Equal(t, 50, s.PeakIndex)
	assert.InDelta(t, 1.0, s.PeakValue, 1e-12)
	assert.True(t, s.Detected)
	assert.Equal(t, combined.DetectionThreshold, s.Threshold)
	for i, lag := range s.Lags {
		if math.Abs(lag) >= 0.1 {
			assert.Less(t, math.Abs(s.Values[i]), 0.05+1e-12, "lag=%g", lag)
		}
	}

	empty := combined.AcquisitionScan(0, nil)
	assert.Equal(t, -1, empty.PeakIndex)
	assert.Empty(t, empty.Values)
	assert.False(t, empty.Detected)
}

// TestComponentsFrame_Stages checks the three build stages.
func TestComponentsFrame_Stages(t *testing.T) {
	assert.Empty(t, combined.ComponentsFrame(0, 0, 200))

	rows := combined.ComponentsFrame(0.1, 0, 200)
	require.Len(t, rows, 1)
	assert.Equal(t, combined.Data, rows[0].Component)
	assert.Len(t, rows[0].Samples, 60)

	assert.Len(t, combined.ComponentsFrame(0.5, 0, 200), 2)

	full := combined.ComponentsFrame(1, 7, 200)
	require.Len(t, full, 3)
	for _, r := range full {
		assert.Equal(t, 1.0, r.Progress)
		assert.Len(t, r.Samples, 200)
	}
	assert.InDelta(t, math.Cos(0.7), full[2].Samples[0], 1e-12)
}

// TestFrames_NonFiniteProgress checks NaN progress behaves like 0 and +Inf
// like 1 in every frame builder.
func TestFrames_NonFiniteProgress(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	assert.Empty(t, combined.ComponentsFrame(nan, 0, 200))
	assert.Len(t, combined.ComponentsFrame(inf, 0, 200), 3)

	tr := combined.TransmissionFrame(nan, 0, 100)
	assert.Equal(t, 0.0, tr.WavePosition)
	assert.Len(t, tr.Samples, 1)
	assert.Len(t, combined.TransmissionFrame(inf, 0, 100).Samples, 100)

	rc := combined.ReceptionFrame(nan, 0, 50, seeded())
	assert.InDelta(t, 0.8, rc.SignalStrength, 1e-12)
	assert.False(t, math.IsNaN(rc.PathLossDB))

	sc := combined.CorrelationFrame(nan, 100, seeded())
	assert.Equal(t, 0.0, sc.ScanPosition)
	assert.Equal(t, 1, sc.Visible)
}

// TestTransmissionFrame checks the leading edge and amplitude profile.
func TestTransmissionFrame(t *testing.T) {
	f := combined.TransmissionFrame(0.5, 0, 100)
	require.Len(t, f.Samples, 51)
	assert.Equal(t, 0.5, f.WavePosition)
	assert.Equal(t, 0.3, f.WaveWidth)
	for _, v := range f.Samples {
		require.LessOrEqual(t, math.Abs(v), 1.0+1e-12)
	}

	start := combined.TransmissionFrame(0, 0, 100)
	require.Len(t, start.Samples, 1)
	assert.InDelta(t, 1.0, start.Samples[0], 1e-12)
}

// TestReceptionFrame checks strength and noise ramps.
func TestReceptionFrame(t *testing.T) {
	first := combined.ReceptionFrame(0, 0, 500, seeded())
	assert.InDelta(t, 0.8, first.SignalStrength, 1e-12)
	assert.InDelta(t, 0.1, first.NoiseLevel, 1e-12)

	last := combined.ReceptionFrame(1, 10, 500, seeded())
	assert.InDelta(t, 0.2, last.SignalStrength, 1e-12)
	assert.InDelta(t, 0.4, last.NoiseLevel, 1e-12)
	assert.InDelta(t, 20*math.Log10(5), last.PathLossDB, 1e-9)
	require.Len(t, last.Samples, 500)
	for _, v := range last.Samples {
		require.LessOrEqual(t, math.Abs(v), 0.2+0.2+1e-12)
	}
}

// TestCorrelationFrame checks the scan only reports revealed peaks.
func TestCorrelationFrame(t *testing.T) {
	early := combined.CorrelationFrame(0.3, 100, seeded())
	assert.Equal(t, 31, early.Visible)
	assert.Equal(t, -1, early.PeakIndex)
	assert.False(t, early.PeakFound)
	assert.False(t, early.Detected)

	mid := combined.CorrelationFrame(0.5, 100, seeded())
	assert.InDelta(t, 50.0, mid.ScanPosition, 1e-12)
	assert.Equal(t, 51, mid.Visible)
	assert.Equal(t, 50, mid.PeakIndex)
	assert.True(t, mid.PeakFound)
	assert.True(t, mid.Detected)

	assert.Empty(t, combined.CorrelationFrame(1, 0, nil).Values)
}
