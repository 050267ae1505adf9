package session_test

import (
	"bytes"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnssviz/animation"
	"github.com/katalvlaran/gnssviz/boc"
	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/combined"
	"github.com/katalvlaran/gnssviz/l1"
	"github.com/katalvlaran/gnssviz/modulation"
	"github.com/katalvlaran/gnssviz/playground"
	"github.com/katalvlaran/gnssviz/session"
)

// TestDefaultState checks every tab starts at its reset values.
func TestDefaultState(t *testing.T) {
	s := session.DefaultState()
	assert.Equal(t, session.TabRanging, s.Tab)
	assert.Equal(t, chips.CA(1, session.DefaultCodeLength), s.Code)
	assert.Equal(t, modulation.DefaultParams(), s.Carrier)
	assert.Equal(t, boc.DefaultParams(), s.BOC)
	assert.Equal(t, playground.DefaultParams(), s.Playground)
	assert.Equal(t, combined.ViewAll, s.Combined.View)
	assert.Equal(t, l1.All, s.L1.Service)
	assert.Equal(t, l1.ViewSpectrum, s.L1.View)
	require.NoError(t, s.Validate())
}

// TestSetBOCKind applies the standard only on a kind change.
func TestSetBOCKind(t *testing.T) {
	s := session.DefaultState()

	assert.False(t, s.SetBOCKind(boc.BOC11))
	s.BOC.SubcarrierMHz = 3.3

	assert.False(t, s.SetBOCKind(boc.BOC11), "same kind keeps manual edits")
	assert.Equal(t, 3.3, s.BOC.SubcarrierMHz)

	assert.True(t, s.SetBOCKind(boc.AltBOC))
	assert.Equal(t, 15.345, s.BOC.SubcarrierMHz)
	assert.Equal(t, 10.23, s.BOC.ChipRateMcps)

	s.BOC.ChipRateMcps = 1
	s.ResetBOC()
	assert.Equal(t, 10.23, s.BOC.ChipRateMcps)

	var buf bytes.Buffer
	s.Logger = log.New(&buf, "", 0)
	assert.True(t, s.SetBOCKind("boc_99_1"))
	assert.Equal(t, boc.BOC11, s.BOC.Kind)
	assert.Equal(t, 1.023, s.BOC.SubcarrierMHz)
	assert.Contains(t, buf.String(), "boc_99_1")
}

// TestRegenerateCode follows the ranging settings.
func TestRegenerateCode(t *testing.T) {
	s := session.DefaultState()
	s.Ranging.Kind, s.Ranging.Length = chips.KindPRN, 8
	assert.Equal(t, chips.Sequence{1, -1, -1, -1, -1, -1, -1, -1}, s.RegenerateCode(nil))

	s.Ranging.Kind, s.Ranging.Length = chips.KindGold, 64
	code := s.RegenerateCode(rand.New(rand.NewPCG(1, 2)))
	assert.Len(t, code, 64)
	assert.Equal(t, code, s.Code)
}

// TestSwitchTab cancels the running animation.
func TestSwitchTab(t *testing.T) {
	s := session.DefaultState()
	var p animation.Player
	p.Start("combined", animation.SignalPropagation)

	s.SwitchTab(session.TabL1, &p)
	assert.Equal(t, session.TabL1, s.Tab)
	_, running := p.Active()
	assert.False(t, running)

	s.SwitchTab("nowhere", nil)
	assert.Equal(t, session.DefaultTab, s.Tab)
}

// TestParseConfig_Overrides loads partial YAML over the defaults.
func TestParseConfig_Overrides(t *testing.T) {
	data := []byte(`
tab: boc
ranging:
  kind: prn
  length: 8
carrier:
  kind: qpsk
  snr_db: 5
boc:
  kind: boc_6_1
  phase: sine
playground:
  data_pattern: custom
  custom_data: "1100"
  code_pattern: ca
`)
	s, err := session.ParseConfig(data, nil)
	require.NoError(t, err)

	assert.Equal(t, session.TabBOC, s.Tab)
	assert.Equal(t, chips.Sequence{1, -1, -1, -1, -1, -1, -1, -1}, s.Code)
	assert.Equal(t, modulation.QPSK, s.Carrier.Kind)
	assert.Equal(t, 5.0, s.Carrier.SNRdB)
	assert.Equal(t, 100.0, s.Carrier.DataRate)
	assert.Equal(t, boc.Params{Kind: boc.BOC61, SubcarrierMHz: 6.138, ChipRateMcps: 1.023, Phase: boc.Sine}, s.BOC)
	assert.Equal(t, playground.DataCustom, s.Playground.Data)
	assert.Equal(t, "1100", s.Playground.CustomData)
	assert.Equal(t, playground.CodeCA, s.Playground.Code)
	assert.Equal(t, 10.0, s.Playground.DataRate)

	// applied kind is remembered
	assert.False(t, s.SetBOCKind(boc.BOC61))
}

// TestParseConfig_ExplicitBOCRates keeps rates spelled out in the file.
func TestParseConfig_ExplicitBOCRates(t *testing.T) {
	s, err := session.ParseConfig([]byte("boc:\n  kind: mboc\n  chip_rate_mcps: 2.046\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, boc.MBOC, s.BOC.Kind)
	assert.Equal(t, 1.023, s.BOC.SubcarrierMHz)
	assert.Equal(t, 2.046, s.BOC.ChipRateMcps)
}

// TestParseConfig_Fallbacks logs and replaces unknown enum values.
func TestParseConfig_Fallbacks(t *testing.T) {
	var buf bytes.Buffer
	data := []byte(`
tab: radar
ranging: {kind: barker}
carrier: {kind: ofdm}
boc: {kind: boc_3_3, phase: square}
combined: {view: everything}
l1: {service: l5, view: waterfall}
playground: {mode: pro, data_pattern: morse, code_pattern: zc, carrier: fsk}
`)
	s, err := session.ParseConfig(data, log.New(&buf, "", 0))
	require.NoError(t, err)

	assert.Equal(t, session.DefaultTab, s.Tab)
	assert.Equal(t, chips.KindCA, s.Ranging.Kind)
	assert.Equal(t, modulation.BPSK, s.Carrier.Kind)
	assert.Equal(t, boc.BOC11, s.BOC.Kind)
	assert.Equal(t, boc.Cosine, s.BOC.Phase)
	assert.Equal(t, combined.ViewAll, s.Combined.View)
	assert.Equal(t, l1.All, s.L1.Service)
	assert.Equal(t, l1.ViewSpectrum, s.L1.View)
	assert.Equal(t, playground.ModeBasic, s.Playground.Mode)
	assert.Equal(t, playground.DataBinary, s.Playground.Data)
	assert.Equal(t, playground.CodeNone, s.Playground.Code)
	assert.Equal(t, playground.CarrierBPSK, s.Playground.Carrier)

	for _, v := range []string{"radar", "barker", "ofdm", "boc_3_3", "square", "everything", "l5", "waterfall", "pro", "morse", "zc", "fsk"} {
		assert.Contains(t, buf.String(), v)
	}
}

// TestParseConfig_Errors covers the three error classes.
func TestParseConfig_Errors(t *testing.T) {
	_, err := session.ParseConfig([]byte("tab: [unclosed"), nil)
	assert.ErrorIs(t, err, session.ErrParseConfig)

	for _, doc := range []string{
		"ranging: {length: -1}",
		"carrier: {data_rate: 0}",
		"boc: {subcarrier_mhz: .nan}",
		"playground: {noise_level: -0.5}",
		"l1: {offset_mhz: .inf}",
	} {
		_, err = session.ParseConfig([]byte(doc), nil)
		assert.ErrorIs(t, err, session.ErrInvalidConfig, doc)
	}

	_, err = session.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, session.ErrReadConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadConfig reads a file from disk.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnssviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("l1:\n  service: m\n  view: orthogonal\n  offset_mhz: 2.5\n"), 0o600))

	s, err := session.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, l1.M, s.L1.Service)
	assert.Equal(t, l1.ViewOrthogonal, s.L1.View)
	assert.Equal(t, 2.5, s.L1.OffsetMHz)
	assert.True(t, s.L1.ShowDetails)
}

// TestResetPlayground restores defaults.
func TestResetPlayground(t *testing.T) {
	s := session.DefaultState()
	s.Playground.NoiseLevel = 0.9
	s.Playground.Code = playground.CodeGold
	s.ResetPlayground()
	assert.Equal(t, playground.DefaultParams(), s.Playground)
}
