package render

import (
	"strings"

	"github.com/katalvlaran/gnssviz/boc"
	"github.com/katalvlaran/gnssviz/chips"
	"github.com/katalvlaran/gnssviz/session"
	"github.com/katalvlaran/gnssviz/spectrum"
)

const (
	subcarrierSamples = 400
	productCodeLength = 16
	productPerChip    = 50
	bocSpectrumPoints = 1000
	bocSpanChipRates  = 10 // ±5 chip rates
	bocCorrLags       = 200
	bocCorrSpanChips  = 4 // ±2 chips
)

// BOC draws the subcarrier, the code×subcarrier product, the PSD and the
// autocorrelation of st.BOC, followed by the information text.
func BOC(st *session.State, s Surface) []Panel {
	s = s.orDefault()
	p := st.BOC
	mid := Band{Center: s.Height / 2, Scale: s.Height / 4}

	sc := panel("subcarrier")
	sc.add(grid(s, 8, 4)...)
	sc.add(Trace(boc.SubcarrierWaveform(p, subcarrierSamples).Values, s, mid, stroke(colorGreen, 2)))
	sc.add(text(10, 20, "Subcarrier ("+string(p.Phase)+" phase)", Style{}))

	pp := panel("product")
	pp.add(grid(s, productCodeLength, 4)...)
	prod := boc.ProductWaveform(p, chips.PRN(productCodeLength), productPerChip)
	pp.add(Trace(prod.Values, s, mid, stroke(colorBlue, 1.5)))
	pp.add(text(10, 20, "Code × Subcarrier", Style{}))

	sp := panel("boc_spectrum")
	psd := spectrum.Sweep(bocSpectrumPoints, bocSpanChipRates*p.ChipRateMcps, 0, func(f float64) float64 {
		return spectrum.BOCPSD(p.Kind, f, p.SubcarrierMHz, p.ChipRateMcps)
	})
	sp.add(line(s.Width/2, 0, s.Width/2, s.Height, dashed(colorAxis)))
	sp.add(Trace(psd.Y, s, Band{Center: s.Height - 20, Scale: (s.Height - 40) / maxAbs(psd.Y)}, stroke(colorBlue, 2)))
	sp.add(text(10, 20, "BOC Power Spectral Density", Style{}))

	cp := panel("boc_correlation")
	corr := spectrum.Sweep(bocCorrLags, bocCorrSpanChips, 0, func(lag float64) float64 {
		return spectrum.BOCCorrelation(p.Kind, lag, p.SubcarrierMHz, p.ChipRateMcps)
	})
	cp.add(line(0, s.Height/2, s.Width, s.Height/2, stroke(colorGrid, 1)))
	cp.add(Trace(corr.Y, s, Band{Center: s.Height / 2, Scale: s.Height * 0.4}, stroke(colorRed, 2)))
	cp.add(text(10, 20, "BOC Autocorrelation", Style{}))

	ip := &Panel{Name: "boc_info"}
	for i, ln := range strings.Split(boc.Describe(p), "\n") {
		if ln != "" {
			ip.add(text(0, float64(12+16*i), ln, Style{}))
		}
	}

	return []Panel{*sc, *pp, *sp, *cp, *ip}
}
