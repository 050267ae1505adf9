package chips

import "github.com/katalvlaran/gnssviz/internal/rng"

const (
	caStages     = 10
	prnSeed      = 0x1
	prnTopBit    = 15
	prbs7Mask    = 0x7f
	prbs7Outputs = 15
)

// g2Delays holds the 1-based G2 stage pairs that are XOR-ed to form the
// delayed G2 output, indexed by PRN mod 32.
var g2Delays = [32][2]int{
	{2, 6}, {3, 7}, {4, 8}, {5, 9}, {1, 9}, {2, 10}, {1, 8}, {2, 9},
	{3, 10}, {2, 3}, {3, 4}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10},
	{1, 4}, {2, 5}, {3, 6}, {4, 7}, {5, 8}, {6, 9}, {1, 3}, {4, 6},
	{5, 7}, {6, 8}, {7, 9}, {8, 10}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
}

// G2Delay returns the G2 tap pair used for prn after reducing it modulo 32.
// Negative PRNs wrap into the table as well.
func G2Delay(prn int) [2]int {
	return g2Delays[prnIndex(prn)]
}

func prnIndex(prn int) int {
	idx := prn % len(g2Delays)
	if idx < 0 {
		idx += len(g2Delays)
	}

	return idx
}

// CA generates length chips of the simplified C/A code for prn.
//
// Algorithm:
//  1. G1 and G2 are 10-stage registers seeded to all ones (stage 1 = index 0).
//  2. Per chip: G1 feedback = s3 ⊕ s10; G2 feedback = s2 ⊕ s3 ⊕ s6 ⊕ s8 ⊕ s9 ⊕ s10.
//  3. Output = G1.s10 ⊕ G2.s[d1] ⊕ G2.s[d2] with (d1,d2) = G2Delay(prn); 1 → +1, 0 → −1.
//  4. Both registers shift toward stage 10 and the feedback enters stage 1.
//
// Complexity: O(length) time, O(length) memory.
func CA(prn, length int) Sequence {
	if length <= 0 {
		return Sequence{}
	}

	var g1, g2 [caStages]uint8
	for i := range g1 {
		g1[i], g2[i] = 1, 1
	}
	d := G2Delay(prn)

	code := make(Sequence, length)
	for i := 0; i < length; i++ {
		f1 := g1[2] ^ g1[9]
		f2 := g2[1] ^ g2[2] ^ g2[5] ^ g2[7] ^ g2[8] ^ g2[9]
		g2out := g2[d[0]-1] ^ g2[d[1]-1]
		code[i] = toChip(g1[9] ^ g2out)

		copy(g1[1:], g1[:caStages-1])
		g1[0] = f1
		copy(g2[1:], g2[:caStages-1])
		g2[0] = f2
	}

	return code
}

// PRN generates length chips from a single 16-bit LFSR seeded to 1.
// Each step computes fb = b0 ⊕ b2 ⊕ b3 ⊕ b5, emits fb as a chip and shifts
// right with fb entering bit 15.
func PRN(length int) Sequence {
	if length <= 0 {
		return Sequence{}
	}

	reg := uint32(prnSeed)
	seq := make(Sequence, length)
	for i := range seq {
		fb := uint8((reg ^ reg>>2 ^ reg>>3 ^ reg>>5) & 1)
		seq[i] = toChip(fb)
		reg = reg>>1 | uint32(fb)<<prnTopBit
	}

	return seq
}

// PRBS7 returns the first 15 output bits (0/1) of a 7-stage PRBS register
// seeded to all ones. Output is bit 0; feedback bit6 ⊕ bit5 enters bit 6.
func PRBS7() []int {
	reg := uint8(prbs7Mask)
	bits := make([]int, 0, prbs7Outputs)
	for len(bits) < prbs7Outputs {
		bits = append(bits, int(reg&1))
		fb := (reg>>6 ^ reg>>5) & 1
		reg = (reg>>1 | fb<<6) & prbs7Mask
	}

	return bits
}

// Walsh returns a fixed Walsh row of the requested length. Only 2, 4 and 8
// are tabulated; anything else yields the 4-chip row.
func Walsh(length int) Sequence {
	switch length {
	case 2:
		return Sequence{1, 1}
	case 8:
		return Sequence{1, 1, 1, 1, 1, 1, 1, 1}
	default:
		return Sequence{1, 1, 1, 1}
	}
}

// Random draws length independent ±1 chips. Not reproducible unless the
// caller supplies a seeded source.
func Random(length int, opts ...Option) Sequence {
	if length <= 0 {
		return Sequence{}
	}
	o := gatherOptions(opts)
	seq := make(Sequence, length)
	for i := range seq {
		seq[i] = Chip(rng.Sign(o.Rand))
	}

	return seq
}

// Generate dispatches to the generator selected by kind. Unknown kinds use
// DefaultKind.
func Generate(kind Kind, length int, opts ...Option) Sequence {
	o := gatherOptions(opts)
	switch kind {
	case KindPRN, KindKasami:
		return PRN(length)
	case KindGold:
		return CA(rng.IntN(o.Rand, len(g2Delays)), length)
	default:
		return CA(o.PRN, length)
	}
}

func toChip(bit uint8) Chip {
	if bit != 0 {
		return 1
	}

	return -1
}
