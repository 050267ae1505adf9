// Package chips generates ranging-code chip sequences for GNSS signal
// visualization.
//
// 🚀 What is a chip sequence?
//
//	A ranging code is a fixed pseudorandom sequence of ±1 symbols ("chips")
//	that a satellite multiplies onto its carrier. Receivers correlate against
//	a local replica to measure delay. This package produces small, readable
//	versions of those codes:
//	  • CA     — a simplified GPS C/A generator (two 10-stage LFSRs, G2 delay taps)
//	  • PRN    — a single 16-bit LFSR
//	  • PRBS7  — the 7-stage data-pattern generator used by the playground
//	  • Walsh  — fixed Walsh rows
//	  • Random — uniform ±1 draws
//
// ✨ Guarantees:
//   - every chip is exactly +1 or −1;
//   - len(result) == length for length ≥ 0, and length ≤ 0 yields an empty sequence;
//   - CA and PRN are deterministic (same inputs ⇒ same chips);
//   - PRN numbers are reduced modulo 32 before the delay-table lookup.
//
// ⚠️ Naming caveat:
//
//	The "gold" and "kasami" kinds do not build true Gold or Kasami families.
//	"gold" reuses the C/A generator with a random PRN and "kasami" reuses the
//	PRN generator. This mirrors the behavior of the visualizer they serve.
//
// ⚙️ Usage:
//
//	code := chips.Generate(chips.KindCA, 1023, chips.WithPRN(7))
//	bits := chips.PRBS7()
package chips
