// Package boc models Binary Offset Carrier signals: a ranging code
// multiplied by a square-wave subcarrier that pushes the signal energy away
// from the band centre.
//
// Frequencies are in MHz and chip rates in Mcps, so time is measured in
// microseconds: f[MHz]·t[µs] is a number of cycles.
//
// Supported kinds and their standard parameters:
//
//	boc_1_1       1.023 MHz / 1.023 Mcps   Galileo E1 Open Service
//	boc_6_1       6.138 MHz / 1.023 Mcps   Galileo E1 PRS
//	boc_10_5      10.23 MHz / 5.115 Mcps   GPS L1C
//	boc_15_2.5   15.345 MHz / 2.5575 Mcps  Galileo E5a/E5b
//	mboc          1.023 MHz / 1.023 Mcps   0.75·BOC(1,1) + 0.25·BOC(6,1)
//	boc_1_1_sine  1.023 MHz / 1.023 Mcps   BOC(1,1), sine phase forced
//	boc_2_1       2.046 MHz / 1.023 Mcps
//	boc_4_1       4.092 MHz / 1.023 Mcps
//	altboc       15.345 MHz / 10.23 Mcps   Galileo E5 AltBOC (real rail shown)
//
// Unknown kinds fall back to boc_1_1.
package boc
