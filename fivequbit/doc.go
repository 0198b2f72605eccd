// Package fivequbit is the static data asset for the [[5,1,3]] five-qubit
// code: its stabilizer generators, logical operators, and the decoder lookup
// tables for the flag syndrome-extraction protocol.
//
// Generators (in measurement order): XZZXI, IXZZX, XIXZZ, ZXIXZ.
// Logical operators: X⊗5 and Z⊗5.
//
// Three swappable tables are provided:
//
//	NoFlagTable     — terminal weight-1 corrections keyed by the plain 4-bit
//	                  syndrome (non-adaptive, flag-free extraction).
//	MinWeightTable  — flag-protocol table whose flag-raised entries pick a
//	                  minimum-weight equivalent of each correlated error.
//	HighWeightTable — flag-protocol table carrying the literal (possibly
//	                  high-weight) propagated error as the correction.
//
// In the flag tables, outer keys are canonical first-subround records
// ("01 -- -- --" = flag raised on generator 1, later generators never
// attempted); inner keys are the 4-bit second-subround syndromes. Outer keys
// of the form "10 ...", a nonzero syndrome with no flag, share the weight-1
// inner corrections, since an unflagged nonzero syndrome carries no
// propagation risk.
//
// Corrections are symplectic vectors over the five data qubits, written here
// as Pauli strings for legibility. Table construction is static; the maps are
// built fresh per call so callers may extend them without aliasing.
package fivequbit
