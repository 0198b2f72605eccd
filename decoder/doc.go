// Package decoder maps syndrome-extraction results to Pauli corrections via
// a two-level lookup table.
//
// A Table is keyed by the canonical first-subround record; each entry either
// carries a terminal correction (when no second subround applies) or an inner
// table keyed by the canonical second-subround record. Corrections are
// symplectic vectors over the data qubits only; they are zero-extended over
// ancilla and flag qubits at application time.
//
// A lookup miss at either level is a deliberate no-op: unrecognized syndromes
// are left uncorrected by policy, never guessed. An under-corrected residual
// may later surface as a counted logical error — that is the protocol's
// accounting, not a decoding failure.
//
// Tables are externally supplied, static data assets (see package fivequbit)
// and are swappable per code and circuit variant.
package decoder
