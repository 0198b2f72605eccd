// Package pauliframe implements a Pauli-frame engine: classical bookkeeping
// of the accumulated Pauli error acting on a register of qubits, evolved
// through Clifford circuits with probabilistic faults, without ever touching
// a quantum state vector.
//
// Model:
//
//	The engine owns a 2N-bit symplectic accumulator (N = data + ancilla +
//	flag qubits). Clifford gates act by fixed conjugation rules — pure XOR
//	propagation of the X/Z component bits. Faults, preparations and
//	measurement errors XOR extra Pauli components in, governed by the
//	noise.Model scale factors and a noise.Source.
//
// Operations (all O(1) except projections, which are O(N)):
//
//	PrepareZ / PrepareX  — clear the qubit's bits, then inject the
//	                       complementary error (X after Z-prep, Z after
//	                       X-prep) with probability prepScale·p.
//	H, CNOT, XNOT, YNOT, CZ — symplectic conjugation, then a two-qubit
//	                       depolarizing fault (1/15 each) at twoQubitScale·p
//	                       after each two-qubit gate, unless a directed
//	                       Override is armed.
//	MeasureZ / MeasureX  — read the relevant component bit; flip only the
//	                       reported outcome with probability measScale·p.
//	                       The accumulator itself is never mutated by
//	                       measurement.
//	ResetAncilla / ResetFlag — re-prepare in |0⟩ / |+⟩ respectively.
//
// Invariant: the accumulator changes only by XOR composition; a qubit's two
// bits are cleared exactly at that qubit's (re)preparation.
//
// The package returns no errors: callers guarantee valid qubit indices, and
// fault injection is expected randomness. Determinism: given the same Source
// draw sequence, any gate sequence produces the same accumulator.
package pauliframe
