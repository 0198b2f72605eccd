// Package protocol implements the adaptive flag-qubit syndrome-extraction
// protocol: a per-round state machine that measures the code's stabilizer
// generators with flag-protected circuits and escalates to a full unflagged
// remeasurement as soon as a flag is raised or a nonzero syndrome appears.
//
// State machine (per round, always entered and left in Idle):
//
//	Idle → MeasuringWithFlag(g), g = 1..G
//	     → FlagRaised | NonzeroSyndrome | FlagClearZeroSyndrome
//
//	FlagClearZeroSyndrome: advance to generator g+1, or terminate after the
//	last generator (round complete, no remeasurement).
//	FlagRaised / NonzeroSyndrome: pad the first-subround record with sentinel
//	pairs for the unattempted generators, switch to MeasuringWithoutFlag, and
//	remeasure all generators with unflagged circuits. Terminate.
//
// Rationale: a raised flag signals that a single fault may have propagated
// to a high-weight data error, so the syndrome is re-derived from scratch
// with flag-free circuits before any correction is trusted (abort-and-verify).
//
// Circuits:
//
//	Each generator's circuit is derived from its Pauli support over the data
//	qubits: an XNOT (X-basis CNOT) into the ancilla per X factor, a CNOT per
//	Z factor, a YNOT per Y factor, in qubit order. The flagged variant
//	brackets the middle gates with two flag-ancilla CNOTs; the ancilla is
//	measured in Z, the flag in X, and both are re-prepared afterwards.
//	Two-qubit fault locations are numbered 1.. across the flagged circuits
//	and 100.. across the unflagged pass, so a directed noise.Override can
//	target any single gate.
//
// Records:
//
//	FirstRecord — one (syndrome, flag) Pair per flagged attempt, padded with
//	sentinel pairs once the protocol short-circuits; final length equals the
//	generator count. SecondRecord — the four raw syndrome bits of the
//	unflagged pass, present only after an escalation. Canonical Key() strings
//	of both records are the decoder's lookup keys.
//
// Errors:
//
//	ErrNotIdle      - Run called while a round is already in progress.
//	ErrBadStatus    - unflagged pass entered from the wrong status.
//	ErrBadGenerator - generator support string is malformed.
//
// Both status errors are fail-fast programming defects, never physical
// conditions.
package protocol
