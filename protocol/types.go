package protocol

import (
	"errors"
	"strings"
)

// Sentinel errors for protocol sequencing and configuration.
var (
	// ErrNotIdle indicates Run was entered while the extractor was not Idle.
	ErrNotIdle = errors.New("protocol: extraction already in progress, status must be Idle")

	// ErrBadStatus indicates the unflagged remeasurement pass was entered
	// from a status other than MeasuringWithoutFlag.
	ErrBadStatus = errors.New("protocol: wrong status before unflagged pass")

	// ErrBadGenerator indicates a generator support string with characters
	// outside I, X, Y, Z, or with no support at all.
	ErrBadGenerator = errors.New("protocol: malformed stabilizer generator")
)

// Status is the protocol's per-round extraction status. It is mutated only
// by the Extractor and is Idle at every round boundary.
type Status int

const (
	// Idle: no extraction in progress.
	Idle Status = iota
	// MeasuringWithFlag: running a flag-protected generator circuit.
	MeasuringWithFlag
	// MeasuringWithoutFlag: running the unflagged remeasurement pass.
	MeasuringWithoutFlag
	// FlagRaised: the flag measured 1 after a flagged circuit.
	FlagRaised
	// NonzeroSyndrome: flag clear but the syndrome bit measured 1.
	NonzeroSyndrome
	// FlagClearZeroSyndrome: flag clear and syndrome zero; safe to advance.
	FlagClearZeroSyndrome
)

// String returns a short human-readable status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case MeasuringWithFlag:
		return "MeasuringWithFlag"
	case MeasuringWithoutFlag:
		return "MeasuringWithoutFlag"
	case FlagRaised:
		return "FlagRaised"
	case NonzeroSyndrome:
		return "NonzeroSyndrome"
	case FlagClearZeroSyndrome:
		return "FlagClearZeroSyndrome"
	default:
		return "Unknown"
	}
}

// Generator is a stabilizer generator's Pauli support over the data qubits,
// e.g. "XZZXI". The character at position q names the factor on data qubit q.
type Generator string

// gateKind selects the data-ancilla coupling gate per Pauli factor.
type gateKind byte

const (
	gateXNOT gateKind = iota // X factor: X-basis CNOT
	gateCNOT                 // Z factor: controlled-NOT
	gateYNOT                 // Y factor: Y-controlled NOT
)

// scheduleEntry is one data-ancilla gate of a generator's circuit.
type scheduleEntry struct {
	qubit int
	kind  gateKind
}

// schedule derives the gate sequence from the generator's support, in qubit
// order. Returns ErrBadGenerator on unknown factors or empty support.
func (g Generator) schedule() ([]scheduleEntry, error) {
	var seq []scheduleEntry
	for q, c := range strings.ToUpper(string(g)) {
		switch c {
		case 'I':
		case 'X':
			seq = append(seq, scheduleEntry{qubit: q, kind: gateXNOT})
		case 'Z':
			seq = append(seq, scheduleEntry{qubit: q, kind: gateCNOT})
		case 'Y':
			seq = append(seq, scheduleEntry{qubit: q, kind: gateYNOT})
		default:
			return nil, ErrBadGenerator
		}
	}
	if len(seq) < 2 {
		// A flagged circuit needs at least two coupling gates to bracket.
		return nil, ErrBadGenerator
	}
	return seq, nil
}
