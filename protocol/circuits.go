package protocol

import "github.com/dhruvbhq/lowdepthflagqec/noise"

// Circuit execution: flagged and unflagged stabilizer-measurement fragments.
//
// Fault-location numbering mirrors the circuit order so a noise.Override can
// address any single two-qubit gate:
//
//	flagged circuit of generator g (0-based): locations flaggedBase+g*flaggedStride ..,
//	one per gate including the two flag CNOTs (six per four-gate generator);
//	unflagged pass: locations unflaggedBase+4g+i, one per coupling gate.
//
// Location 0 is reserved for a pre-round injection before any gate has run.

const (
	// OverrideLocPreRound addresses the instant before the first flagged gate.
	OverrideLocPreRound = 0
	// flaggedBase is the first location of the first flagged circuit.
	flaggedBase = 1
	// unflaggedBase is the first location of the unflagged pass.
	unflaggedBase = 100
)

// runFlaggedCircuit measures generator g with the flag-protected circuit:
// first coupling gate, flag CNOT, middle coupling gates, flag CNOT, last
// coupling gate; then ancilla Z-measurement and flag X-measurement, followed
// by ancilla reset (|0⟩) and flag re-preparation (|+⟩).
func (e *Extractor) runFlaggedCircuit(g int, p float64) Pair {
	seq := e.schedules[g]
	anc := e.frame.Layout().AncillaQubit(0)
	flag := e.frame.Layout().FlagQubit(0)
	loc := flaggedBase + g*(len(seq)+2)

	e.applyGate(seq[0], p, loc)
	loc++
	e.frame.CNOT(flag, anc, p, loc)
	loc++
	for _, entry := range seq[1 : len(seq)-1] {
		e.applyGate(entry, p, loc)
		loc++
	}
	e.frame.CNOT(flag, anc, p, loc)
	loc++
	e.applyGate(seq[len(seq)-1], p, loc)

	pair := Pair{
		Syndrome: e.frame.MeasureZ(anc, p),
		Flag:     e.frame.MeasureX(flag, p),
		Measured: true,
	}
	e.frame.ResetAncilla(p)
	e.frame.ResetFlag(p)
	return pair
}

// runUnflaggedPass measures every generator with its flag-free circuit and
// returns the raw syndrome bits. Entry precondition: MeasuringWithoutFlag.
func (e *Extractor) runUnflaggedPass(p float64) (SecondRecord, error) {
	if e.status != MeasuringWithoutFlag {
		return nil, ErrBadStatus
	}
	anc := e.frame.Layout().AncillaQubit(0)
	second := make(SecondRecord, 0, len(e.schedules))
	for g, seq := range e.schedules {
		if e.frame.Model().Kind == noise.CodeCapacity {
			e.frame.StochasticDataErrors(p)
		}
		for i, entry := range seq {
			e.applyGate(entry, p, unflaggedBase+len(seq)*g+i)
		}
		second = append(second, e.frame.MeasureZ(anc, p))
		e.frame.ResetAncilla(p)
	}
	return second, nil
}

// applyGate dispatches one coupling gate between a data qubit and the ancilla.
func (e *Extractor) applyGate(entry scheduleEntry, p float64, loc int) {
	data := e.frame.Layout().DataQubit(entry.qubit)
	anc := e.frame.Layout().AncillaQubit(0)
	switch entry.kind {
	case gateXNOT:
		e.frame.XNOT(data, anc, p, loc)
	case gateCNOT:
		e.frame.CNOT(data, anc, p, loc)
	case gateYNOT:
		e.frame.YNOT(anc, data, p, loc)
	}
}
