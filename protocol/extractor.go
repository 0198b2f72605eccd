package protocol

import (
	"fmt"

	"github.com/dhruvbhq/lowdepthflagqec/noise"
	"github.com/dhruvbhq/lowdepthflagqec/pauliframe"
)

// Extractor runs the adaptive syndrome-extraction protocol against one
// Pauli frame. It is single-use-at-a-time: Run must complete (or fail) before
// the next call, and Status is Idle between rounds.
type Extractor struct {
	frame     *pauliframe.Frame
	gens      []Generator
	schedules [][]scheduleEntry
	status    Status
}

// New builds an Extractor for the given frame and stabilizer generators.
// Each generator's circuit schedule is derived once, up front. Returns
// ErrBadGenerator (wrapped with the offending generator) on malformed input.
func New(frame *pauliframe.Frame, gens []Generator) (*Extractor, error) {
	e := &Extractor{
		frame:     frame,
		gens:      gens,
		schedules: make([][]scheduleEntry, 0, len(gens)),
		status:    Idle,
	}
	for _, g := range gens {
		seq, err := g.schedule()
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", g, err)
		}
		e.schedules = append(e.schedules, seq)
	}
	return e, nil
}

// Status returns the current protocol status.
func (e *Extractor) Status() Status { return e.status }

// Frame returns the Pauli frame the extractor drives.
func (e *Extractor) Frame() *pauliframe.Frame { return e.frame }

// observe is the explicit (status, observation) → status transition applied
// after each flagged attempt. Flag outcomes dominate syndrome outcomes.
func observe(p Pair) Status {
	switch {
	case p.Flag == 1:
		return FlagRaised
	case p.Syndrome == 1:
		return NonzeroSyndrome
	default:
		return FlagClearZeroSyndrome
	}
}

// Run executes one extraction round at physical rate p, optionally steering
// a single directed fault via ov (which suppresses all depolarizing draws).
//
// Steps:
//  1. Verify Idle entry (ErrNotIdle otherwise — protocol misuse, not physics).
//  2. For each generator g: measure with the flagged circuit, record the
//     (syndrome, flag) Pair, and classify the observation.
//  3. FlagClearZeroSyndrome → advance; FlagRaised / NonzeroSyndrome → pad the
//     first record with sentinels, run the full unflagged pass, terminate.
//  4. Either way the extractor returns to Idle before Run returns.
//
// Complexity: O(G·N) gate work per round, G generators over N qubits.
func (e *Extractor) Run(p float64, ov *noise.Override) (Result, error) {
	if e.status != Idle {
		return Result{}, fmt.Errorf("status %s: %w", e.status, ErrNotIdle)
	}
	e.frame.SetOverride(ov)
	defer e.frame.SetOverride(nil)

	if ov.Matches(OverrideLocPreRound) {
		e.frame.InjectPauli(ov.Pauli1, ov.Qubit1)
		e.frame.InjectPauli(ov.Pauli2, ov.Qubit2)
	}

	first := make(FirstRecord, 0, len(e.gens))
	for g := range e.gens {
		e.status = MeasuringWithFlag
		kind := e.frame.Model().Kind
		if kind == noise.CodeCapacity || (kind == noise.OneStochasticPauli && g == 0) {
			e.frame.StochasticDataErrors(p)
		}

		pair := e.runFlaggedCircuit(g, p)
		first = append(first, pair)
		e.status = observe(pair)

		if e.status == FlagRaised || e.status == NonzeroSyndrome {
			first = first.Pad(len(e.gens))
			e.status = MeasuringWithoutFlag
			second, err := e.runUnflaggedPass(p)
			if err != nil {
				return Result{}, err
			}
			e.status = Idle
			return Result{First: first, Second: second}, nil
		}
	}

	e.status = Idle
	return Result{First: first}, nil
}
