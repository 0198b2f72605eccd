package sampler

import (
	"fmt"
	"math/rand"

	"github.com/dhruvbhq/lowdepthflagqec/decoder"
	"github.com/dhruvbhq/lowdepthflagqec/noise"
	"github.com/dhruvbhq/lowdepthflagqec/pauliframe"
	"github.com/dhruvbhq/lowdepthflagqec/protocol"
)

// worker owns one sampling rank: its random stream, Pauli frame, and
// extractor. Workers share nothing; each is confined to one goroutine.
type worker struct {
	rank int
	src  *rand.Rand
	opts *Options

	frame *pauliframe.Frame
	ex    *protocol.Extractor
}

// workerSeed derives rank r's stream seed from the base seed. Distinct ranks
// get distinct, reproducible streams.
func workerSeed(base int64, rank int) int64 {
	return base + 1_000_003*int64(rank+1)
}

// newWorker builds rank's worker with a fresh frame.
func newWorker(rank int, seed int64, opts *Options) (*worker, error) {
	w := &worker{
		rank: rank,
		src:  rand.New(rand.NewSource(seed)),
		opts: opts,
	}
	if err := w.freshFrame(); err != nil {
		return nil, err
	}
	return w, nil
}

// freshFrame discards the accumulated error state: new frame, new extractor,
// same random stream.
func (w *worker) freshFrame() error {
	w.frame = pauliframe.New(w.opts.Layout, *w.opts.Model, w.src)
	ex, err := protocol.New(w.frame, w.opts.Generators)
	if err != nil {
		return err
	}
	w.ex = ex
	return nil
}

// extractAndDecode runs one extraction pass at rate p and applies the table
// correction (lookup misses correct nothing, by policy).
func (w *worker) extractAndDecode(p float64, ov *noise.Override) error {
	res, err := w.ex.Run(p, ov)
	if err != nil {
		return err
	}
	if corr, ok := decoder.Decode(w.opts.Table, res); ok {
		w.frame.XorData(corr)
	}
	return nil
}

// runRound executes one error-correction round at rate p and reports whether
// it ended in a logical error.
//
// Steps:
//  1. Re-prepare ancilla (|0⟩) and flag (|+⟩) at rate p.
//  2. Noisy extraction + decode.
//  3. Error-free resynchronization: snapshot, extraction + decode at p=0.
//  4. Commutation of the data projection against every logical operator.
//     Anticommutation ⇒ logical error: count and rebuild the frame fresh.
//     Otherwise restore the pre-resynchronization snapshot — the diagnostic
//     pass must not persist into the next round.
// A non-nil ov steers one directed fault through the noisy pass (test use).
func (w *worker) runRound(p float64, ov *noise.Override) (bool, error) {
	anc := w.opts.Layout.AncillaQubit(0)
	flag := w.opts.Layout.FlagQubit(0)
	w.frame.PrepareZ(anc, p)
	w.frame.PrepareX(flag, p)

	if err := w.extractAndDecode(p, ov); err != nil {
		return false, err
	}

	snapshot := w.frame.Snapshot()
	if err := w.extractAndDecode(0, nil); err != nil {
		return false, err
	}

	commutes, err := w.opts.Logicals.CommutesWithAll(w.frame.DataProjection())
	if err != nil {
		return false, err
	}
	if !commutes {
		return true, w.freshFrame()
	}
	w.frame.Restore(snapshot)
	return false, nil
}

// runBatch runs n independent rounds at rate p on a fresh frame and returns
// the logical-error count.
func (w *worker) runBatch(p float64, n int) (int, error) {
	if err := w.freshFrame(); err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < n; i++ {
		logical, err := w.runRound(p, nil)
		if err != nil {
			return 0, fmt.Errorf("rank %d, rate %g, round %d: %w", w.rank, p, i, err)
		}
		if logical {
			count++
		}
	}
	return count, nil
}
