package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhq/lowdepthflagqec/noise"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

func newTestWorker(t *testing.T, seed int64) *worker {
	t.Helper()
	opts := DefaultOptions()
	w, err := newWorker(0, seed, &opts)
	require.NoError(t, err)
	return w
}

// dataError builds a five-qubit data-error vector from a Pauli string.
func dataError(t *testing.T, s string) symplectic.Vector {
	t.Helper()
	v := symplectic.NewVector(5)
	for q, c := range s {
		switch c {
		case 'X':
			require.NoError(t, v.SetX(q, 1))
		case 'Y':
			require.NoError(t, v.SetX(q, 1))
			require.NoError(t, v.SetZ(q, 1))
		case 'Z':
			require.NoError(t, v.SetZ(q, 1))
		}
	}
	return v
}

// TestWorkerSeed: distinct ranks must get distinct, reproducible streams.
func TestWorkerSeed(t *testing.T) {
	seen := map[int64]bool{}
	for rank := 0; rank < 64; rank++ {
		s := workerSeed(42, rank)
		assert.False(t, seen[s], "rank %d collides", rank)
		seen[s] = true
	}
	assert.Equal(t, workerSeed(42, 3), workerSeed(42, 3))
}

// TestBatchSize: the per-rate budget is split evenly with the remainder on
// the lowest ranks, and always sums back to the budget.
func TestBatchSize(t *testing.T) {
	cases := []struct{ samples, workers int }{
		{90, 4}, {7, 7}, {100, 1}, {101, 10},
	}
	for _, c := range cases {
		total := 0
		for rank := 0; rank < c.workers; rank++ {
			n := batchSize(c.samples, c.workers, rank)
			if rank > 0 {
				assert.LessOrEqual(t, n, batchSize(c.samples, c.workers, rank-1))
			}
			total += n
		}
		assert.Equal(t, c.samples, total, "samples=%d workers=%d", c.samples, c.workers)
	}
}

// TestRunBatch_NoiselessIsErrorFree: with no physical noise, no round may
// ever report a logical error.
func TestRunBatch_NoiselessIsErrorFree(t *testing.T) {
	w := newTestWorker(t, 5)
	count, err := w.runBatch(0, 10_000)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, w.frame.DataProjection().IsZero())
}

// TestRunRound_DirectedFaultIsCorrected: a single steered fault inside the
// second generator's flagged circuit is a textbook flag event; decoding must
// cancel its propagated error completely.
func TestRunRound_DirectedFaultIsCorrected(t *testing.T) {
	w := newTestWorker(t, 5)
	anc := w.opts.Layout.AncillaQubit(0)

	logical, err := w.runRound(0, &noise.Override{
		Location: 9,
		Qubit1:   anc, Qubit2: anc,
		Pauli1: noise.PauliI, Pauli2: noise.PauliZ,
	})
	require.NoError(t, err)
	assert.False(t, logical)
	assert.True(t, w.frame.DataProjection().IsZero())
}

// TestRunRound_RollbackPreservesResidual: start the round with the residual
// IXZZI already on the data block, then steer a Z fault onto the ancilla at
// location 9. The flagged pass raises the flag, the remeasured syndrome 1001
// misses the flag-raise table, and the round ends without a correction. The
// resynchronization pass then corrects the state down to a harmless
// stabilizer, so the round must not count -- and must also roll the frame
// back to the uncorrected state it entered resynchronization with.
func TestRunRound_RollbackPreservesResidual(t *testing.T) {
	w := newTestWorker(t, 5)
	anc := w.opts.Layout.AncillaQubit(0)
	residual := dataError(t, "IXZZI")
	w.frame.XorData(residual)

	logical, err := w.runRound(0, &noise.Override{
		Location: 9,
		Qubit1:   anc, Qubit2: anc,
		Pauli1: noise.PauliI, Pauli2: noise.PauliZ,
	})
	require.NoError(t, err)
	assert.False(t, logical)

	// The steered Z cancels one data Z on its way out and lands an X on
	// qubit 4; the rolled-back frame carries exactly that.
	assert.Equal(t, dataError(t, "IXZIX"), w.frame.DataProjection())
}

// TestRunRound_LogicalErrorRebuildsFrame: the same steered fault on top of a
// pre-existing X on qubit 0 decodes into a logical operator; the round must
// count and the frame must come back fresh.
func TestRunRound_LogicalErrorRebuildsFrame(t *testing.T) {
	w := newTestWorker(t, 5)
	anc := w.opts.Layout.AncillaQubit(0)
	w.frame.XorData(dataError(t, "XIIII"))

	logical, err := w.runRound(0, &noise.Override{
		Location: 9,
		Qubit1:   anc, Qubit2: anc,
		Pauli1: noise.PauliI, Pauli2: noise.PauliZ,
	})
	require.NoError(t, err)
	assert.True(t, logical)
	assert.True(t, w.frame.DataProjection().IsZero(), "frame must be rebuilt after a logical error")
}
