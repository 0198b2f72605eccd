package protocol_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhq/lowdepthflagqec/noise"
	"github.com/dhruvbhq/lowdepthflagqec/pauliframe"
	"github.com/dhruvbhq/lowdepthflagqec/protocol"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

var fiveQubitGens = []protocol.Generator{"XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"}

func newExtractor(t *testing.T, seed int64) *protocol.Extractor {
	t.Helper()
	layout := pauliframe.Layout{Data: 5, Ancilla: 1, Flag: 1}
	frame := pauliframe.New(layout, noise.NewModel(noise.CircuitLevel), rand.New(rand.NewSource(seed)))
	ex, err := protocol.New(frame, fiveQubitGens)
	require.NoError(t, err)
	return ex
}

// TestNew_BadGenerator rejects unknown factors and single-gate supports.
func TestNew_BadGenerator(t *testing.T) {
	layout := pauliframe.Layout{Data: 5, Ancilla: 1, Flag: 1}
	frame := pauliframe.New(layout, noise.NewModel(noise.CircuitLevel), rand.New(rand.NewSource(1)))

	_, err := protocol.New(frame, []protocol.Generator{"XQZZI"})
	assert.ErrorIs(t, err, protocol.ErrBadGenerator)

	_, err = protocol.New(frame, []protocol.Generator{"XIIII"})
	assert.ErrorIs(t, err, protocol.ErrBadGenerator,
		"a flagged circuit cannot bracket a single coupling gate")
}

// TestRun_CleanRound: at p=0 every generator is attempted, every pair is
// flag-clear with zero syndrome, and no remeasurement happens.
func TestRun_CleanRound(t *testing.T) {
	ex := newExtractor(t, 3)

	res, err := ex.Run(0, nil)
	require.NoError(t, err)

	require.Len(t, res.First, 4)
	for i, p := range res.First {
		assert.True(t, p.Measured, "generator %d must be attempted", i)
		assert.Equal(t, byte(0), p.Syndrome, "generator %d", i)
		assert.Equal(t, byte(0), p.Flag, "generator %d", i)
	}
	assert.Nil(t, res.Second)
	assert.False(t, res.Escalated())
	assert.Equal(t, "00 00 00 00", res.First.Key())
	assert.Equal(t, protocol.Idle, ex.Status())
}

// TestRun_NotIdle: entering Run mid-protocol is refused.
func TestRun_NotIdle(t *testing.T) {
	ex := newExtractor(t, 3)
	ex.SetStatusForTest(protocol.MeasuringWithFlag)

	_, err := ex.Run(0, nil)
	assert.ErrorIs(t, err, protocol.ErrNotIdle)
}

// TestUnflaggedPass_EntryStatus: the remeasurement pass demands
// MeasuringWithoutFlag on entry.
func TestUnflaggedPass_EntryStatus(t *testing.T) {
	ex := newExtractor(t, 3)

	_, err := ex.RunUnflaggedPassForTest(0)
	assert.ErrorIs(t, err, protocol.ErrBadStatus)

	ex.SetStatusForTest(protocol.MeasuringWithoutFlag)
	second, err := ex.RunUnflaggedPassForTest(0)
	require.NoError(t, err)
	assert.Equal(t, "0000", second.Key())
}

// TestRun_FlagRaised steers a Z fault onto the ancilla inside the second
// generator's flagged circuit (location 9, right after its first CNOT). The
// stray Z walks through the remaining gates onto the flag qubit and the data
// register, so the round must escalate on a raised flag and the unflagged
// pass must read the propagated data error's syndrome.
func TestRun_FlagRaised(t *testing.T) {
	ex := newExtractor(t, 3)
	anc := ex.Frame().Layout().AncillaQubit(0)

	ov := &noise.Override{
		Location: 9,
		Qubit1:   anc, Qubit2: anc,
		Pauli1: noise.PauliI, Pauli2: noise.PauliZ,
	}
	// p=0 keeps preparation and measurement noiseless; the directed fault
	// fires regardless of the rate.
	res, err := ex.Run(0, ov)
	require.NoError(t, err)

	// First record: generator 1 clean, generator 2 flagged, rest sentinels.
	require.Len(t, res.First, 4)
	assert.Equal(t, "00 01 -- --", res.First.Key())
	assert.False(t, res.First[2].Measured)
	assert.False(t, res.First[3].Measured)

	// The Z on the ancilla propagates to Z on data 3 (via the next CNOT) and
	// X on data 4 (via the closing XNOT); its full syndrome is 1010.
	assert.True(t, res.Escalated())
	assert.Equal(t, "1010", res.Second.Key())

	// Residual data error after the round: Z on qubit 3, X on qubit 4.
	want := symplectic.NewVector(5)
	require.NoError(t, want.SetZ(3, 1))
	require.NoError(t, want.SetX(4, 1))
	assert.Equal(t, want, ex.Frame().DataProjection())
	assert.Equal(t, protocol.Idle, ex.Status())
}

// TestRun_NonzeroSyndrome: a pre-round X on data qubit 0 anticommutes only
// with the fourth generator, so the protocol advances three times and
// escalates on a clean-flag nonzero syndrome.
func TestRun_NonzeroSyndrome(t *testing.T) {
	ex := newExtractor(t, 3)

	ov := &noise.Override{
		Location: protocol.OverrideLocPreRound,
		Qubit1:   0, Qubit2: 0,
		Pauli1: noise.PauliX, Pauli2: noise.PauliI,
	}
	res, err := ex.Run(0, ov)
	require.NoError(t, err)

	assert.Equal(t, "00 00 00 10", res.First.Key())
	assert.True(t, res.Escalated())
	assert.Equal(t, "0001", res.Second.Key())
	assert.Equal(t, protocol.Idle, ex.Status())
}

// TestRun_StatusStrings pins the reported status names used in logs.
func TestRun_StatusStrings(t *testing.T) {
	assert.Equal(t, "Idle", protocol.Idle.String())
	assert.Equal(t, "MeasuringWithFlag", protocol.MeasuringWithFlag.String())
	assert.Equal(t, "MeasuringWithoutFlag", protocol.MeasuringWithoutFlag.String())
	assert.Equal(t, "FlagRaised", protocol.FlagRaised.String())
	assert.Equal(t, "NonzeroSyndrome", protocol.NonzeroSyndrome.String())
	assert.Equal(t, "FlagClearZeroSyndrome", protocol.FlagClearZeroSyndrome.String())
	assert.Equal(t, "Unknown", protocol.Status(99).String())
}
