package fivequbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhq/lowdepthflagqec/fivequbit"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

// pvec builds the symplectic vector of a five-qubit Pauli string.
func pvec(t *testing.T, s string) symplectic.Vector {
	t.Helper()
	require.Len(t, s, 5)
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
		case 'I':
		default:
			t.Fatalf("bad pauli string %q", s)
		}
	}
	return v
}

// generatorMatrix assembles the stabilizer generators as symplectic rows.
func generatorMatrix(t *testing.T) *symplectic.Matrix {
	t.Helper()
	gens := fivequbit.Generators()
	rows := make([]symplectic.Vector, 0, len(gens))
	for _, g := range gens {
		rows = append(rows, pvec(t, string(g)))
	}
	m, err := symplectic.NewMatrix(rows...)
	require.NoError(t, err)
	return m
}

// TestGenerators pins the cyclic generator set in measurement order.
func TestGenerators(t *testing.T) {
	assert.Equal(t, []string{"XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"},
		func() []string {
			out := []string{}
			for _, g := range fivequbit.Generators() {
				out = append(out, string(g))
			}
			return out
		}())
}

// TestGenerators_MutuallyCommute: the stabilizer group must be abelian.
func TestGenerators_MutuallyCommute(t *testing.T) {
	m := generatorMatrix(t)
	for i := 0; i < m.Rows(); i++ {
		ok, err := m.CommutesWithAll(m.Row(i))
		require.NoError(t, err)
		assert.True(t, ok, "generator %d", i)
	}
}

// TestLogicals: both logical operators commute with every generator and
// anticommute with each other.
func TestLogicals(t *testing.T) {
	m := generatorMatrix(t)
	logicals := fivequbit.Logicals()
	require.Equal(t, 2, logicals.Rows())

	for i := 0; i < logicals.Rows(); i++ {
		ok, err := m.CommutesWithAll(logicals.Row(i))
		require.NoError(t, err)
		assert.True(t, ok, "logical %d must centralize the stabilizer", i)
	}

	p, err := logicals.Row(0).Product(logicals.Row(1))
	require.NoError(t, err)
	assert.Equal(t, byte(1), p, "logical X and Z must anticommute")
}

// TestLayout pins the 5+1+1 qubit layout.
func TestLayout(t *testing.T) {
	l := fivequbit.Layout()
	assert.Equal(t, 5, l.Data)
	assert.Equal(t, 1, l.Ancilla)
	assert.Equal(t, 1, l.Flag)
	assert.Equal(t, 7, l.Total())
}
