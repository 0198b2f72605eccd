// SPDX-License-Identifier: MIT

package symplectic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

// TestNewMatrix_Validation covers the three construction failure modes.
func TestNewMatrix_Validation(t *testing.T) {
	_, err := symplectic.NewMatrix(symplectic.Vector{1, 0, 0})
	assert.ErrorIs(t, err, symplectic.ErrOddLength)

	_, err = symplectic.NewMatrix(symplectic.NewVector(2), symplectic.NewVector(3))
	assert.ErrorIs(t, err, symplectic.ErrLengthMismatch)

	_, err = symplectic.NewMatrix(symplectic.Vector{2, 0})
	assert.ErrorIs(t, err, symplectic.ErrBadBit)
}

// TestMatrix_RowsAreCloned ensures mutation of an input row after NewMatrix
// does not leak into the Matrix.
func TestMatrix_RowsAreCloned(t *testing.T) {
	r := symplectic.Vector{1, 0, 0, 0}
	m, err := symplectic.NewMatrix(r)
	require.NoError(t, err)

	r[0] = 0
	assert.Equal(t, byte(1), m.Row(0)[0])
}

// TestMatrix_Commutation checks the per-row symplectic product vector.
func TestMatrix_Commutation(t *testing.T) {
	// Rows on 2 qubits: X0 and Z0.
	m, err := symplectic.NewMatrix(
		symplectic.Vector{1, 0, 0, 0},
		symplectic.Vector{0, 0, 1, 0},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())

	// Z0 anticommutes with X0 and commutes with itself.
	comm, err := m.Commutation(symplectic.Vector{0, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0}, comm)

	ok, err := m.CommutesWithAll(symplectic.Vector{0, 0, 1, 0})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.CommutesWithAll(symplectic.NewVector(2))
	require.NoError(t, err)
	assert.True(t, ok, "the identity commutes with everything")
}
