// SPDX-License-Identifier: MIT

package symplectic

// Matrix is an ordered set of equal-length symplectic Vectors, one row per
// Pauli operator. It is the natural shape for a code's stabilizer generators
// or its logical operator set.
type Matrix struct {
	rows []Vector
}

// NewMatrix builds a Matrix from the given rows. Rows are cloned, so later
// mutation of the inputs does not affect the Matrix. Returns ErrOddLength if
// a row has odd length, ErrLengthMismatch if rows differ in length, and
// ErrBadBit if a row holds a value other than 0 or 1.
func NewMatrix(rows ...Vector) (*Matrix, error) {
	m := &Matrix{rows: make([]Vector, 0, len(rows))}
	for _, r := range rows {
		if len(r)%2 != 0 {
			return nil, ErrOddLength
		}
		if len(m.rows) > 0 && len(r) != len(m.rows[0]) {
			return nil, ErrLengthMismatch
		}
		for _, b := range r {
			if b > 1 {
				return nil, ErrBadBit
			}
		}
		m.rows = append(m.rows, r.Clone())
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) Vector { return m.rows[i].Clone() }

// Commutation returns the symplectic product of v against every row, in row
// order. Entry i is 1 iff v anticommutes with row i.
func (m *Matrix) Commutation(v Vector) ([]byte, error) {
	out := make([]byte, len(m.rows))
	for i, r := range m.rows {
		c, err := v.Product(r)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// CommutesWithAll reports whether v commutes with every row of m.
func (m *Matrix) CommutesWithAll(v Vector) (bool, error) {
	comm, err := m.Commutation(v)
	if err != nil {
		return false, err
	}
	for _, c := range comm {
		if c != 0 {
			return false, nil
		}
	}
	return true, nil
}
