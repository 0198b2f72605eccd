// SPDX-License-Identifier: MIT

package symplectic

// Vector is a binary symplectic vector over GF(2). Each entry is 0 or 1.
// For an N-qubit operator the vector has length 2N: entries 0..N-1 are the
// X components, entries N..2N-1 the Z components.
type Vector []byte

// NewVector returns an all-zero Vector for n qubits (length 2n).
func NewVector(n int) Vector {
	return make(Vector, 2*n)
}

// Qubits returns the number of qubits the vector spans (len/2).
func (v Vector) Qubits() int { return len(v) / 2 }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// IsZero reports whether every entry of v is zero (the identity operator).
func (v Vector) IsZero() bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}
	return true
}

// Weight returns the number of nonzero entries of v. Note this is the bit
// weight of the symplectic form, not the Pauli weight (a Y counts twice).
func (v Vector) Weight() int {
	w := 0
	for _, b := range v {
		if b != 0 {
			w++
		}
	}
	return w
}

// Xor composes other into v in place (Pauli multiplication up to phase).
// Returns ErrLengthMismatch if the operands differ in length.
func (v Vector) Xor(other Vector) error {
	if len(v) != len(other) {
		return ErrLengthMismatch
	}
	for i, b := range other {
		v[i] ^= b
	}
	return nil
}

// XBit returns the X component of qubit q.
func (v Vector) XBit(q int) byte { return v[q] }

// ZBit returns the Z component of qubit q.
func (v Vector) ZBit(q int) byte { return v[q+v.Qubits()] }

// SetX sets the X component of qubit q to bit (0 or 1).
func (v Vector) SetX(q int, bit byte) error {
	if bit > 1 {
		return ErrBadBit
	}
	v[q] = bit
	return nil
}

// SetZ sets the Z component of qubit q to bit (0 or 1).
func (v Vector) SetZ(q int, bit byte) error {
	if bit > 1 {
		return ErrBadBit
	}
	v[q+v.Qubits()] = bit
	return nil
}

// ClearQubit zeroes both components of qubit q. This is the only sanctioned
// non-XOR mutation; the Pauli-frame engine calls it exactly at (re)preparation.
func (v Vector) ClearQubit(q int) {
	n := v.Qubits()
	v[q] = 0
	v[q+n] = 0
}

// Product computes the symplectic inner product ⟨v,other⟩ mod 2 under the
// standard symplectic form: vX·otherZ + vZ·otherX. A result of 1 means the
// two Pauli operators anticommute.
//
// Steps:
//  1. Validate equal, even lengths.
//  2. Accumulate vX[i]·otherZ[i] ⊕ vZ[i]·otherX[i] over all qubits i.
//
// Complexity: O(N) time, O(1) memory.
func (v Vector) Product(other Vector) (byte, error) {
	if len(v)%2 != 0 {
		return 0, ErrOddLength
	}
	if len(v) != len(other) {
		return 0, ErrLengthMismatch
	}
	n := v.Qubits()
	var acc byte
	for i := 0; i < n; i++ {
		acc ^= v[i] & other[i+n]
		acc ^= v[i+n] & other[i]
	}
	return acc, nil
}
