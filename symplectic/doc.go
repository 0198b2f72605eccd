// SPDX-License-Identifier: MIT

// Package symplectic implements binary symplectic representations of Pauli
// operators over GF(2).
//
// Representation:
//
//	An N-qubit Pauli operator (up to phase) is a Vector of length 2N.
//	Bits 0..N-1 are the X components, bits N..2N-1 the Z components:
//		X on qubit q → bit q
//		Z on qubit q → bit q+N
//		Y on qubit q → both bits (X·Z up to phase)
//
// Composition of Pauli operators is bitwise XOR; two operators commute iff
// their symplectic inner product
//
//	⟨a,b⟩ = aX·bZ + aZ·bX  (mod 2)
//
// vanishes. Matrix bundles rows of equal-length Vectors (stabilizer
// generators, logical operator sets) and reports per-row commutation.
//
// All operations are O(N) bit work with no allocation beyond the stated
// results. Vectors are plain byte slices holding 0/1 values; they are not
// safe for concurrent mutation.
//
// Errors:
//
//	ErrOddLength      - vector length is not even (no X/Z split exists).
//	ErrLengthMismatch - operands have different lengths.
//	ErrBadBit         - a value other than 0 or 1 was supplied.
package symplectic
