// SPDX-License-Identifier: MIT
// Package symplectic: sentinel error set.
// All public constructors and operations return these sentinels; tests match
// them via errors.Is. Panics are reserved for programmer errors in private
// helpers.

package symplectic

import "errors"

var (
	// ErrOddLength is returned when a vector of odd length is supplied where
	// a symplectic (X|Z) split is required.
	ErrOddLength = errors.New("symplectic: vector length must be even")

	// ErrLengthMismatch is returned when two operands have different lengths.
	ErrLengthMismatch = errors.New("symplectic: operand length mismatch")

	// ErrBadBit is returned when a bit value other than 0 or 1 is supplied.
	ErrBadBit = errors.New("symplectic: bit value must be 0 or 1")
)
