package fivequbit

import (
	"fmt"

	"github.com/dhruvbhq/lowdepthflagqec/pauliframe"
	"github.com/dhruvbhq/lowdepthflagqec/protocol"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

// NumDataQubits is the data-block size of the five-qubit code.
const NumDataQubits = 5

// Generators returns the stabilizer generators in measurement order.
func Generators() []protocol.Generator {
	return []protocol.Generator{"XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"}
}

// Layout returns the code's qubit layout: five data qubits, one ancilla,
// one flag.
func Layout() pauliframe.Layout {
	return pauliframe.NewLayout(NumDataQubits, 1, 1)
}

// Logicals returns the logical operator set, rows X⊗5 and Z⊗5.
func Logicals() *symplectic.Matrix {
	m, err := symplectic.NewMatrix(
		pauliVec("XXXXX"),
		pauliVec("ZZZZZ"),
	)
	if err != nil {
		panic(fmt.Sprintf("fivequbit: building logicals: %v", err))
	}
	return m
}

// pauliVec converts a five-character Pauli string into its symplectic vector
// over the data qubits. Static asset construction; panics on malformed input
// (programmer error).
func pauliVec(s string) symplectic.Vector {
	if len(s) != NumDataQubits {
		panic(fmt.Sprintf("fivequbit: pauli string %q must have length %d", s, NumDataQubits))
	}
	v := symplectic.NewVector(NumDataQubits)
	for q, c := range s {
		switch c {
		case 'I':
		case 'X':
			v[q] = 1
		case 'Y':
			v[q] = 1
			v[q+NumDataQubits] = 1
		case 'Z':
			v[q+NumDataQubits] = 1
		default:
			panic(fmt.Sprintf("fivequbit: pauli string %q has unknown factor %q", s, c))
		}
	}
	return v
}
