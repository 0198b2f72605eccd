package noise

// Source is the minimal random stream the fault model consumes. *math/rand.Rand
// satisfies it; sampling workers each own an independently seeded Source.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
}

// Pauli labels a single-qubit Pauli operator.
type Pauli byte

// Single-qubit Pauli operators. The numeric order (I, X, Y, Z) matches the
// index convention used throughout the lookup tables.
const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

// String returns the one-letter name of p.
func (p Pauli) String() string {
	switch p {
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "I"
	}
}

// Bits returns the symplectic (x, z) component bits of p:
// I→(0,0), X→(1,0), Y→(1,1), Z→(0,1).
func (p Pauli) Bits() (x, z byte) {
	switch p {
	case PauliX:
		return 1, 0
	case PauliY:
		return 1, 1
	case PauliZ:
		return 0, 1
	default:
		return 0, 0
	}
}

// PauliPair is an ordered pair of single-qubit Paulis acting on the two
// operands of a two-qubit gate.
type PauliPair struct {
	First  Pauli
	Second Pauli
}

// Override directs an exact fault at one numbered two-qubit-gate location,
// suppressing the depolarizing draw there. Zero value means "no override".
// Locations are assigned by the protocol circuits; an Override fires at most
// once per extraction pass.
type Override struct {
	// Location is the numbered fault location after a two-qubit gate.
	Location int
	// Qubit1, Qubit2 are the qubit indices the directed Paulis act on.
	Qubit1 int
	Qubit2 int
	// Pauli1, Pauli2 are the directed Paulis (PauliI for "none on this leg").
	Pauli1 Pauli
	Pauli2 Pauli
}

// Matches reports whether o is a live override for the given location.
func (o *Override) Matches(loc int) bool {
	return o != nil && o.Location == loc
}
