package pauliframe

// Layout fixes the qubit index space: data qubits first, then ancilla, then
// flag qubits. Measurement collection and reset logic elsewhere assume
// exactly one ancilla and one flag qubit, but the index arithmetic itself
// generalizes.
type Layout struct {
	// Data is the number of data qubits, occupying indices 0..Data-1.
	Data int
	// Ancilla is the number of ancilla qubits, following the data block.
	Ancilla int
	// Flag is the number of flag qubits, following the ancilla block.
	Flag int
}

// NewLayout returns a Layout with the given block sizes.
func NewLayout(data, ancilla, flag int) Layout {
	return Layout{Data: data, Ancilla: ancilla, Flag: flag}
}

// Total returns the total number of qubits N = data + ancilla + flag.
func (l Layout) Total() int { return l.Data + l.Ancilla + l.Flag }

// DataQubit returns the index of data qubit i.
func (l Layout) DataQubit(i int) int { return i }

// AncillaQubit returns the index of ancilla qubit i.
func (l Layout) AncillaQubit(i int) int { return l.Data + i }

// FlagQubit returns the index of flag qubit i.
func (l Layout) FlagQubit(i int) int { return l.Data + l.Ancilla + i }
