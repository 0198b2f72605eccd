package noise

// Kind names a stock noise model.
type Kind int

const (
	// CircuitLevel scales faults per circuit location: depolarizing faults
	// after every two-qubit gate, preparation and measurement errors at
	// 4/15 of the physical rate, noiseless single-qubit gates.
	CircuitLevel Kind = iota
	// CodeCapacity disables all circuit-location faults; instead an
	// independent single-qubit Pauli error fires on each data qubit before
	// every stabilizer measurement circuit.
	CodeCapacity
	// OneStochasticPauli disables all circuit-location faults; a single
	// layer of independent data-qubit Pauli errors fires once per round,
	// right after state initialization.
	OneStochasticPauli
)

// Model fixes the per-location-class scale factors applied to the physical
// error rate p. A location fires with probability scale·p, and the scale of
// an unmodeled location class is zero.
type Model struct {
	Kind        Kind
	TwoQubit    float64 // after each two-qubit gate
	SingleQubit float64 // after each single-qubit gate
	Prep        float64 // after each (re)preparation
	Meas        float64 // on each reported measurement bit
}

// NewModel returns the Model for the given Kind.
func NewModel(k Kind) Model {
	switch k {
	case CircuitLevel:
		return Model{
			Kind:     CircuitLevel,
			TwoQubit: 1.0,
			Prep:     4.0 / 15.0,
			Meas:     4.0 / 15.0,
		}
	default:
		// Code-capacity style models carry no circuit-location noise.
		return Model{Kind: k}
	}
}

// Bernoulli reports whether a fault fires: one uniform draw compared against
// p. Probabilities ≤ 0 never fire, ≥ 1 always fire.
func Bernoulli(src Source, p float64) bool {
	return src.Float64() < p
}

// SamplePauli draws a uniform non-identity single-qubit Pauli (1/3 each).
func SamplePauli(src Source) Pauli {
	return Pauli(src.Intn(3) + 1)
}

// SamplePauliPair draws a uniform non-identity two-qubit Pauli pair
// (1/15 each), enumerated in (I,X), (I,Y), ..., (Z,Z) order.
func SamplePauliPair(src Source) PauliPair {
	k := src.Intn(15) + 1 // 1..15, skipping (I,I)
	return PauliPair{First: Pauli(k / 4), Second: Pauli(k % 4)}
}
