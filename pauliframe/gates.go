package pauliframe

import "github.com/dhruvbhq/lowdepthflagqec/noise"

// Clifford gates as symplectic conjugation rules. Each rule reads the
// pre-gate component bits, XORs in the propagated components, then applies
// the location fault. Propagation tables (per gate, nontrivial entries only):
//
//	H:    X↔Z on the operand.
//	CNOT: X(control) → X(target), Z(target) → Z(control).
//	XNOT: Z(either end) → X(other end). CNOT conjugated into the X basis;
//	      treated as a single two-qubit gate with one fault location.
//	YNOT: Z(oplus) → Y(y), X(y) → X(oplus), Z(y) → X(oplus).
//	CZ:   X(either end) → Z(other end).

// H applies a Hadamard on qubit q, then a single-qubit depolarizing fault at
// singleQubitScale·p.
func (f *Frame) H(q int, p float64) {
	n := f.layout.Total()
	f.acc[q], f.acc[q+n] = f.acc[q+n], f.acc[q]
	if noise.Bernoulli(f.src, f.model.SingleQubit*p) {
		f.InjectPauli(noise.SamplePauli(f.src), q)
	}
}

// CNOT applies a controlled-NOT (control, target), then the two-qubit fault
// for location loc.
func (f *Frame) CNOT(control, target int, p float64, loc int) {
	xc, zt := f.acc.XBit(control), f.acc.ZBit(target)
	if xc == 1 {
		f.flipX(target)
	}
	if zt == 1 {
		f.flipZ(control)
	}
	f.twoQubitFault(control, target, p, loc)
}

// XNOT applies the X-basis CNOT between qubits a and b, then the two-qubit
// fault for location loc.
func (f *Frame) XNOT(a, b int, p float64, loc int) {
	za, zb := f.acc.ZBit(a), f.acc.ZBit(b)
	if za == 1 {
		f.flipX(b)
	}
	if zb == 1 {
		f.flipX(a)
	}
	f.twoQubitFault(a, b, p, loc)
}

// YNOT applies the Y-controlled NOT with the ⊕ end on qubit oplus and the Y
// end on qubit y, then the two-qubit fault for location loc.
func (f *Frame) YNOT(oplus, y int, p float64, loc int) {
	zo, xy, zy := f.acc.ZBit(oplus), f.acc.XBit(y), f.acc.ZBit(y)
	if zo == 1 {
		f.flipX(y)
		f.flipZ(y)
	}
	if xy == 1 {
		f.flipX(oplus)
	}
	if zy == 1 {
		f.flipX(oplus)
	}
	f.twoQubitFault(oplus, y, p, loc)
}

// CZ applies a controlled-Z between qubits a and b, then the two-qubit fault
// for location loc.
func (f *Frame) CZ(a, b int, p float64, loc int) {
	xa, xb := f.acc.XBit(a), f.acc.XBit(b)
	if xa == 1 {
		f.flipZ(b)
	}
	if xb == 1 {
		f.flipZ(a)
	}
	f.twoQubitFault(a, b, p, loc)
}

// twoQubitFault injects the post-gate error for a numbered location. With an
// Override armed, only the override's own location fires (directed pair);
// every depolarizing draw is suppressed. Otherwise a uniform non-identity
// two-qubit Pauli fires with probability twoQubitScale·p.
func (f *Frame) twoQubitFault(q1, q2 int, p float64, loc int) {
	if f.override != nil {
		if f.override.Matches(loc) {
			f.InjectPauli(f.override.Pauli1, f.override.Qubit1)
			f.InjectPauli(f.override.Pauli2, f.override.Qubit2)
		}
		return
	}
	if noise.Bernoulli(f.src, f.model.TwoQubit*p) {
		f.InjectPauliPair(noise.SamplePauliPair(f.src), q1, q2)
	}
}
