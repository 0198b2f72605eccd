package pauliframe

import (
	"github.com/dhruvbhq/lowdepthflagqec/noise"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

// Frame is one Pauli-frame instance: the accumulator plus the noise context
// it evolves under. Create a fresh Frame per sampling round (value-type
// lifecycle, no shared state); a Frame is not safe for concurrent use.
type Frame struct {
	layout   Layout
	acc      symplectic.Vector
	model    noise.Model
	src      noise.Source
	override *noise.Override
}

// New returns a Frame with an all-zero accumulator.
func New(layout Layout, model noise.Model, src noise.Source) *Frame {
	return &Frame{
		layout: layout,
		acc:    symplectic.NewVector(layout.Total()),
		model:  model,
		src:    src,
	}
}

// Layout returns the frame's qubit layout.
func (f *Frame) Layout() Layout { return f.layout }

// Model returns the frame's noise model.
func (f *Frame) Model() noise.Model { return f.model }

// SetOverride arms (or, with nil, disarms) a directed fault. While armed, the
// override suppresses every depolarizing two-qubit draw and fires exactly at
// its numbered location.
func (f *Frame) SetOverride(o *noise.Override) { f.override = o }

// Snapshot returns a copy of the accumulator.
func (f *Frame) Snapshot() symplectic.Vector { return f.acc.Clone() }

// Restore overwrites the accumulator with a previously taken Snapshot.
func (f *Frame) Restore(v symplectic.Vector) { copy(f.acc, v) }

// DataProjection returns the accumulator restricted to the data qubits:
// a symplectic vector of length 2·layout.Data.
func (f *Frame) DataProjection() symplectic.Vector {
	k, n := f.layout.Data, f.layout.Total()
	out := symplectic.NewVector(k)
	copy(out[:k], f.acc[:k])
	copy(out[k:], f.acc[n:n+k])
	return out
}

// XorData XORs a data-qubit-only symplectic vector (length 2·layout.Data)
// into the accumulator, zero-extended over the ancilla and flag qubits. This
// is how decoder corrections are applied.
func (f *Frame) XorData(v symplectic.Vector) {
	k, n := f.layout.Data, f.layout.Total()
	for i := 0; i < k; i++ {
		f.acc[i] ^= v[i]
		f.acc[i+n] ^= v[i+k]
	}
}

// flipX / flipZ XOR a single component bit. All mutation funnels through
// these two helpers plus ClearQubit at preparation.
func (f *Frame) flipX(q int) { f.acc[q] ^= 1 }
func (f *Frame) flipZ(q int) { f.acc[q+f.layout.Total()] ^= 1 }

// InjectPauli XORs the single-qubit Pauli p onto qubit q.
func (f *Frame) InjectPauli(p noise.Pauli, q int) {
	x, z := p.Bits()
	if x == 1 {
		f.flipX(q)
	}
	if z == 1 {
		f.flipZ(q)
	}
}

// InjectPauliPair XORs pair.First onto q1 and pair.Second onto q2.
func (f *Frame) InjectPauliPair(pair noise.PauliPair, q1, q2 int) {
	f.InjectPauli(pair.First, q1)
	f.InjectPauli(pair.Second, q2)
}

// StochasticDataErrors fires an independent single-qubit depolarizing error
// on each data qubit with probability p (code-capacity style noise).
func (f *Frame) StochasticDataErrors(p float64) {
	for i := 0; i < f.layout.Data; i++ {
		if noise.Bernoulli(f.src, p) {
			f.InjectPauli(noise.SamplePauli(f.src), f.layout.DataQubit(i))
		}
	}
}

// PrepareZ prepares qubit q in |0⟩: clears both component bits, then injects
// an X error with probability prepScale·p.
func (f *Frame) PrepareZ(q int, p float64) {
	f.acc.ClearQubit(q)
	if noise.Bernoulli(f.src, f.model.Prep*p) {
		f.flipX(q)
	}
}

// PrepareX prepares qubit q in |+⟩: clears both component bits, then injects
// a Z error with probability prepScale·p.
func (f *Frame) PrepareX(q int, p float64) {
	f.acc.ClearQubit(q)
	if noise.Bernoulli(f.src, f.model.Prep*p) {
		f.flipZ(q)
	}
}

// ResetAncilla re-prepares every ancilla qubit in |0⟩.
func (f *Frame) ResetAncilla(p float64) {
	for i := 0; i < f.layout.Ancilla; i++ {
		f.PrepareZ(f.layout.AncillaQubit(i), p)
	}
}

// ResetFlag re-prepares every flag qubit in |+⟩.
func (f *Frame) ResetFlag(p float64) {
	for i := 0; i < f.layout.Flag; i++ {
		f.PrepareX(f.layout.FlagQubit(i), p)
	}
}

// MeasureZ measures qubit q in the Z basis. An X component in the
// accumulator reads as a nontrivial (1) outcome. The reported bit is flipped
// with probability measScale·p; the accumulator is not mutated.
func (f *Frame) MeasureZ(q int, p float64) byte {
	out := f.acc.XBit(q)
	if noise.Bernoulli(f.src, f.model.Meas*p) {
		out ^= 1
	}
	return out
}

// MeasureX measures qubit q in the X basis. A Z component in the accumulator
// reads as a nontrivial (1) outcome.
func (f *Frame) MeasureX(q int, p float64) byte {
	out := f.acc.ZBit(q)
	if noise.Bernoulli(f.src, f.model.Meas*p) {
		out ^= 1
	}
	return out
}
