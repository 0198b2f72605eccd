// Package noise defines the stochastic fault model driving the Pauli-frame
// simulation.
//
// Fault sampling is a pure function of a probability and a random Source:
//
//   - Bernoulli(src, p) decides whether a fault fires at a location.
//   - SamplePauli draws one of the 3 non-identity single-qubit Paulis
//     uniformly (1/3 each).
//   - SamplePauliPair draws one of the 15 non-identity two-qubit Pauli pairs
//     uniformly (1/15 each), the standard two-qubit depolarizing channel.
//
// A Model scales the physical rate p per location class (two-qubit gate,
// single-qubit gate, preparation, measurement). The stock models mirror the
// circuit-level noise of Chao & Reichardt (two-qubit scale 1, prep/meas 4/15,
// noiseless single-qubit gates) plus the simpler code-capacity and
// one-stochastic-Pauli models used for cross-checks.
//
// An Override replaces the depolarizing draw at exactly one numbered fault
// location with a directed Pauli pair. It exists so tests can steer a single
// known fault through a circuit deterministically.
//
// The package never reports errors: fault injection is modeled randomness,
// not a failure condition.
package noise
