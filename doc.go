// Package lowdepthflagqec estimates logical error rates of the five-qubit
// quantum error-correcting code under circuit-level noise, using flag-qubit
// fault-tolerant syndrome extraction and a classical Pauli-frame simulation.
//
// What is lowdepthflagqec?
//
//	A pure-Go Monte-Carlo toolkit built from small, composable packages:
//		• symplectic — binary symplectic vectors & operator commutation (GF(2))
//		• noise      — depolarizing fault model, scale factors & directed faults
//		• pauliframe — Pauli-frame engine: Clifford propagation without a state vector
//		• protocol   — adaptive flag/no-flag syndrome-extraction state machine
//		• decoder    — two-level lookup-table decoder
//		• fivequbit  — the [[5,1,3]] code asset: generators, logicals, tables
//		• sampler    — round driver, rate sweeps & distributed sampling
//
// Why a Pauli frame?
//
//	Under the stabilizer formalism, tracking the accumulated Pauli error
//	through Clifford circuits needs only a 2N-bit vector and XOR updates.
//	Each gate is O(1) and a full extraction round is O(N), which is what
//	makes 10^5+ samples per noise rate practical on a laptop.
//
// Typical flow:
//
//	cfg := sampler.DefaultConfig()
//	cfg.Rates = []float64{1e-3, 3e-3, 1e-2}
//	agg, err := sampler.Sweep(context.Background(), cfg, sampler.Options{})
//
// Dive into each package's doc.go for the algorithmic details, invariants,
// and complexity guarantees.
package lowdepthflagqec
