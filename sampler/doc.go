// Package sampler drives Monte-Carlo estimation of the logical error rate:
// it runs independent error-correction rounds per physical noise rate,
// detects logical errors via an error-free resynchronization pass, and
// aggregates counts — optionally across concurrent workers.
//
// One round:
//
//  1. Prepare the ancilla in |0⟩ and the flag in |+⟩ at rate p.
//  2. Run the flag syndrome-extraction protocol once at rate p and apply the
//     table correction.
//  3. Resynchronize: snapshot the accumulator, repeat extraction + decoding
//     at p = 0 (an error-free diagnostic pass that absorbs residual
//     low-weight errors the noisy decode under-corrected).
//  4. Project the accumulator onto the data qubits and test symplectic
//     commutation against every logical operator. Any anticommutation counts
//     as a logical error and the frame is rebuilt fresh; otherwise the
//     pre-resynchronization snapshot is restored: the diagnostic pass must
//     not leak into the next round's initial error state.
//
// Sweeps:
//
//	Sweep partitions SamplesPerPoint rounds per rate across Workers ranks,
//	remainder to the lowest ranks. Rounds are i.i.d., so workers run
//	embarrassingly parallel with independently seeded random streams (seed
//	derived from the base seed and rank) and no synchronization until the
//	final gather: each rank sends one Result per rate on a channel, and the
//	coordinator blocks until one message per (rank, rate) pair has arrived,
//	then sums counts and batch sizes into an Aggregate. SweepSequential runs
//	the identical rank partition in a single goroutine — same streams, same
//	counts — which is also how the distributed path is validated.
//
// Cancellation is deliberately coarse: the context is consulted only between
// per-rate batches, never mid-round (a round is cheap, O(N), and partial
// batches are not aggregated).
//
// Configuration is a plain YAML-loadable Config; operational knobs (logger,
// noise model, table, code assets) live in Options, with zero values filled
// by DefaultOptions/normalize.
package sampler
