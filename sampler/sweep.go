package sampler

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is one worker's contribution for one rate: the distributed result
// record gathered by the coordinator.
type Result struct {
	Rank      int
	Rate      float64
	BatchSize int
	Count     int
}

// Aggregate is the coordinator's summed output for a whole sweep.
type Aggregate struct {
	// RunID identifies this sweep run in logs and downstream records.
	RunID string

	// Counts maps each rate to the summed logical-error count.
	Counts map[float64]int

	// Samples maps each rate to the summed batch sizes (== SamplesPerPoint).
	Samples map[float64]int

	// TotalSamples is the sum of all batch sizes over all (rank, rate) pairs.
	TotalSamples int

	// Results holds every gathered per-worker record, for auditing.
	Results []Result
}

// Probability returns the estimated logical error rate at the given physical
// rate, or 0 when the rate was not part of the sweep.
func (a Aggregate) Probability(rate float64) float64 {
	n := a.Samples[rate]
	if n == 0 {
		return 0
	}
	return float64(a.Counts[rate]) / float64(n)
}

// batchSize returns rank's share of the per-rate round budget: an even split
// with the remainder going to the lowest ranks.
func batchSize(samples, workers, rank int) int {
	n := samples / workers
	if rank < samples%workers {
		n++
	}
	return n
}

// Sweep runs the configured rate sweep across cfg.Workers concurrent ranks
// and gathers their results.
//
// Steps:
//  1. Validate cfg, normalize opts, mint a run ID.
//  2. Start one goroutine per rank. Each rank derives its own seeded stream,
//     then for every rate runs its batch to completion (the context is
//     consulted only between batches — rounds never suspend) and sends one
//     Result on the gather channel.
//  3. The coordinator drains exactly workers·len(rates) results, summing
//     counts and batch sizes per rate.
//
// Rounds are i.i.d., so no synchronization exists apart from the final
// gather. Sweep returns the first worker error, if any (protocol-invariant
// violations or cancellation; both are fatal to the run).
func Sweep(ctx context.Context, cfg Config, opts Options) (Aggregate, error) {
	if err := cfg.Validate(); err != nil {
		return Aggregate{}, err
	}
	opts.normalize(cfg)

	agg := newAggregate()
	logger := opts.Logger.With(zap.String("run_id", agg.RunID))
	logger.Info("sweep starting",
		zap.Int("workers", cfg.Workers),
		zap.Int("rates", len(cfg.Rates)),
		zap.Int("samples_per_point", cfg.SamplesPerPoint),
	)

	results := make(chan Result, cfg.Workers*len(cfg.Rates))
	eg, egCtx := errgroup.WithContext(ctx)
	for rank := 0; rank < cfg.Workers; rank++ {
		rank := rank
		eg.Go(func() error {
			return runRank(egCtx, rank, cfg, &opts, results)
		})
	}

	// Close the gather channel once every rank has reported (or failed).
	errc := make(chan error, 1)
	go func() {
		errc <- eg.Wait()
		close(results)
	}()

	// Final gather: one Result per (rank, rate) pair.
	for res := range results {
		logger.Info("batch complete",
			zap.Int("rank", res.Rank),
			zap.Float64("rate", res.Rate),
			zap.Int("batch_size", res.BatchSize),
			zap.Int("count", res.Count),
		)
		agg.add(res)
	}
	if err := <-errc; err != nil {
		return Aggregate{}, err
	}

	logger.Info("sweep complete", zap.Int("total_samples", agg.TotalSamples))
	return *agg, nil
}

// SweepSequential runs the identical rank partition of Sweep in a single
// goroutine: same per-rank streams, same batch sizes, same counts. It exists
// for deterministic replay and for validating the concurrent path.
func SweepSequential(ctx context.Context, cfg Config, opts Options) (Aggregate, error) {
	if err := cfg.Validate(); err != nil {
		return Aggregate{}, err
	}
	opts.normalize(cfg)

	agg := newAggregate()
	results := make(chan Result, cfg.Workers*len(cfg.Rates))
	for rank := 0; rank < cfg.Workers; rank++ {
		if err := runRank(ctx, rank, cfg, &opts, results); err != nil {
			return Aggregate{}, err
		}
	}
	close(results)
	for res := range results {
		agg.add(res)
	}
	return *agg, nil
}

// runRank is one worker's whole sweep: its batch for every rate, in rate
// order, on its own random stream.
func runRank(ctx context.Context, rank int, cfg Config, opts *Options, results chan<- Result) error {
	w, err := newWorker(rank, workerSeed(cfg.Seed, rank), opts)
	if err != nil {
		return err
	}
	n := batchSize(cfg.SamplesPerPoint, cfg.Workers, rank)
	for _, rate := range cfg.Rates {
		if err = ctx.Err(); err != nil {
			return err
		}
		count, err := w.runBatch(rate, n)
		if err != nil {
			return err
		}
		results <- Result{Rank: rank, Rate: rate, BatchSize: n, Count: count}
	}
	return nil
}

func newAggregate() *Aggregate {
	return &Aggregate{
		RunID:   uuid.NewString(),
		Counts:  make(map[float64]int),
		Samples: make(map[float64]int),
	}
}

func (a *Aggregate) add(res Result) {
	a.Counts[res.Rate] += res.Count
	a.Samples[res.Rate] += res.BatchSize
	a.TotalSamples += res.BatchSize
	a.Results = append(a.Results, res)
}
