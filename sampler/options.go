package sampler

import (
	"go.uber.org/zap"

	"github.com/dhruvbhq/lowdepthflagqec/decoder"
	"github.com/dhruvbhq/lowdepthflagqec/fivequbit"
	"github.com/dhruvbhq/lowdepthflagqec/noise"
	"github.com/dhruvbhq/lowdepthflagqec/pauliframe"
	"github.com/dhruvbhq/lowdepthflagqec/protocol"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

// Options carries the operational collaborators of a sweep. Zero values are
// filled by normalize(): nop logger, circuit-level noise, and the five-qubit
// code assets.
type Options struct {
	// Logger receives sweep progress. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Model is the noise model. Defaults to circuit-level noise.
	Model *noise.Model

	// Table is the decoder lookup table. When nil, the variant named by
	// Config.Table is resolved (min-weight by default).
	Table decoder.Table

	// Layout is the qubit layout. Defaults to the five-qubit code's.
	Layout pauliframe.Layout

	// Generators are the stabilizer generators measured per round.
	// Defaults to the five-qubit code's.
	Generators []protocol.Generator

	// Logicals is the logical operator set tested for anticommutation.
	// Defaults to the five-qubit code's.
	Logicals *symplectic.Matrix
}

// DefaultOptions returns fully populated Options for the five-qubit code.
func DefaultOptions() Options {
	opts := Options{}
	opts.normalize(DefaultConfig())
	return opts
}

// normalize fills zero-valued fields with defaults and resolves the table
// variant from cfg. Returns ErrUnknownTable (already guarded by
// Config.Validate) if the variant name is unrecognized.
func (o *Options) normalize(cfg Config) {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Model == nil {
		m := noise.NewModel(noise.CircuitLevel)
		o.Model = &m
	}
	if o.Layout.Total() == 0 {
		o.Layout = fivequbit.Layout()
	}
	if o.Generators == nil {
		o.Generators = fivequbit.Generators()
	}
	if o.Logicals == nil {
		o.Logicals = fivequbit.Logicals()
	}
	if o.Table == nil {
		if cfg.Table == TableHighWeight {
			o.Table = fivequbit.HighWeightTable()
		} else {
			o.Table = fivequbit.MinWeightTable()
		}
	}
}
