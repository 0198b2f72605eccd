package sampler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lookup-table variant names accepted by Config.Table.
const (
	TableMinWeight  = "min-weight"
	TableHighWeight = "high-weight"
)

// Config is the serializable sweep description.
type Config struct {
	// Rates is the ordered list of physical error probabilities to sweep.
	Rates []float64 `yaml:"rates"`

	// SamplesPerPoint is the number of independent rounds per rate.
	SamplesPerPoint int `yaml:"samples_per_point"`

	// Workers is the number of concurrent sampling ranks. The per-rate
	// round budget is split as evenly as possible, remainder to the lowest
	// ranks.
	Workers int `yaml:"workers"`

	// Seed is the base seed; each rank derives an independent stream from it.
	Seed int64 `yaml:"seed"`

	// Table selects the lookup-table variant: "min-weight" (default) or
	// "high-weight". Ignored when Options.Table is set explicitly.
	Table string `yaml:"table"`
}

// DefaultConfig returns a small, deterministic sweep: one mid-range rate,
// 1000 samples, a single worker, fixed seed, minimum-weight table.
func DefaultConfig() Config {
	return Config{
		Rates:           []float64{1e-3},
		SamplesPerPoint: 1000,
		Workers:         1,
		Seed:            1,
		Table:           TableMinWeight,
	}
}

// LoadConfig reads and validates a YAML Config from path.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sampler: reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("sampler: parsing config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if len(c.Rates) == 0 {
		return ErrNoRates
	}
	if c.SamplesPerPoint < 1 {
		return ErrBadSamples
	}
	if c.Workers < 1 || c.Workers > c.SamplesPerPoint {
		return ErrBadWorkers
	}
	switch c.Table {
	case "", TableMinWeight, TableHighWeight:
		return nil
	default:
		return fmt.Errorf("%q: %w", c.Table, ErrUnknownTable)
	}
}
