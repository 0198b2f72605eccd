package sampler

import "errors"

// Sentinel errors for sweep configuration. Matched via errors.Is.
var (
	// ErrNoRates indicates an empty physical-rate list.
	ErrNoRates = errors.New("sampler: at least one physical rate is required")

	// ErrBadSamples indicates SamplesPerPoint < 1.
	ErrBadSamples = errors.New("sampler: samples per point must be positive")

	// ErrBadWorkers indicates Workers < 1 or Workers > SamplesPerPoint.
	ErrBadWorkers = errors.New("sampler: worker count must be in [1, samples per point]")

	// ErrUnknownTable indicates an unrecognized lookup-table variant name.
	ErrUnknownTable = errors.New("sampler: unknown lookup-table variant")
)
