// SPDX-License-Identifier: MIT

// Functional configuration for batch evaluation (HypervolumeAll).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - A limit of 0 disables that limit.

package concept

import (
	"io"
	"log/slog"
)

// Defaults for HypervolumeAll.
const (
	// DefaultMaxDimensions rejects concepts over more dimensions; the inner
	// sum has 2^n terms per box.
	DefaultMaxDimensions = 20

	// DefaultMaxBoxes rejects concepts with more boxes; inclusion-exclusion
	// visits 2^K − 1 box subsets.
	DefaultMaxBoxes = 16

	// DefaultConcurrency is the number of hypervolumes computed in parallel.
	DefaultConcurrency = 4
)

const (
	panicMaxDimensions = "concept: WithMaxDimensions: limit must be >= 0"
	panicMaxBoxes      = "concept: WithMaxBoxes: limit must be >= 0"
	panicConcurrency   = "concept: WithConcurrency: workers must be >= 1"
)

// Option mutates batch options.
type Option func(*options)

type options struct {
	maxDimensions int
	maxBoxes      int
	concurrency   int
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		maxDimensions: DefaultMaxDimensions,
		maxBoxes:      DefaultMaxBoxes,
		concurrency:   DefaultConcurrency,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMaxDimensions sets the dimension limit (0 = unlimited).
func WithMaxDimensions(n int) Option {
	if n < 0 {
		panic(panicMaxDimensions)
	}
	return func(o *options) { o.maxDimensions = n }
}

// WithMaxBoxes sets the box limit (0 = unlimited).
func WithMaxBoxes(n int) Option {
	if n < 0 {
		panic(panicMaxBoxes)
	}
	return func(o *options) { o.maxBoxes = n }
}

// WithConcurrency sets how many hypervolumes run at once.
func WithConcurrency(workers int) Option {
	if workers < 1 {
		panic(panicConcurrency)
	}
	return func(o *options) { o.concurrency = workers }
}

// WithLogger routes debug output to logger. nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
