// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/qtlattice/metrics"
)

// Option customizes a Lattice at construction.
type Option func(*config)

type config struct {
	log zerolog.Logger
	rec *metrics.Recorder
}

func newConfig(opts ...Option) config {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger attaches a logger. Construction, entangle passes and readout
// decoding are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithRecorder attaches a metrics recorder for readout decoding.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *config) {
		c.rec = r
	}
}
