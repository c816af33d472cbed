// SPDX-License-Identifier: MIT
// Package: rosette/resample
//
// options.go — functional options for Match and Interpolate.

package resample

const (
	// DefaultCeiling is the approximate sample count used when the
	// threshold is 0.
	DefaultCeiling = 20000

	// DefaultThreshold bounds exact matching when no option is given.
	DefaultThreshold = DefaultCeiling

	// DefaultConnectorSamples is the sub-segment count per deformed chord.
	DefaultConnectorSamples = 8
)

// Option configures Match and Interpolate.
type Option func(*config)

type config struct {
	threshold int
	connector Connector
	samples   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		threshold: DefaultThreshold,
		connector: Straight{},
		samples:   DefaultConnectorSamples,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithThreshold bounds the LCM used for exact matching. Above it, or when n
// is 0, matching falls back to approximate sampling with n points (or
// DefaultCeiling for n = 0). Panics on n < 0.
func WithThreshold(n int) Option {
	if n < 0 {
		panic(ErrBadThreshold.Error())
	}

	return func(c *config) { c.threshold = n }
}

// WithConnector sets the chord shape applied by Interpolate. Panics on nil.
func WithConnector(conn Connector) Option {
	if conn == nil {
		panic(ErrNilConnector.Error())
	}

	return func(c *config) { c.connector = conn }
}

// WithConnectorSamples sets how many sub-segments replace each chord.
// Panics on k < 1.
func WithConnectorSamples(k int) Option {
	if k < 1 {
		panic(ErrBadSamples.Error())
	}

	return func(c *config) { c.samples = k }
}
