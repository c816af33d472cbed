// SPDX-License-Identifier: MIT
// Package: rosette/studio
//
// options.go — Engine configuration.

package studio

import (
	"time"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/rosette/resample"
)

// DefaultCacheTTL is how long a render stays memoised.
const DefaultCacheTTL = 5 * time.Minute

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger    l.Wrapper
	cacheTTL  time.Duration
	threshold int
	special   bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		cacheTTL:  DefaultCacheTTL,
		threshold: resample.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = l.NewNopLoggerWrapper()
	}

	return cfg
}

// WithLogger sets the logger. nil keeps the no-op default.
func WithLogger(logger l.Wrapper) Option {
	return func(c *config) { c.logger = logger }
}

// WithCacheTTL sets the render memo lifetime; 0 disables memoisation.
// Panics on d < 0.
func WithCacheTTL(d time.Duration) Option {
	if d < 0 {
		panic(ErrBadTTL.Error())
	}

	return func(c *config) { c.cacheTTL = d }
}

// WithThreshold sets the default LCM bound for Blend. Panics on n < 0.
func WithThreshold(n int) Option {
	if n < 0 {
		panic(resample.ErrBadThreshold.Error())
	}

	return func(c *config) { c.threshold = n }
}

// WithSpecialPoints makes Render analyse curves that support it.
func WithSpecialPoints() Option {
	return func(c *config) { c.special = true }
}
