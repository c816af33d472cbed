// SPDX-License-Identifier: MIT
// Package: rosette/coincidence
//
// solver.go — Solver bundles the queries for one modulus and one pair of
// offsets.
//
// Options:
//   • WithOffsets(a, b) – offsets of sequence A and B (default 0, 0).
//   • WithLimit(k)      – keep only the first k results of a search
//                         (default 0: no limit). Panics on k < 0.

package coincidence

import "fmt"

// Options configures a Solver.
type Options struct {
	OffsetA int // offset of the reference sequence
	OffsetB int // offset of the partner sequence
	Limit   int // maximum results per search; 0 means all
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithOffsets sets both sequence offsets.
func WithOffsets(a, b int) Option {
	return func(o *Options) {
		o.OffsetA, o.OffsetB = a, b
	}
}

// WithLimit caps the number of results returned by inverse searches.
// A negative k panics with ErrBadLimit.
func WithLimit(k int) Option {
	if k < 0 {
		panic(ErrBadLimit.Error())
	}

	return func(o *Options) {
		o.Limit = k
	}
}

// Solver answers coincidence queries over a fixed Z_n.
type Solver struct {
	n    int
	opts Options
}

// NewSolver returns a Solver over Z_n, or ErrBadModulus for n ≤ 0.
func NewSolver(n int, opts ...Option) (*Solver, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewSolver: n=%d: %w", n, ErrBadModulus)
	}
	s := &Solver{n: n}
	for _, opt := range opts {
		opt(&s.opts)
	}

	return s, nil
}

// N returns the modulus.
func (s *Solver) N() int { return s.n }

// Options returns the effective configuration.
func (s *Solver) Options() Options { return s.opts }

// Count returns the number of coincidences between gA and gB.
func (s *Solver) Count(gA, gB int) int {
	return Count(s.n, gA, gB, s.opts.OffsetA, s.opts.OffsetB)
}

// Indices returns the coincident indices between gA and gB.
func (s *Solver) Indices(gA, gB int) []int {
	return Indices(s.n, gA, gB, s.opts.OffsetA, s.opts.OffsetB)
}

// Any returns partners of g with at least one coincidence.
func (s *Solver) Any(g int) []int {
	return limit(FindAny(s.n, g, s.opts.OffsetA, s.opts.OffsetB), s.opts.Limit)
}

// Exact returns partners of g with exactly count coincidences.
func (s *Solver) Exact(g, count int) []int {
	return limit(FindExactCount(s.n, g, count, s.opts.OffsetA, s.opts.OffsetB), s.opts.Limit)
}

// Range returns partners of g whose count lies in [lo, hi].
func (s *Solver) Range(g, lo, hi int) []Candidate {
	return limit(FindCountRange(s.n, g, lo, hi, s.opts.OffsetA, s.opts.OffsetB), s.opts.Limit)
}

// ForIndices returns partners of g that coincide at every index.
func (s *Solver) ForIndices(g int, indices []int) []int {
	return limit(FindForIndices(s.n, g, indices, s.opts.OffsetA, s.opts.OffsetB), s.opts.Limit)
}

func limit[T any](xs []T, k int) []T {
	if k > 0 && len(xs) > k {
		return xs[:k]
	}

	return xs
}
