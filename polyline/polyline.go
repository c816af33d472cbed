// SPDX-License-Identifier: MIT
// Package: rosette/polyline
//
// polyline.go — Polyline type and the curve × sequencer builders.
//
// Complexity: O(len(walk)) curve evaluations per polyline.

package polyline

import (
	"github.com/katalvlaran/rosette/curve"
	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/sequencer"
)

// Polyline is an ordered list of vertices joined by straight chords.
type Polyline []geom.Point

// Segments returns the number of chords, len−1 (0 for fewer than 2 points).
func (p Polyline) Segments() int {
	if len(p) < 2 {
		return 0
	}

	return len(p) - 1
}

// Closed reports whether the last vertex lies within eps of the first.
func (p Polyline) Closed(eps float64) bool {
	return len(p) >= 2 && p[0].Near(p[len(p)-1], eps)
}

// Points returns the vertices as a plain slice.
func (p Polyline) Points() []geom.Point { return p }

// Build samples c at the indices of s.Generate(n, offset).
func Build(c curve.Curve, s sequencer.Sequencer, n, offset int) Polyline {
	p, _ := BuildWithIndices(c, s, n, offset)
	return p
}

// BuildWithIndices is Build that also returns the walk it followed.
func BuildWithIndices(c curve.Curve, s sequencer.Sequencer, n, offset int) (Polyline, []int) {
	if c == nil || s == nil || n <= 0 {
		return nil, nil
	}
	period := c.ClosurePeriod()
	if period == 0 {
		return nil, nil
	}
	walk := s.Generate(n, offset)
	step := period / float64(n)

	p := make(Polyline, len(walk))
	for i, k := range walk {
		p[i] = c.Point(float64(k) * step)
	}

	return p, walk
}

// BuildCosets returns one polyline per coset of s over Z_n. Sequencers
// without cosets yield the single walk from index 0.
func BuildCosets(c curve.Curve, s sequencer.Sequencer, n int) []Polyline {
	if s == nil {
		return nil
	}
	starts := s.Cosets(n)
	if starts == nil {
		starts = []int{0}
	}
	out := make([]Polyline, 0, len(starts))
	for _, st := range starts {
		if p := Build(c, s, n, st); len(p) > 0 {
			out = append(out, p)
		}
	}

	return out
}

// IsDegenerate reports whether every vertex of p lies within eps of the
// first. An empty polyline is degenerate.
func IsDegenerate(p Polyline, eps float64) bool {
	if len(p) == 0 {
		return true
	}
	for _, q := range p[1:] {
		if !q.Near(p[0], eps) {
			return false
		}
	}

	return true
}

// Bounds returns the axis-aligned bounding box of p. ok is false for an
// empty polyline.
func Bounds(p Polyline) (lo, hi geom.Point, ok bool) {
	if len(p) == 0 {
		return geom.Point{}, geom.Point{}, false
	}
	lo, hi = p[0], p[0]
	for _, q := range p[1:] {
		lo.X, lo.Y = min(lo.X, q.X), min(lo.Y, q.Y)
		hi.X, hi.Y = max(hi.X, q.X), max(hi.Y, q.Y)
	}

	return lo, hi, true
}
