// SPDX-License-Identifier: MIT
// Package: rosette/resample
//
// match.go — segment-count matching policy, chord deformation and the
// Interpolate pipeline.
//
// Policy (segA ≠ segB):
//   target = lcm(segA, segB)
//   threshold == 0 or target > threshold  → Approx to threshold (or
//                                           DefaultCeiling), ModeApproximate
//   otherwise                             → Exact to target, ModeExactResample
//
// Complexity: O(max(target, threshold)) points per side.

package resample

import (
	"fmt"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/modular"
)

// Mode records how two polylines were brought to a common length.
type Mode int

const (
	ModeExactMatch    Mode = iota // counts were already equal
	ModeExactResample             // both subdivided to the LCM
	ModeApproximate               // both sampled by fractional index
)

func (m Mode) String() string {
	switch m {
	case ModeExactMatch:
		return "Exact Match"
	case ModeExactResample:
		return "Exact Resample"
	case ModeApproximate:
		return "Approximate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Exact reports whether every input vertex survived matching.
func (m Mode) Exact() bool { return m != ModeApproximate }

// Matched holds two polylines of equal length.
type Matched struct {
	A, B     []geom.Point
	Mode     Mode
	Segments int
}

// Result is the outcome of Interpolate.
type Result struct {
	Points   []geom.Point
	Mode     Mode
	Segments int
}

// Match resamples a and b to a common segment count.
func Match(a, b []geom.Point, opts ...Option) (Matched, error) {
	cfg := newConfig(opts...)
	return match(a, b, cfg)
}

func match(a, b []geom.Point, cfg config) (Matched, error) {
	if len(a) < 2 || len(b) < 2 {
		return Matched{}, fmt.Errorf("Match: %d and %d points: %w", len(a), len(b), ErrTooFewPoints)
	}
	segA, segB := len(a)-1, len(b)-1
	if segA == segB {
		return Matched{A: clone(a), B: clone(b), Mode: ModeExactMatch, Segments: segA}, nil
	}

	target := modular.LCM(segA, segB)
	if cfg.threshold == 0 || target > cfg.threshold {
		n := cfg.threshold
		if n == 0 {
			n = DefaultCeiling
		}
		ra, err := Approx(a, n)
		if err != nil {
			return Matched{}, fmt.Errorf("Match: %w", err)
		}
		rb, err := Approx(b, n)
		if err != nil {
			return Matched{}, fmt.Errorf("Match: %w", err)
		}
		return Matched{A: ra, B: rb, Mode: ModeApproximate, Segments: n}, nil
	}

	ra, err := Exact(a, target)
	if err != nil {
		return Matched{}, fmt.Errorf("Match: %w", err)
	}
	rb, err := Exact(b, target)
	if err != nil {
		return Matched{}, fmt.Errorf("Match: %w", err)
	}

	return Matched{A: ra, B: rb, Mode: ModeExactResample, Segments: target}, nil
}

// Deform replaces every chord of points by samples sub-segments traced along
// conn. Straight connectors and samples ≤ 1 return a copy of points.
func Deform(points []geom.Point, conn Connector, samples int) []geom.Point {
	if _, straight := conn.(Straight); conn == nil || straight || samples <= 1 || len(points) < 2 {
		return clone(points)
	}

	segs := len(points) - 1
	out := make([]geom.Point, 0, segs*samples+1)
	for i := 0; i < segs; i++ {
		a, b := points[i], points[i+1]
		out = append(out, a)
		for j := 1; j < samples; j++ {
			out = append(out, conn.At(a, b, float64(j)/float64(samples)))
		}
	}
	out = append(out, points[segs])

	return out
}

// Interpolate matches a and b, blends them by w and deforms the chords of
// the blend with the configured connector.
func Interpolate(a, b []geom.Point, w float64, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	m, err := match(a, b, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("Interpolate: %w", err)
	}
	blended, err := Blend(m.A, m.B, w)
	if err != nil {
		return Result{}, fmt.Errorf("Interpolate: %w", err)
	}
	pts := Deform(blended, cfg.connector, cfg.samples)

	return Result{Points: pts, Mode: m.Mode, Segments: len(pts) - 1}, nil
}

func clone(p []geom.Point) []geom.Point {
	if p == nil {
		return nil
	}
	out := make([]geom.Point, len(p))
	copy(out, p)

	return out
}
