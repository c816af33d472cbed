// SPDX-License-Identifier: MIT
// Package: rosette/resample
//
// resample.go — Exact, Approx and Blend.
//
// Contract:
//   • Exact keeps input vertex i at output index i·k and the final point.
//   • Approx always emits exactly target+1 points, first and last exact.
//   • Blend(p, p, w) == p for every w.
//   • Inputs are never mutated.

package resample

import (
	"fmt"

	"github.com/katalvlaran/rosette/geom"
)

// Exact subdivides every segment of points into target/(len−1) equal parts.
func Exact(points []geom.Point, target int) ([]geom.Point, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("Exact: %d points: %w", len(points), ErrTooFewPoints)
	}
	segs := len(points) - 1
	if target <= 0 || target%segs != 0 {
		return nil, fmt.Errorf("Exact: target %d is not a multiple of %d: %w", target, segs, ErrNotMultiple)
	}
	k := target / segs

	out := make([]geom.Point, 0, target+1)
	for i := 0; i < segs; i++ {
		a, b := points[i], points[i+1]
		out = append(out, a)
		for j := 1; j < k; j++ {
			out = append(out, a.Lerp(b, float64(j)/float64(k)))
		}
	}
	out = append(out, points[segs])

	return out, nil
}

// Approx samples points at target+1 evenly spaced fractional indices.
func Approx(points []geom.Point, target int) ([]geom.Point, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("Approx: %d points: %w", len(points), ErrTooFewPoints)
	}
	if target <= 0 {
		return nil, fmt.Errorf("Approx: target %d: %w", target, ErrBadTarget)
	}
	last := len(points) - 1

	out := make([]geom.Point, target+1)
	for j := range out {
		t := float64(j) / float64(target) * float64(last)
		i := int(t)
		if i >= last {
			out[j] = points[last]
			continue
		}
		out[j] = points[i].Lerp(points[i+1], t-float64(i))
	}
	out[0], out[target] = points[0], points[last]

	return out, nil
}

// Blend interpolates a and b vertex by vertex. w is clamped to [0, 1]:
// 0 yields a, 1 yields b.
func Blend(a, b []geom.Point, w float64) ([]geom.Point, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Blend: %d vs %d points: %w", len(a), len(b), ErrLengthMismatch)
	}
	w = clamp01(w)

	out := make([]geom.Point, len(a))
	for i := range a {
		out[i] = a[i].Lerp(b[i], w)
	}

	return out, nil
}

func clamp01(w float64) float64 {
	switch {
	case w != w, w < 0: // NaN counts as 0
		return 0
	case w > 1:
		return 1
	default:
		return w
	}
}
