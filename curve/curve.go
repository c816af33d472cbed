// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// curve.go — the Curve contract and the special-point result types.

package curve

import (
	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

// Curve is a parametric plane curve.
//
// ClosurePeriod returns the angular span (radians) after which the trace
// repeats exactly, or 0 when the curve is degenerate or never closes.
// Callers MUST treat 0 as "nothing to sample" and never divide by it.
type Curve interface {
	Tag() string
	Point(theta float64) geom.Point
	ClosurePeriod() float64
	Signature() string
	Record() params.Record
}

// Analyzer is implemented by curves whose notable points can be located.
type Analyzer interface {
	SpecialPoints() SpecialPoints
}

// Angle is a curve parameter together with the point it maps to.
type Angle struct {
	Theta float64
	At    geom.Point
}

// DoublePoint is a location visited at two or more distinct angles within
// one closure period.
type DoublePoint struct {
	At     geom.Point
	Thetas []float64
}

// SpecialPoints groups the notable points of a curve over one period.
type SpecialPoints struct {
	Zeros        []Angle
	DoublePoints []DoublePoint
	Peaks        []Angle
}

// Empty reports whether no special point was found.
func (s SpecialPoints) Empty() bool {
	return len(s.Zeros) == 0 && len(s.DoublePoints) == 0 && len(s.Peaks) == 0
}
