// SPDX-License-Identifier: MIT
// Package: rosette/resample
//
// connector.go — chord shapes drawn between consecutive vertices.
//
// A connector maps t ∈ [0, 1] to a point on the way from a to b, with
// At(a, b, 0) = a and At(a, b, 1) = b. Displacements are measured along the
// left normal of the chord and scale with its length, so a connector looks
// the same on long and short chords.

package resample

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

const (
	TagStraight = "straight"
	TagWave     = "wave"
	TagBezier   = "bezier"
	TagArc      = "arc"
)

// Connector shapes a single chord.
type Connector interface {
	Tag() string
	At(a, b geom.Point, t float64) geom.Point
	Record() params.Record
}

// Straight is the plain chord.
type Straight struct{}

func (Straight) Tag() string { return TagStraight }

func (Straight) At(a, b geom.Point, t float64) geom.Point { return a.Lerp(b, t) }

func (Straight) Record() params.Record { return params.Record{params.TagKey: TagStraight} }

// Wave displaces the chord by Amplitude·|ab|·sin(2π·Cycles·t). Whole
// numbers of cycles meet both endpoints smoothly.
type Wave struct {
	Amplitude float64
	Cycles    float64
}

func (Wave) Tag() string { return TagWave }

func (c Wave) At(a, b geom.Point, t float64) geom.Point {
	n := b.Sub(a).Normal()
	return a.Lerp(b, t).Add(n.Mul(c.Amplitude * math.Sin(2*math.Pi*c.Cycles*t)))
}

func (c Wave) Record() params.Record {
	return params.Record{params.TagKey: TagWave, "amplitude": c.Amplitude, "cycles": c.Cycles}
}

// Bezier is the quadratic Bézier whose control point sits Bulge·|ab| off
// the chord midpoint.
type Bezier struct {
	Bulge float64
}

func (Bezier) Tag() string { return TagBezier }

func (c Bezier) At(a, b geom.Point, t float64) geom.Point {
	ctrl := a.Midpoint(b).Add(b.Sub(a).Normal().Mul(c.Bulge))
	u := 1 - t

	return geom.Point{
		X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
	}
}

func (c Bezier) Record() params.Record {
	return params.Record{params.TagKey: TagBezier, "bulge": c.Bulge}
}

// Arc is the circular arc through a and b whose sagitta is Bulge·|ab|/2.
// Bulge 1 is a half circle; negative values bend to the right.
type Arc struct {
	Bulge float64
}

func (Arc) Tag() string { return TagArc }

func (c Arc) At(a, b geom.Point, t float64) geom.Point {
	chord := b.Sub(a)
	L := chord.Hypot()
	s := c.Bulge * L / 2
	if L == 0 || math.Abs(s) < 1e-12*L {
		return a.Lerp(b, t)
	}
	h := L / 2
	R := (h*h + s*s) / (2 * math.Abs(s))
	unit := chord.Normal().Normalize()
	apex := a.Midpoint(b).Add(unit.Mul(s))
	center := apex.Add(unit.Mul(-math.Copysign(R, s)))

	start := math.Atan2(a.Y-center.Y, a.X-center.X)
	mid := math.Atan2(apex.Y-center.Y, apex.X-center.X)
	half := math.Remainder(mid-start, 2*math.Pi)

	theta := start + 2*half*t

	return center.Add(geom.Vec(R*math.Cos(theta), R*math.Sin(theta)))
}

func (c Arc) Record() params.Record {
	return params.Record{params.TagKey: TagArc, "bulge": c.Bulge}
}
