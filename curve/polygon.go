// SPDX-License-Identifier: MIT
// Package: rosette/curve

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

const (
	TagPolygon = "polygon"

	minPolygonSides = 3
)

// RegularPolygon is the boundary of a regular polygon with Sides vertices on
// the circle of the given Radius. Point(θ) is where the ray at angle θ meets
// the boundary, so equal angular steps land on the edges, not only at the
// corners.
type RegularPolygon struct {
	Sides    int
	Radius   float64
	Rotation float64
}

var polygonSchema = params.Schema{
	{Name: "sides", Kind: params.KindInt, Default: 5, Min: minPolygonSides, Max: 64},
	{Name: "radius", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func polygonFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagPolygon, rec, polygonSchema)
	c := RegularPolygon{Sides: r.Int("sides"), Radius: r.Float("radius"), Rotation: r.Float("rotation")}

	return done(c, r.Err())
}

func (RegularPolygon) Tag() string { return TagPolygon }

// Point uses the polar equation of a regular m-gon:
// r(θ) = R·cos(π/m) / cos((θ mod 2π/m) − π/m).
func (c RegularPolygon) Point(theta float64) geom.Point {
	if c.Sides < minPolygonSides {
		return geom.Point{}
	}
	m := float64(c.Sides)
	sector := tau / m
	local := math.Mod(theta, sector)
	if local < 0 {
		local += sector
	}
	r := c.Radius * math.Cos(math.Pi/m) / math.Cos(local-math.Pi/m)

	return geom.Polar(r, theta+c.Rotation)
}

// ClosurePeriod is 2π, or 0 for fewer than three sides.
func (c RegularPolygon) ClosurePeriod() float64 {
	if c.Sides < minPolygonSides {
		return 0
	}

	return tau
}

func (c RegularPolygon) Record() params.Record {
	return params.Record{params.TagKey: TagPolygon, "sides": c.Sides, "radius": c.Radius, "rotation": c.Rotation}
}

func (c RegularPolygon) Signature() string { return c.Record().Signature() }
