// SPDX-License-Identifier: MIT
// Package: rosette/curve

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

const TagCircle = "circle"

// Circle is the circle of the given radius about the origin.
type Circle struct {
	Radius   float64
	Rotation float64
}

var circleSchema = params.Schema{
	{Name: "radius", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func circleFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagCircle, rec, circleSchema)
	c := Circle{Radius: r.Float("radius"), Rotation: r.Float("rotation")}

	return done(c, r.Err())
}

func (Circle) Tag() string { return TagCircle }

func (c Circle) Point(theta float64) geom.Point {
	return geom.Polar(c.Radius, theta+c.Rotation)
}

func (Circle) ClosurePeriod() float64 { return tau }

func (c Circle) Record() params.Record {
	return params.Record{params.TagKey: TagCircle, "radius": c.Radius, "rotation": c.Rotation}
}

func (c Circle) Signature() string { return c.Record().Signature() }
