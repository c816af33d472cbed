// SPDX-License-Identifier: MIT
// Package: rosette/curve

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

const TagSuperformula = "superformula"

// Superformula is Gielis' generalisation of the superellipse:
//
//	r(θ) = ( |cos(mθ/4)/a|^n2 + |sin(mθ/4)/b|^n3 )^(−1/n1)
//
// M is integral so the curve closes.
type Superformula struct {
	M         int
	N1        float64
	N2        float64
	N3        float64
	A         float64
	B         float64
	Amplitude float64
	Rotation  float64
}

var superformulaSchema = params.Schema{
	{Name: "m", Kind: params.KindInt, Default: 6, Min: 0, Max: 64},
	{Name: "n1", Kind: params.KindFloat, Default: 1, Min: 0.01, Max: 100},
	{Name: "n2", Kind: params.KindFloat, Default: 7, Min: 0, Max: 100},
	{Name: "n3", Kind: params.KindFloat, Default: 8, Min: 0, Max: 100},
	{Name: "a", Kind: params.KindFloat, Default: 1, Min: 0.01, Max: 10},
	{Name: "b", Kind: params.KindFloat, Default: 1, Min: 0.01, Max: 10},
	{Name: "amplitude", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func superformulaFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagSuperformula, rec, superformulaSchema)
	c := Superformula{
		M:         r.Int("m"),
		N1:        r.Float("n1"),
		N2:        r.Float("n2"),
		N3:        r.Float("n3"),
		A:         r.Float("a"),
		B:         r.Float("b"),
		Amplitude: r.Float("amplitude"),
		Rotation:  r.Float("rotation"),
	}

	return done(c, r.Err())
}

func (Superformula) Tag() string { return TagSuperformula }

func (c Superformula) degenerate() bool {
	return c.N1 == 0 || c.A == 0 || c.B == 0
}

// Point returns the origin for degenerate parameters or non-finite radii.
func (c Superformula) Point(theta float64) geom.Point {
	if c.degenerate() {
		return geom.Point{}
	}
	phi := float64(c.M) * theta / 4
	t1 := math.Pow(math.Abs(math.Cos(phi)/c.A), c.N2)
	t2 := math.Pow(math.Abs(math.Sin(phi)/c.B), c.N3)
	r := math.Pow(t1+t2, -1/c.N1)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return geom.Point{}
	}

	return geom.Polar(c.Amplitude*r, theta+c.Rotation)
}

// ClosurePeriod: |cos| and |sin| of mθ/4 repeat after 4π/m, so the trace
// closes after 2π for even m and 4π for odd m.
func (c Superformula) ClosurePeriod() float64 {
	if c.degenerate() {
		return 0
	}
	if c.M%2 == 0 {
		return tau
	}

	return 2 * tau
}

func (c Superformula) Record() params.Record {
	return params.Record{
		params.TagKey: TagSuperformula,
		"m":           c.M,
		"n1":          c.N1,
		"n2":          c.N2,
		"n3":          c.N3,
		"a":           c.A,
		"b":           c.B,
		"amplitude":   c.Amplitude,
		"rotation":    c.Rotation,
	}
}

func (c Superformula) Signature() string { return c.Record().Signature() }
