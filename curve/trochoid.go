// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// trochoid.go — Epitrochoid and Lissajous.
//
// Both are driven by two integer frequencies; the closure period follows
// from their ratio reduced by gcd, and the special-point grid uses the
// reduced pair (p, q) with spacing π/(p·q).

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/modular"
	"github.com/katalvlaran/rosette/params"
)

const (
	TagEpitrochoid = "epitrochoid"
	TagLissajous   = "lissajous"
)

// Epitrochoid is traced by a point at distance Arm from the centre of a
// circle of radius RollingRadius rolling outside a fixed circle of radius
// FixedRadius:
//
//	x = (R+r)·cos θ − d·cos(((R+r)/r)·θ)
//	y = (R+r)·sin θ − d·sin(((R+r)/r)·θ)
//
// The result is scaled so its outer extent R+r+|d| equals Amplitude.
type Epitrochoid struct {
	FixedRadius   int
	RollingRadius int
	Arm           float64
	Amplitude     float64
	Rotation      float64
}

var epitrochoidSchema = params.Schema{
	{Name: "fixed_radius", Kind: params.KindInt, Default: 3, Min: 1, Max: 50},
	{Name: "rolling_radius", Kind: params.KindInt, Default: 1, Min: 1, Max: 50},
	{Name: "arm", Kind: params.KindFloat, Default: 1, Min: 0, Max: 50},
	{Name: "amplitude", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func epitrochoidFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagEpitrochoid, rec, epitrochoidSchema)
	c := Epitrochoid{
		FixedRadius:   r.Int("fixed_radius"),
		RollingRadius: r.Int("rolling_radius"),
		Arm:           r.Float("arm"),
		Amplitude:     r.Float("amplitude"),
		Rotation:      r.Float("rotation"),
	}

	return done(c, r.Err())
}

func (Epitrochoid) Tag() string { return TagEpitrochoid }

// frequencies returns the reduced ratio (R+r)/r as p/q.
func (c Epitrochoid) frequencies() (p, q int, ok bool) {
	return reduceRatio(c.FixedRadius+c.RollingRadius, c.RollingRadius)
}

func (c Epitrochoid) Point(theta float64) geom.Point {
	if c.RollingRadius == 0 {
		return geom.Point{}
	}
	sum := float64(c.FixedRadius + c.RollingRadius)
	extent := math.Abs(sum) + math.Abs(c.Arm)
	if extent == 0 {
		return geom.Point{}
	}
	k := sum / float64(c.RollingRadius)
	x := sum*math.Cos(theta) - c.Arm*math.Cos(k*theta)
	y := sum*math.Sin(theta) - c.Arm*math.Sin(k*theta)

	return geom.Pt(x, y).Scale(c.Amplitude / extent).Rotate(c.Rotation)
}

// ClosurePeriod is 2π·q where (R+r)/r = p/q in lowest terms; 0 for r = 0.
func (c Epitrochoid) ClosurePeriod() float64 {
	_, q, ok := c.frequencies()
	if !ok {
		return 0
	}

	return tau * float64(q)
}

func (c Epitrochoid) Record() params.Record {
	return params.Record{
		params.TagKey:    TagEpitrochoid,
		"fixed_radius":   c.FixedRadius,
		"rolling_radius": c.RollingRadius,
		"arm":            c.Arm,
		"amplitude":      c.Amplitude,
		"rotation":       c.Rotation,
	}
}

func (c Epitrochoid) Signature() string { return c.Record().Signature() }

func (c Epitrochoid) SpecialPoints() SpecialPoints {
	p, q, ok := c.frequencies()
	if !ok {
		return SpecialPoints{}
	}

	return analyze(c, positive(p), positive(q), math.Abs(c.Amplitude))
}

// Lissajous is x = A·sin(a·θ + δ), y = A·sin(b·θ), turned by Rotation.
type Lissajous struct {
	A         int
	B         int
	Phase     float64
	Amplitude float64
	Rotation  float64
}

var lissajousSchema = params.Schema{
	{Name: "a", Kind: params.KindInt, Default: 3, Min: 1, Max: 50},
	{Name: "b", Kind: params.KindInt, Default: 2, Min: 1, Max: 50},
	{Name: "phase", Kind: params.KindAngle, Default: math.Pi / 2, Min: -math.Pi, Max: math.Pi},
	{Name: "amplitude", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func lissajousFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagLissajous, rec, lissajousSchema)
	c := Lissajous{
		A:         r.Int("a"),
		B:         r.Int("b"),
		Phase:     r.Float("phase"),
		Amplitude: r.Float("amplitude"),
		Rotation:  r.Float("rotation"),
	}

	return done(c, r.Err())
}

func (Lissajous) Tag() string { return TagLissajous }

func (c Lissajous) Point(theta float64) geom.Point {
	x := c.Amplitude * math.Sin(float64(c.A)*theta+c.Phase)
	y := c.Amplitude * math.Sin(float64(c.B)*theta)

	return geom.Pt(x, y).Rotate(c.Rotation)
}

// ClosurePeriod is 2π/gcd(a,b); 0 when both frequencies are 0.
func (c Lissajous) ClosurePeriod() float64 {
	return turnsForFrequencies(c.A, c.B)
}

func (c Lissajous) Record() params.Record {
	return params.Record{
		params.TagKey: TagLissajous,
		"a":           c.A,
		"b":           c.B,
		"phase":       c.Phase,
		"amplitude":   c.Amplitude,
		"rotation":    c.Rotation,
	}
}

func (c Lissajous) Signature() string { return c.Record().Signature() }

func (c Lissajous) SpecialPoints() SpecialPoints {
	g := modular.GCD(c.A, c.B)
	if g == 0 {
		return SpecialPoints{}
	}

	return analyze(c, positive(c.A/g), positive(c.B/g), math.Abs(c.Amplitude)*math.Sqrt2)
}
