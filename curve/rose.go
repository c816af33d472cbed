// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// rose.go — Rose (rhodonea) and BlendedRose.
//
// Closure rule (load-bearing): reduce n/d to n₁/d₁. If n₁ and d₁ are both
// odd the trace closes after d₁·π, otherwise after d₁·2π. The rule decides
// how many sample angles a rosette walk spreads over.

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

const (
	TagRose        = "rose"
	TagBlendedRose = "blended_rose"
)

// Rose is the rhodonea r(θ) = Offset + Amplitude·sin((N/D)·θ), drawn in
// polar form and turned by Rotation radians.
type Rose struct {
	N         int
	D         int
	Amplitude float64
	Offset    float64
	Rotation  float64
}

var roseSchema = params.Schema{
	{Name: "n", Kind: params.KindInt, Default: 3, Min: 0, Max: 100, Label: "numerator"},
	{Name: "d", Kind: params.KindInt, Default: 1, Min: 1, Max: 100, Label: "denominator"},
	{Name: "amplitude", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "offset", Kind: params.KindFloat, Default: 0, Min: -10, Max: 10},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func roseFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagRose, rec, roseSchema)
	c := Rose{
		N:         r.Int("n"),
		D:         r.Int("d"),
		Amplitude: r.Float("amplitude"),
		Offset:    r.Float("offset"),
		Rotation:  r.Float("rotation"),
	}

	return done(c, r.Err())
}

func (Rose) Tag() string { return TagRose }

// Point returns the rose point at theta. A zero denominator yields the
// origin rather than NaN.
func (c Rose) Point(theta float64) geom.Point {
	if c.D == 0 {
		return geom.Point{}
	}
	k := float64(c.N) / float64(c.D)
	r := c.Offset + c.Amplitude*math.Sin(k*theta)

	return geom.Polar(r, theta+c.Rotation)
}

// ClosurePeriod applies the odd/odd parity rule; 0 for D = 0.
// The rule assumes Offset = 0: an offset odd/odd rose retraces only after
// twice the reported span.
func (c Rose) ClosurePeriod() float64 {
	return float64(roseHalfTurns(c.N, c.D)) * math.Pi
}

func (c Rose) Record() params.Record {
	return params.Record{
		params.TagKey: TagRose,
		"n":           c.N,
		"d":           c.D,
		"amplitude":   c.Amplitude,
		"offset":      c.Offset,
		"rotation":    c.Rotation,
	}
}

func (c Rose) Signature() string { return c.Record().Signature() }

// SpecialPoints locates zeros, double points and petal tips on the grid
// spaced π/(n₁·d₁).
func (c Rose) SpecialPoints() SpecialPoints {
	p, q, ok := reduceRatio(c.N, c.D)
	if !ok {
		return SpecialPoints{}
	}

	return analyze(c, positive(p), positive(q), math.Abs(c.Offset)+math.Abs(c.Amplitude))
}

// BlendedRose mixes two roses evaluated at the same angle:
// (1−Blend)·A(θ) + Blend·B(θ), with Blend clamped to [0,1].
type BlendedRose struct {
	A     Rose
	B     Rose
	Blend float64
}

var blendedRoseSchema = params.Schema{
	{Name: "a_n", Kind: params.KindInt, Default: 3, Min: 0, Max: 100},
	{Name: "a_d", Kind: params.KindInt, Default: 1, Min: 1, Max: 100},
	{Name: "a_amplitude", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "a_offset", Kind: params.KindFloat, Default: 0, Min: -10, Max: 10},
	{Name: "a_rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
	{Name: "b_n", Kind: params.KindInt, Default: 2, Min: 0, Max: 100},
	{Name: "b_d", Kind: params.KindInt, Default: 1, Min: 1, Max: 100},
	{Name: "b_amplitude", Kind: params.KindFloat, Default: 1, Min: 0, Max: 10},
	{Name: "b_offset", Kind: params.KindFloat, Default: 0, Min: -10, Max: 10},
	{Name: "b_rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
	{Name: "blend", Kind: params.KindFloat, Default: 0.5, Min: 0, Max: 1},
}

func blendedRoseFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagBlendedRose, rec, blendedRoseSchema)
	c := BlendedRose{
		A: Rose{
			N: r.Int("a_n"), D: r.Int("a_d"),
			Amplitude: r.Float("a_amplitude"), Offset: r.Float("a_offset"), Rotation: r.Float("a_rotation"),
		},
		B: Rose{
			N: r.Int("b_n"), D: r.Int("b_d"),
			Amplitude: r.Float("b_amplitude"), Offset: r.Float("b_offset"), Rotation: r.Float("b_rotation"),
		},
		Blend: r.Float("blend"),
	}

	return done(c, r.Err())
}

func (BlendedRose) Tag() string { return TagBlendedRose }

func (c BlendedRose) weight() float64 {
	return math.Max(0, math.Min(1, c.Blend))
}

func (c BlendedRose) Point(theta float64) geom.Point {
	return c.A.Point(theta).Lerp(c.B.Point(theta), c.weight())
}

// ClosurePeriod is the LCM of both component periods counted in half turns,
// so the sample span closes both roses at once. 0 if either is degenerate.
func (c BlendedRose) ClosurePeriod() float64 {
	return float64(lcmHalfTurns(roseHalfTurns(c.A.N, c.A.D), roseHalfTurns(c.B.N, c.B.D))) * math.Pi
}

func (c BlendedRose) Record() params.Record {
	return params.Record{
		params.TagKey: TagBlendedRose,
		"a_n":         c.A.N, "a_d": c.A.D,
		"a_amplitude": c.A.Amplitude, "a_offset": c.A.Offset, "a_rotation": c.A.Rotation,
		"b_n": c.B.N, "b_d": c.B.D,
		"b_amplitude": c.B.Amplitude, "b_offset": c.B.Offset, "b_rotation": c.B.Rotation,
		"blend": c.Blend,
	}
}

func (c BlendedRose) Signature() string { return c.Record().Signature() }
