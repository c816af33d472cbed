// SPDX-License-Identifier: MIT
// Package: rosette/curve

package curve

import (
	"math"
	"strconv"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/params"
)

const (
	TagFarris = "farris"

	maxFarrisWheels = 3
)

// Wheel is one rotating term a·e^{i(fθ+φ)} of a Farris curve.
type Wheel struct {
	Frequency int
	Amplitude float64
	Phase     float64
}

// Farris is Frank Farris' "mystery curve": the sum of rotating wheels. The
// default record gives the classic (1, 7, −17) curve.
type Farris struct {
	Wheels   []Wheel
	Rotation float64
}

var farrisSchema = params.Schema{
	{Name: "f1", Kind: params.KindInt, Default: 1, Min: -50, Max: 50},
	{Name: "a1", Kind: params.KindFloat, Default: 1, Min: 0, Max: 5},
	{Name: "p1", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
	{Name: "f2", Kind: params.KindInt, Default: 7, Min: -50, Max: 50},
	{Name: "a2", Kind: params.KindFloat, Default: 0.5, Min: 0, Max: 5},
	{Name: "p2", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
	{Name: "f3", Kind: params.KindInt, Default: -17, Min: -50, Max: 50},
	{Name: "a3", Kind: params.KindFloat, Default: 1.0 / 3, Min: 0, Max: 5},
	{Name: "p3", Kind: params.KindAngle, Default: math.Pi / 2, Min: -math.Pi, Max: math.Pi},
	{Name: "rotation", Kind: params.KindAngle, Default: 0, Min: -math.Pi, Max: math.Pi},
}

func farrisFromRecord(rec params.Record) (Curve, error) {
	r := newReader(TagFarris, rec, farrisSchema)
	c := Farris{Rotation: r.Float("rotation")}
	for i := 1; i <= maxFarrisWheels; i++ {
		idx := strconv.Itoa(i)
		w := Wheel{
			Frequency: r.Int("f" + idx),
			Amplitude: r.Float("a" + idx),
			Phase:     r.Float("p" + idx),
		}
		if w.Amplitude == 0 {
			continue // absent wheel
		}
		c.Wheels = append(c.Wheels, w)
	}

	return done(c, r.Err())
}

func (Farris) Tag() string { return TagFarris }

func (c Farris) Point(theta float64) geom.Point {
	var x, y float64
	for _, w := range c.Wheels {
		s, co := math.Sincos(float64(w.Frequency)*theta + w.Phase)
		x += w.Amplitude * co
		y += w.Amplitude * s
	}

	return geom.Pt(x, y).Rotate(c.Rotation)
}

// ClosurePeriod is 2π/gcd of the wheel frequencies; 0 without wheels or
// when every frequency is 0.
func (c Farris) ClosurePeriod() float64 {
	freqs := make([]int, len(c.Wheels))
	for i, w := range c.Wheels {
		freqs[i] = w.Frequency
	}

	return turnsForFrequencies(freqs...)
}

// Record flattens up to three wheels into f1/a1/p1 … f3/a3/p3; unused
// slots carry a zero amplitude.
func (c Farris) Record() params.Record {
	rec := params.Record{params.TagKey: TagFarris, "rotation": c.Rotation}
	for i := 0; i < maxFarrisWheels; i++ {
		idx := strconv.Itoa(i + 1)
		var w Wheel
		if i < len(c.Wheels) {
			w = c.Wheels[i]
		}
		rec["f"+idx] = w.Frequency
		rec["a"+idx] = w.Amplitude
		rec["p"+idx] = w.Phase
	}

	return rec
}

func (c Farris) Signature() string { return c.Record().Signature() }
