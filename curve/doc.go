// Package curve implements the parametric curve family that rosettes are
// sampled from.
//
// 🚀 What is a curve here?
//
//	A Curve maps an angle θ to a point in the plane and knows its closure
//	period: the angular span after which the trace repeats exactly. A
//	rosette over Z_n samples the curve at θ = k·period/n, so the period
//	decides which points exist at all. A period of 0 means the curve never
//	closes (or is degenerate) and there is nothing to sample.
//
// ✨ Variants (registry tags in parentheses):
//   - Rose (rose)                  r = c + A·sin((n/d)·θ)
//   - BlendedRose (blended_rose)   convex combination of two roses
//   - Circle (circle)
//   - Epitrochoid (epitrochoid)    rolling circle outside a fixed circle
//   - Lissajous (lissajous)        x = A·sin(aθ+δ), y = A·sin(bθ)
//   - RegularPolygon (polygon)     boundary of a regular m-gon
//   - Superformula (superformula)  Gielis superformula
//   - Farris (farris)              sum of rotating wheels ("mystery curve")
//
// Rose, Epitrochoid and Lissajous also implement Analyzer and report zero
// points, self-intersections and petal tips.
//
// ⚙️ Usage:
//
//	c, err := curve.New(params.Record{"type": "rose", "n": 5, "d": 3})
//	if err != nil { /* ErrUnknownCurve or params.ErrBadValue */ }
//	T := c.ClosurePeriod()          // 3π: both 5 and 3 are odd
//	p := c.Point(T / 7)
//
// Every variant is an immutable value. Signature() is a pure function of the
// tag and parameters and is meant to be used as a cache key.
package curve
