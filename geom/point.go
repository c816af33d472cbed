// Package geom holds the small 2D value types shared by curves, polylines and
// the resampler. Points are plain values; every method returns a new value.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at radius r and angle theta (radians).
func Polar(r, theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{X: r * c, Y: r * s}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add translates pt by the vector v.
func (pt Point) Add(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Scale multiplies both coordinates by f, i.e. scales about the origin.
func (pt Point) Scale(f float64) Point {
	return Point{X: pt.X * f, Y: pt.Y * f}
}

// Lerp linearly interpolates between two points; t=0 yields pt, t=1 yields o.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Rotate rotates pt about the origin by theta radians.
func (pt Point) Rotate(theta float64) Point {
	if theta == 0 {
		return pt
	}
	s, c := math.Sincos(theta)
	return Point{
		X: pt.X*c - pt.Y*s,
		Y: pt.X*s + pt.Y*c,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Radius2 returns the squared distance from the origin.
func (pt Point) Radius2() float64 {
	return pt.X*pt.X + pt.Y*pt.Y
}

// Near reports whether pt and o are within eps of each other.
func (pt Point) Near(o Point, eps float64) bool {
	return pt.DistanceSquared(o) <= eps*eps
}

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
