package geom

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Normal returns v rotated a quarter turn counter-clockwise. Its length
// equals the length of v.
func (v Vec2) Normal() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	h := v.Hypot()
	if h == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / h, Y: v.Y / h}
}
