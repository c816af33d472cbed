package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestPolar(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Pt(2, 0), Polar(2, 0), approx)
	diff(t, 1.0, Polar(1, math.Pi/2).Y, approx)
	diff(t, -3.0, Polar(3, math.Pi).X, approx)
}

func TestRotate(t *testing.T) {
	p := Pt(1, 0).Rotate(math.Pi / 2)
	if !p.Near(Pt(0, 1), 1e-12) {
		t.Errorf("got %v, want (0, 1)", p)
	}
	if got := Pt(3, 4).Rotate(0); got != Pt(3, 4) {
		t.Errorf("zero rotation changed the point: %v", got)
	}
}

func TestLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -4)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Pt(5, -2), a.Lerp(b, 0.5))
	diff(t, a.Midpoint(b), a.Lerp(b, 0.5))
}

func TestVec(t *testing.T) {
	v := Pt(3, 4).Sub(Pt(0, 0))
	if v.Hypot() != 5 {
		t.Errorf("hypot: got %g, want 5", v.Hypot())
	}
	n := v.Normal()
	if n.X*v.X+n.Y*v.Y != 0 {
		t.Errorf("normal %v is not perpendicular to %v", n, v)
	}
	diff(t, Vec2{}, Vec2{}.Normalize())
	diff(t, 1.0, v.Normalize().Hypot(), cmpopts.EquateApprox(0, 1e-12))
}
