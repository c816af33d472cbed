package curve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rosette/curve"
	"github.com/katalvlaran/rosette/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestRose_ClosurePeriodParity pins the odd/odd parity rule.
func TestRose_ClosurePeriodParity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n, d int
		want float64
	}{
		{"1/1 both odd", 1, 1, math.Pi},
		{"2/1 even numerator", 2, 1, 2 * math.Pi},
		{"3/1 both odd", 3, 1, math.Pi},
		{"1/2 even denominator", 1, 2, 4 * math.Pi},
		{"5/3 both odd", 5, 3, 3 * math.Pi},
		{"6/4 reduces to 3/2", 6, 4, 4 * math.Pi},
		{"9/3 reduces to 3/1", 9, 3, math.Pi},
		{"0/5 is a circle", 0, 5, 2 * math.Pi},
		{"zero denominator", 3, 0, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := curve.Rose{N: tc.n, D: tc.d, Amplitude: 1}
			assert.InDelta(t, tc.want, c.ClosurePeriod(), tol)
		})
	}
}

// TestRose_ZeroDenominatorIsTotal ensures no NaN leaks out of a degenerate rose.
func TestRose_ZeroDenominatorIsTotal(t *testing.T) {
	t.Parallel()

	c := curve.Rose{N: 3, D: 0, Amplitude: 1}
	p := c.Point(1.234)
	assert.False(t, p.IsNaN())
	assert.True(t, c.SpecialPoints().Empty())
}

// TestRose_Point checks the polar formula and rotation.
func TestRose_Point(t *testing.T) {
	t.Parallel()

	c := curve.Rose{N: 2, D: 1, Amplitude: 2, Offset: 1}
	// θ = π/4: r = 1 + 2·sin(π/2) = 3.
	p := c.Point(math.Pi / 4)
	assert.InDelta(t, 3*math.Cos(math.Pi/4), p.X, tol)
	assert.InDelta(t, 3*math.Sin(math.Pi/4), p.Y, tol)

	rot := curve.Rose{N: 2, D: 1, Amplitude: 2, Offset: 1, Rotation: math.Pi / 4}
	q := rot.Point(math.Pi / 4)
	assert.InDelta(t, 0, q.X, tol)
	assert.InDelta(t, 3, q.Y, tol)
}

// TestBlendedRose_Period verifies the LCM in half turns.
func TestBlendedRose_Period(t *testing.T) {
	t.Parallel()

	c := curve.BlendedRose{A: curve.Rose{N: 3, D: 1, Amplitude: 1}, B: curve.Rose{N: 2, D: 1, Amplitude: 1}, Blend: 0.5}
	assert.InDelta(t, 2*math.Pi, c.ClosurePeriod(), tol)

	c = curve.BlendedRose{A: curve.Rose{N: 5, D: 3, Amplitude: 1}, B: curve.Rose{N: 1, D: 2, Amplitude: 1}}
	assert.InDelta(t, 12*math.Pi, c.ClosurePeriod(), tol)

	c = curve.BlendedRose{A: curve.Rose{N: 5, D: 0}, B: curve.Rose{N: 1, D: 2}}
	assert.Equal(t, 0.0, c.ClosurePeriod(), "a degenerate component makes the blend degenerate")
}

// TestBlendedRose_Endpoints checks that weight 0 and 1 reproduce the components.
func TestBlendedRose_Endpoints(t *testing.T) {
	t.Parallel()

	a := curve.Rose{N: 3, D: 1, Amplitude: 1}
	b := curve.Rose{N: 2, D: 1, Amplitude: 2}
	for _, theta := range []float64{0, 0.3, 1.7, 2.9} {
		assert.Equal(t, a.Point(theta), curve.BlendedRose{A: a, B: b, Blend: 0}.Point(theta))
		assert.True(t, b.Point(theta).Near(curve.BlendedRose{A: a, B: b, Blend: 1}.Point(theta), tol))
		assert.True(t, b.Point(theta).Near(curve.BlendedRose{A: a, B: b, Blend: 7}.Point(theta), tol), "blend is clamped")
	}
}

// TestPeriods covers the remaining variants.
func TestPeriods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    curve.Curve
		want float64
	}{
		{"circle", curve.Circle{Radius: 1}, 2 * math.Pi},
		{"epitrochoid 3/1", curve.Epitrochoid{FixedRadius: 3, RollingRadius: 1, Arm: 1, Amplitude: 1}, 2 * math.Pi},
		{"epitrochoid 5/3", curve.Epitrochoid{FixedRadius: 5, RollingRadius: 3, Arm: 1, Amplitude: 1}, 6 * math.Pi},
		{"epitrochoid r=0", curve.Epitrochoid{FixedRadius: 5, RollingRadius: 0}, 0},
		{"lissajous 3:2", curve.Lissajous{A: 3, B: 2, Amplitude: 1}, 2 * math.Pi},
		{"lissajous 4:2", curve.Lissajous{A: 4, B: 2, Amplitude: 1}, math.Pi},
		{"lissajous 0:0", curve.Lissajous{}, 0},
		{"polygon", curve.RegularPolygon{Sides: 5, Radius: 1}, 2 * math.Pi},
		{"digon", curve.RegularPolygon{Sides: 2, Radius: 1}, 0},
		{"superformula even m", curve.Superformula{M: 6, N1: 1, N2: 1, N3: 1, A: 1, B: 1, Amplitude: 1}, 2 * math.Pi},
		{"superformula odd m", curve.Superformula{M: 5, N1: 1, N2: 1, N3: 1, A: 1, B: 1, Amplitude: 1}, 4 * math.Pi},
		{"superformula n1=0", curve.Superformula{M: 5, A: 1, B: 1}, 0},
		{"farris classic", curve.Farris{Wheels: []curve.Wheel{{1, 1, 0}, {7, 0.5, 0}, {-17, 1.0 / 3, math.Pi / 2}}}, 2 * math.Pi},
		{"farris 2,4", curve.Farris{Wheels: []curve.Wheel{{2, 1, 0}, {4, 1, 0}}}, math.Pi},
		{"farris empty", curve.Farris{}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.c.ClosurePeriod(), tol)
		})
	}
}

// TestClosure checks that every variant actually repeats after its period.
func TestClosure(t *testing.T) {
	t.Parallel()

	curves := []curve.Curve{
		curve.Rose{N: 5, D: 3, Amplitude: 1},
		curve.BlendedRose{A: curve.Rose{N: 3, D: 1, Amplitude: 1}, B: curve.Rose{N: 1, D: 2, Amplitude: 1}, Blend: 0.3},
		curve.Circle{Radius: 2},
		curve.Epitrochoid{FixedRadius: 5, RollingRadius: 3, Arm: 2, Amplitude: 1},
		curve.Lissajous{A: 3, B: 2, Phase: 0.4, Amplitude: 1},
		curve.RegularPolygon{Sides: 7, Radius: 1},
		curve.Superformula{M: 5, N1: 1, N2: 3, N3: 3, A: 1, B: 1, Amplitude: 1},
		curve.Farris{Wheels: []curve.Wheel{{1, 1, 0}, {7, 0.5, 0}, {-17, 1.0 / 3, math.Pi / 2}}},
	}
	for _, c := range curves {
		T := c.ClosurePeriod()
		require.Greater(t, T, 0.0, c.Tag())
		for _, theta := range []float64{0.1, 0.77, 2.5} {
			assert.True(t, c.Point(theta).Near(c.Point(theta+T), 1e-9), "%s does not close after %g", c.Tag(), T)
		}
	}
}

// TestRegularPolygon_Vertices checks that vertex angles land on the circumcircle
// and edge midpoints on the incircle.
func TestRegularPolygon_Vertices(t *testing.T) {
	t.Parallel()

	c := curve.RegularPolygon{Sides: 4, Radius: 2}
	for k := 0; k < 4; k++ {
		p := c.Point(float64(k) * math.Pi / 2)
		assert.InDelta(t, 4, p.Radius2(), tol)
	}
	mid := c.Point(math.Pi / 4)
	assert.InDelta(t, 2*math.Cos(math.Pi/4), math.Sqrt(mid.Radius2()), tol)
}

// TestSignature verifies equal parameters give equal signatures.
func TestSignature(t *testing.T) {
	t.Parallel()

	a := curve.Rose{N: 3, D: 2, Amplitude: 1}
	b := curve.Rose{N: 3, D: 2, Amplitude: 1}
	c := curve.Rose{N: 3, D: 2, Amplitude: 1.5}
	assert.Equal(t, a.Signature(), b.Signature())
	assert.NotEqual(t, a.Signature(), c.Signature())
	assert.NotEqual(t, curve.Circle{Radius: 1}.Signature(), curve.Rose{Amplitude: 1}.Signature())
	assert.Contains(t, a.Signature(), "rose:")
}

// TestRegistry_RoundTrip rebuilds every built-in variant from its record.
func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	curves := []curve.Curve{
		curve.Rose{N: 5, D: 3, Amplitude: 1, Offset: 0.2, Rotation: 0.1},
		curve.BlendedRose{A: curve.Rose{N: 3, D: 1, Amplitude: 1}, B: curve.Rose{N: 1, D: 2, Amplitude: 1}, Blend: 0.3},
		curve.Circle{Radius: 2, Rotation: 1},
		curve.Epitrochoid{FixedRadius: 5, RollingRadius: 3, Arm: 2, Amplitude: 1},
		curve.Lissajous{A: 3, B: 2, Phase: 0.4, Amplitude: 1},
		curve.RegularPolygon{Sides: 7, Radius: 1},
		curve.Superformula{M: 5, N1: 1, N2: 3, N3: 3, A: 1, B: 1, Amplitude: 1},
		curve.Farris{Wheels: []curve.Wheel{{1, 1, 0}, {7, 0.5, 0}, {-17, 1.0 / 3, math.Pi / 2}}},
	}
	for _, c := range curves {
		got, err := curve.New(c.Record())
		require.NoError(t, err, c.Tag())
		assert.Equal(t, c, got, c.Tag())
		assert.Equal(t, c.Signature(), got.Signature())
	}
}

// TestRegistry_Errors checks sentinel errors and defaults.
func TestRegistry_Errors(t *testing.T) {
	t.Parallel()

	_, err := curve.New(params.Record{"type": "spiral"})
	assert.ErrorIs(t, err, curve.ErrUnknownCurve)

	_, err = curve.New(params.Record{"n": 3})
	assert.ErrorIs(t, err, params.ErrMissingTag)

	_, err = curve.New(params.Record{"type": "rose", "n": "three"})
	assert.ErrorIs(t, err, curve.ErrBadParams)
	assert.ErrorIs(t, err, params.ErrBadValue)

	c, err := curve.New(params.Record{"type": "rose"})
	require.NoError(t, err)
	assert.Equal(t, curve.Rose{N: 3, D: 1, Amplitude: 1}, c, "schema defaults fill absent keys")

	assert.Contains(t, curve.Tags(), curve.TagFarris)
	assert.Len(t, curve.Tags(), 8)
	s, ok := curve.SchemaFor(curve.TagLissajous)
	assert.True(t, ok)
	assert.NotEmpty(t, s)
}

// TestRegister_Panics checks programmer-error panics.
func TestRegister_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { curve.Register("", nil, nil) })
	assert.Panics(t, func() { curve.Register("x-nil", nil, nil) })
	assert.Panics(t, func() {
		curve.Register(curve.TagRose, func(params.Record) (curve.Curve, error) { return curve.Circle{}, nil }, nil)
	})
}
