package curve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rosette/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRose_SpecialPoints checks a three-petal rose: three zeros at the grid
// angles 0, π/3, 2π/3 and three petal tips.
func TestRose_SpecialPoints(t *testing.T) {
	t.Parallel()

	sp := curve.Rose{N: 3, D: 1, Amplitude: 1}.SpecialPoints()
	require.Len(t, sp.Zeros, 3)
	for i, z := range sp.Zeros {
		assert.InDelta(t, float64(i)*math.Pi/3, z.Theta, 1e-9)
	}
	assert.Empty(t, sp.DoublePoints, "petals only meet at the origin, which is a zero")

	require.Len(t, sp.Peaks, 3)
	for _, p := range sp.Peaks {
		assert.InDelta(t, 1, p.At.Radius2(), 1e-9, "petal tips lie on the unit circle")
	}
}

// TestLissajous_SpecialPoints checks the figure eight x=sin θ, y=sin 2θ.
func TestLissajous_SpecialPoints(t *testing.T) {
	t.Parallel()

	sp := curve.Lissajous{A: 1, B: 2, Amplitude: 1}.SpecialPoints()
	require.Len(t, sp.Zeros, 2, "the crossing at the origin is visited at 0 and π")
	assert.InDelta(t, 0, sp.Zeros[0].Theta, 1e-12)
	assert.InDelta(t, math.Pi, sp.Zeros[1].Theta, 1e-9)
	assert.Empty(t, sp.DoublePoints)
	assert.NotEmpty(t, sp.Peaks)
}

// TestLissajous_DoublePoint: x = cos 3θ, y = sin 2θ crosses itself at
// (0, ±√3/2), both of which lie on the π/6 grid.
func TestLissajous_DoublePoint(t *testing.T) {
	t.Parallel()

	c := curve.Lissajous{A: 3, B: 2, Phase: math.Pi / 2, Amplitude: 1}
	sp := c.SpecialPoints()
	require.Len(t, sp.Zeros, 2)
	require.Len(t, sp.DoublePoints, 2)
	for _, dp := range sp.DoublePoints {
		require.Len(t, dp.Thetas, 2)
		assert.InDelta(t, 0, dp.At.X, 1e-9)
		assert.InDelta(t, math.Sqrt(3)/2, math.Abs(dp.At.Y), 1e-9)
		for _, th := range dp.Thetas {
			assert.True(t, c.Point(th).Near(dp.At, 1e-6), "every angle of a double point maps onto it")
		}
	}
}

// TestEpitrochoid_Cardioid: R=r=d gives a cardioid whose single radial peak
// sits at θ=π.
func TestEpitrochoid_Cardioid(t *testing.T) {
	t.Parallel()

	c := curve.Epitrochoid{FixedRadius: 1, RollingRadius: 1, Arm: 1, Amplitude: 3}
	sp := c.SpecialPoints()
	require.Len(t, sp.Peaks, 1)
	assert.InDelta(t, math.Pi, sp.Peaks[0].Theta, 1e-9)
	assert.InDelta(t, 3, math.Sqrt(sp.Peaks[0].At.Radius2()), 1e-9, "outer extent maps to the amplitude")
	assert.Empty(t, sp.Zeros)
}

// TestSpecialPoints_Degenerate covers zero amplitude and zero period.
func TestSpecialPoints_Degenerate(t *testing.T) {
	t.Parallel()

	assert.True(t, curve.Rose{N: 3, D: 1}.SpecialPoints().Empty())
	assert.True(t, curve.Lissajous{Amplitude: 1}.SpecialPoints().Empty())
	assert.True(t, curve.Epitrochoid{FixedRadius: 2, Amplitude: 1}.SpecialPoints().Empty())
}

// TestAnalyzer ensures the expected variants implement Analyzer.
func TestAnalyzer(t *testing.T) {
	t.Parallel()

	var _ curve.Analyzer = curve.Rose{}
	var _ curve.Analyzer = curve.Epitrochoid{}
	var _ curve.Analyzer = curve.Lissajous{}

	_, ok := curve.Curve(curve.Circle{}).(curve.Analyzer)
	assert.False(t, ok)
}
