package resample_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/resample"
)

func ring(segs int) []geom.Point {
	out := make([]geom.Point, segs+1)
	for i := range out {
		out[i] = geom.Polar(1, 2*math.Pi*float64(i)/float64(segs))
	}

	return out
}

// BenchmarkInterpolateExact blends 120 and 84 segments through their
// LCM of 840.
func BenchmarkInterpolateExact(b *testing.B) {
	a, c := ring(120), ring(84)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := resample.Interpolate(a, c, 0.5); err != nil {
			b.Fatalf("Interpolate: %v", err)
		}
	}
}

// BenchmarkInterpolateCeiling forces the approximate fallback at the
// default ceiling with an arc connector.
func BenchmarkInterpolateCeiling(b *testing.B) {
	a, c := ring(997), ring(991)
	opts := []resample.Option{
		resample.WithThreshold(0),
		resample.WithConnector(resample.Arc{Bulge: 0.25}),
		resample.WithConnectorSamples(2),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := resample.Interpolate(a, c, 0.5, opts...); err != nil {
			b.Fatalf("Interpolate: %v", err)
		}
	}
}
