// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// special.go — grid analyser for zero points, double points and peaks.
//
// Algorithm outline:
//  1. Angular grid θₖ = k·π/(p·q) over [0, period), capped at maxGridPoints.
//  2. Zero points: grid angles whose point lies within eps of the origin.
//  3. Double points: remaining grid points are bucketed into a spatial hash
//     with cell size eps; a point joins the first cluster representative
//     within eps in its 3×3 cell neighbourhood. Clusters with two or more
//     angles are self-intersections.
//  4. Peaks: min(maxBoundarySamples, samplesPerCell·p·q) even samples; a
//     sample is a peak when its squared radius exceeds both cyclic
//     neighbours.
//
// eps = relEps·scale, where scale is the curve's amplitude, so the analysis
// is invariant under uniform scaling.
//
// Complexity: O(G + S) expected time, G = grid size, S = boundary samples.

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/geom"
)

const (
	relEps             = 1e-7
	maxGridPoints      = 20000
	maxBoundarySamples = 50000
	samplesPerCell     = 720
)

type cellKey struct{ X, Y int64 }

type cluster struct {
	at     geom.Point
	thetas []float64
}

// analyze runs the grid analyser over one closure period of c.
func analyze(c Curve, p, q int, scale float64) SpecialPoints {
	period := c.ClosurePeriod()
	if period <= 0 || scale <= 0 || math.IsNaN(scale) {
		return SpecialPoints{}
	}
	eps := relEps * scale

	var out SpecialPoints

	// 1. Grid.
	step := math.Pi / float64(p*q)
	count := int(math.Round(period / step))
	if count > maxGridPoints {
		count = maxGridPoints
	}
	if count < 1 {
		count = 1
	}
	step = period / float64(count)

	// 2+3. Zeros and proximity clusters.
	var (
		clusters []*cluster
		buckets  = make(map[cellKey][]int)
	)
	for k := 0; k < count; k++ {
		theta := float64(k) * step
		pt := c.Point(theta)
		if pt.IsNaN() {
			continue
		}
		if pt.Radius2() < eps*eps {
			out.Zeros = append(out.Zeros, Angle{Theta: theta, At: pt})
			continue
		}

		key := cellKey{X: int64(math.Floor(pt.X / eps)), Y: int64(math.Floor(pt.Y / eps))}
		if idx, ok := nearestCluster(clusters, buckets, key, pt, eps); ok {
			clusters[idx].thetas = append(clusters[idx].thetas, theta)
			continue
		}
		buckets[key] = append(buckets[key], len(clusters))
		clusters = append(clusters, &cluster{at: pt, thetas: []float64{theta}})
	}
	for _, cl := range clusters {
		if len(cl.thetas) >= 2 {
			out.DoublePoints = append(out.DoublePoints, DoublePoint{At: cl.at, Thetas: cl.thetas})
		}
	}

	// 4. Peaks of squared radius.
	samples := samplesPerCell * p * q
	if samples > maxBoundarySamples {
		samples = maxBoundarySamples
	}
	ds := period / float64(samples)
	r2 := make([]float64, samples)
	for i := range r2 {
		r2[i] = c.Point(float64(i) * ds).Radius2()
	}
	for i := 0; i < samples; i++ {
		prev := r2[(i-1+samples)%samples]
		next := r2[(i+1)%samples]
		if r2[i] > prev && r2[i] > next {
			theta := float64(i) * ds
			out.Peaks = append(out.Peaks, Angle{Theta: theta, At: c.Point(theta)})
		}
	}

	return out
}

// nearestCluster searches the 3×3 neighbourhood of key for a cluster whose
// representative lies within eps of pt.
func nearestCluster(clusters []*cluster, buckets map[cellKey][]int, key cellKey, pt geom.Point, eps float64) (int, bool) {
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, idx := range buckets[cellKey{X: key.X + dx, Y: key.Y + dy}] {
				if clusters[idx].at.Near(pt, eps) {
					return idx, true
				}
			}
		}
	}

	return 0, false
}
