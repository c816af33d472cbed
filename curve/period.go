// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// period.go — closure-period arithmetic shared by the variants.
//
// Periods are computed in integer units (half turns of π, or full turns of
// 2π) and converted to radians last, so LCMs of periods stay exact.

package curve

import (
	"math"

	"github.com/katalvlaran/rosette/modular"
)

const tau = 2 * math.Pi

// reduceRatio returns num/den in lowest terms with a positive denominator.
// ok is false when den is 0.
func reduceRatio(num, den int) (p, q int, ok bool) {
	if den == 0 {
		return 0, 0, false
	}
	g := modular.GCD(num, den)
	p, q = num/g, den/g
	if q < 0 {
		p, q = -p, -q
	}

	return p, q, true
}

// roseHalfTurns returns the closure period of sin((n/d)·θ) in units of π:
// with n/d = n₁/d₁ in lowest terms, d₁ when both are odd and 2·d₁
// otherwise. It returns 0 for d = 0.
func roseHalfTurns(n, d int) int {
	p, q, ok := reduceRatio(n, d)
	if !ok {
		return 0
	}
	if p%2 != 0 && q%2 != 0 {
		return q
	}

	return 2 * q
}

// turnsForFrequencies returns 2π/gcd(freqs...) or 0 when every frequency is 0.
func turnsForFrequencies(freqs ...int) float64 {
	g := 0
	for _, f := range freqs {
		g = modular.GCD(g, f)
	}
	if g == 0 {
		return 0
	}

	return tau / float64(g)
}

// positive returns v, or 1 when v is 0; used for grid densities.
func positive(v int) int {
	if v < 0 {
		v = -v
	}
	if v == 0 {
		return 1
	}

	return v
}

// lcmHalfTurns returns the LCM of two half-turn periods; 0 if either is 0.
func lcmHalfTurns(a, b int) int {
	return modular.LCM(a, b)
}
