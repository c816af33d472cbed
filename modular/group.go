// SPDX-License-Identifier: MIT
// Package: rosette/modular
//
// group.go — generators of the additive group Z_n.
//
// A generator of Z_n is an integer g ∈ [1, n) with gcd(g, n) = 1; stepping by
// g visits every residue exactly once before returning to the start. This is
// the only meaning of "generator" used across rosette, and it must not be
// confused with an arbitrary non-zero step.

package modular

// IsGenerator reports whether g is a generator of Z_n: 1 ≤ g < n and
// gcd(g, n) == 1.
func IsGenerator(g, n int) bool {
	return n > 1 && g >= 1 && g < n && Coprime(g, n)
}

// Generators returns every generator of Z_n in ascending order. The result
// has Euler's φ(n) elements; it is nil for n < 2.
// Complexity: O(n·log n).
func Generators(n int) []int {
	if n < 2 {
		return nil
	}

	out := make([]int, 0, n-1)
	for g := 1; g < n; g++ {
		if Coprime(g, n) {
			out = append(out, g)
		}
	}

	return out
}

// OrbitLength returns the number of additive steps of size step needed to
// return to the start in Z_n, i.e. n / gcd(step, n). It returns 0 for n < 1.
func OrbitLength(n, step int) int {
	if n < 1 {
		return 0
	}

	return n / GCD(Mod(step, n), n)
}
