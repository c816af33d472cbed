// SPDX-License-Identifier: MIT
// Package: rosette/modular
//
// gcd.go — gcd, lcm and the extended Euclidean algorithm.
//
// Contract:
//   • GCD(a, 0) = |a|; the result is always ≥ 0.
//   • LCM returns 0 if either input is 0, else |a·b| / GCD(a,b).
//   • ExtendedGCD returns (g, x, y) with a·x + b·y = g.

package modular

// GCD returns the greatest common divisor of a and b by Euclidean recursion.
// Signs are discarded so the result is never negative.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	if b == 0 {
		return a
	}

	return GCD(b, a%b)
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// The division happens before the multiplication to delay overflow.
// Complexity: O(log min(|a|,|b|)).
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	a, b = abs(a), abs(b)

	return a / GCD(a, b) * b
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a·x + b·y = g. Inputs are expected to be non-negative.
// Complexity: O(log min(a,b)).
func ExtendedGCD(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := ExtendedGCD(b, a%b)

	// Back-substitute: b·x1 + (a mod b)·y1 = g.
	return g, y1, x1 - (a/b)*y1
}

// ModInverse returns the inverse of a modulo n and true, or (0, false) when
// gcd(a, n) ≠ 1 or n < 1. For n == 1 the inverse is 0 (every value is 0).
// Complexity: O(log n).
func ModInverse(a, n int) (int, bool) {
	if n < 1 {
		return 0, false
	}
	g, x, _ := ExtendedGCD(Mod(a, n), n)
	if g != 1 {
		return 0, false
	}

	return Mod(x, n), true
}

// Mod returns the non-negative residue of a modulo n (n > 0).
// For n ≤ 0 it returns a unchanged; callers validate the modulus first.
func Mod(a, n int) int {
	if n <= 0 {
		return a
	}
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
