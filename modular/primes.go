// SPDX-License-Identifier: MIT
// Package: rosette/modular
//
// primes.go — trial-division factorisation, primality and divisor lists.

package modular

// PrimeFactors returns the prime factors of n with multiplicity, ascending.
// It returns nil for n < 2. Trial division stops at √n; whatever remains
// above 1 is itself prime.
// Complexity: O(√n).
func PrimeFactors(n int) []int {
	if n < 2 {
		return nil
	}

	var factors []int
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for p := 3; p*p <= n; p += 2 {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// IsPrime reports whether n is prime using deterministic trial division over
// the 6k±1 wheel.
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true // 2 and 3
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for k := 5; k*k <= n; k += 6 {
		if n%k == 0 || n%(k+2) == 0 {
			return false
		}
	}

	return true
}

// Divisors returns every positive divisor of n in ascending order, or nil
// for n < 1.
// Complexity: O(√n).
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}

	var low, high []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if q := n / d; q != d {
			high = append(high, q)
		}
	}
	// high was collected in descending order.
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return low
}
