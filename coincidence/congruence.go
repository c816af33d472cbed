// SPDX-License-Identifier: MIT
// Package: rosette/coincidence
//
// congruence.go — linear congruences and the forward coincidence queries.
//
// Contract:
//   • SolveLinearCongruence returns solutions in ascending order.
//   • len(Indices(...)) == Count(...) for every n > 0.
//
// Complexity: O(log n + d) for d solutions.

package coincidence

import "github.com/katalvlaran/rosette/modular"

// SolveLinearCongruence returns every i in [0, n) with a·i ≡ b (mod n) and
// true, or (nil, false) when there is none or n ≤ 0.
func SolveLinearCongruence(a, b, n int) ([]int, bool) {
	if n <= 0 {
		return nil, false
	}
	a, b = modular.Mod(a, n), modular.Mod(b, n)

	if a == 0 {
		if b != 0 {
			return nil, false
		}
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, true
	}

	d := modular.GCD(a, n)
	if b%d != 0 {
		return nil, false
	}
	a1, b1, n1 := a/d, b/d, n/d
	inv, ok := modular.ModInverse(a1, n1)
	if !ok {
		// gcd(a1, n1) = 1 by construction.
		return nil, false
	}
	i0 := modular.Mod(inv*b1, n1)

	sols := make([]int, d)
	for k := range sols {
		sols[k] = i0 + k*n1
	}

	return sols, true
}

func deltas(n, gA, gB, offA, offB int) (dg, db int) {
	return modular.Mod(gA-gB, n), modular.Mod(offB-offA, n)
}

// Count returns how many indices in [0, n) the sequences (gA, offA) and
// (gB, offB) share, without enumerating them.
func Count(n, gA, gB, offA, offB int) int {
	if n <= 0 {
		return 0
	}
	dg, db := deltas(n, gA, gB, offA, offB)
	if dg == 0 {
		if db == 0 {
			return n
		}
		return 0
	}
	d := modular.GCD(dg, n)
	if db%d != 0 {
		return 0
	}

	return d
}

// Indices returns the coincident indices in ascending order, or nil.
func Indices(n, gA, gB, offA, offB int) []int {
	if n <= 0 {
		return nil
	}
	dg, db := deltas(n, gA, gB, offA, offB)
	sols, ok := SolveLinearCongruence(dg, db, n)
	if !ok {
		return nil
	}

	return sols
}
