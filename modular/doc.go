// Package modular provides the integer arithmetic that every other rosette
// package leans on: greatest common divisors, least common multiples, prime
// factorisation, primality, the extended Euclidean algorithm and modular
// inverses over Z_n.
//
// 🚀 Why a separate package?
//
//	Closure periods of curves, orbit structure of sequencers, coincidence
//	congruences and LCM resampling all reduce to the same handful of
//	number-theoretic primitives. Keeping them here gives one tested source
//	of truth with explicit edge-case behavior at 0 and negative inputs.
//
// ✨ Key features:
//   - GCD / LCM with documented zero handling (GCD(a,0)=|a|, LCM(a,0)=0)
//   - PrimeFactors by trial division up to √n, IsPrime with the 6k±1 wheel
//   - ExtendedGCD, ModInverse, Mod (always non-negative residues)
//   - Divisors, Coprime, Generators and IsGenerator for the group Z_n
//
// Contract:
//
//	All functions are total and allocation-light. Negative inputs are not a
//	supported contract unless a function says otherwise; callers normalise
//	into [0,n) first (Mod does exactly that).
//
// Performance:
//
//   - GCD, ExtendedGCD, ModInverse: O(log min(a,b))
//   - PrimeFactors, IsPrime, Divisors: O(√n)
//   - Generators: O(n·log n)
package modular
