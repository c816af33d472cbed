// Package coincidence relates two additive sequences over the same cyclic
// group Z_n.
//
// 🚀 The problem
//
//	Two sequences A(i) = offA + i·gA and B(i) = offB + i·gB (mod n)
//	coincide at index i when A(i) = B(i), that is when
//
//	    Δg·i ≡ Δb (mod n),   Δg = gA − gB,  Δb = offB − offA.
//
//	This is a linear congruence. It has either no solution or exactly
//	gcd(Δg, n) of them, spaced n/gcd(Δg, n) apart.
//
// ✨ Queries
//   - SolveLinearCongruence  every i in [0, n) with a·i ≡ b (mod n)
//   - Count / Indices        how many and which indices coincide
//   - FindAny                partners g' with at least one coincidence
//   - FindExactCount         partners with exactly c coincidences
//   - FindCountRange         partners grouped by every feasible count
//   - FindForIndices         partners that coincide at prescribed indices
//
// In every inverse search a "generator" is an integer in [1, n) coprime to
// n, and the reference generator itself is never returned. Results are
// sorted ascending and free of duplicates.
//
// ⚙️ Failure model
//
//	Infeasible queries return empty results, never errors. A modulus n ≤ 0
//	also yields empty results; Sequence.Validate and Solver construction
//	report it as ErrBadModulus for callers that want to tell the cases apart.
package coincidence
