// Package sequencer generates the index walks that turn a sampled curve into
// a rosette.
//
// 🚀 What is a walk?
//
//	A walk over Z_n is a list of indices, each reduced mod n, starting at a
//	chosen index. Consecutive entries are joined by a chord. A closed walk
//	ends on the index it started from, so first == last.
//
// ✨ Variants (registry tags in parentheses):
//   - Additive (additive)              S(i) = start + i·step
//   - Alternating (alternating)        increments A, B, A, B, ...
//   - FourStep (four_step)             increments A, B, C, D, A, ...
//   - Multiplicative (multiplicative)  S(i) = start·gⁱ
//
// Additive, Alternating and FourStep partition Z_n into cosets: walking
// from every coset representative covers each index exactly once.
// Multiplicative orbits overlap in general and report no cosets.
//
// ⚙️ Guarantees:
//   - Generate never loops forever. Each variant carries an iteration cap;
//     a capped walk is returned as accumulated and Closed reports false.
//   - n ≤ 0 yields a nil walk.
//
//	s := sequencer.Additive{Step: 4}
//	s.Generate(12, 0)   // [0 4 8 0]
//	s.Cosets(12)        // [0 1 2 3]
package sequencer
