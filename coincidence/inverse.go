// SPDX-License-Identifier: MIT
// Package: rosette/coincidence
//
// inverse.go — inverse searches: which partner generators g' produce a
// wanted coincidence pattern against a reference generator g.
//
// Conventions:
//   • Sequence A is (g, offA), sequence B is (g', offB); Δg = g − g'.
//   • A partner is a generator of Z_n in [1, n) other than g mod n.
//   • Results are collected in an ordered set, so they come back sorted and
//     without duplicates.

package coincidence

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/rosette/modular"
)

// Candidate is a partner generator annotated with its coincidence count.
type Candidate struct {
	Generator int
	Count     int
}

// partners accumulates accepted partner generators for one query.
type partners struct {
	n, g int
	set  *treeset.Set
}

func newPartners(n, g int) *partners {
	return &partners{n: n, g: modular.Mod(g, n), set: treeset.NewWithIntComparator()}
}

// offer adds g' when it is a valid partner and accept(g') holds.
func (p *partners) offer(gp int, accept func(int) bool) {
	gp = modular.Mod(gp, p.n)
	if gp == p.g || !modular.IsGenerator(gp, p.n) {
		return
	}
	if accept != nil && !accept(gp) {
		return
	}
	p.set.Add(gp)
}

func (p *partners) values() []int {
	if p.set.Empty() {
		return nil
	}
	out := make([]int, 0, p.set.Size())
	for _, v := range p.set.Values() {
		out = append(out, v.(int))
	}

	return out
}

// FindAny returns every partner g' whose sequence meets (g, offA) at least
// once: gcd(g − g', n) divides Δb.
func FindAny(n, g, offA, offB int) []int {
	if n <= 1 {
		return nil
	}
	p := newPartners(n, g)
	for _, gp := range modular.Generators(n) {
		p.offer(gp, func(gp int) bool { return Count(n, g, gp, offA, offB) > 0 })
	}

	return p.values()
}

// FindExactCount returns every partner g' with exactly count coincidences.
//
// Feasibility needs count | n and count | Δb. With m = n/count, the
// differences Δg = k·count for k in [1, m) coprime to m are exactly those
// with gcd(Δg, n) = count. Each candidate is re-checked with Count before
// it is accepted.
func FindExactCount(n, g, count, offA, offB int) []int {
	if n <= 1 || count <= 0 || n%count != 0 {
		return nil
	}
	db := modular.Mod(offB-offA, n)
	if db%count != 0 {
		return nil
	}

	p := newPartners(n, g)
	m := n / count
	for k := 1; k < m; k++ {
		if !modular.Coprime(k, m) {
			continue
		}
		p.offer(g-k*count, func(gp int) bool { return Count(n, g, gp, offA, offB) == count })
	}

	return p.values()
}

// FindCountRange runs FindExactCount for every divisor of n in
// [minCount, maxCount]. Candidates are ordered by count, then generator.
func FindCountRange(n, g, minCount, maxCount, offA, offB int) []Candidate {
	if n <= 1 || minCount > maxCount {
		return nil
	}
	var out []Candidate
	for _, d := range modular.Divisors(n) {
		if d < minCount || d > maxCount {
			continue
		}
		for _, gp := range FindExactCount(n, g, d, offA, offB) {
			out = append(out, Candidate{Generator: gp, Count: d})
		}
	}

	return out
}

// FindForIndices returns every partner g' whose sequence meets (g, offA) at
// each of the given indices (reduced mod n).
//
// A single index i₀ ≠ 0 solves i₀·Δg ≡ Δb for Δg. Index 0 alone is met by
// every partner when Δb ≡ 0 and by none otherwise. For several indices,
// Δg·(iⱼ − i₀) ≡ 0 forces Δg to be a multiple of step = n / gcd(gaps, n);
// substituting Δg = k·step into the anchor congruence gives the candidates,
// and each one is verified against every index.
func FindForIndices(n, g int, indices []int, offA, offB int) []int {
	if n <= 1 || len(indices) == 0 {
		return nil
	}
	idx := treeset.NewWithIntComparator()
	for _, i := range indices {
		idx.Add(modular.Mod(i, n))
	}
	vals := idx.Values()
	anchor := vals[0].(int)
	db := modular.Mod(offB-offA, n)

	meetsAll := func(gp int) bool {
		dg := modular.Mod(g-gp, n)
		for _, v := range vals {
			if modular.Mod(dg*v.(int), n) != db {
				return false
			}
		}
		return true
	}

	p := newPartners(n, g)
	if len(vals) == 1 && anchor == 0 {
		if db != 0 {
			return nil
		}
		for _, gp := range modular.Generators(n) {
			p.offer(gp, nil)
		}
		return p.values()
	}

	step := 1
	if len(vals) > 1 {
		gaps := n
		for _, v := range vals[1:] {
			gaps = modular.GCD(gaps, v.(int)-anchor)
		}
		step = n / gaps
	}

	ks, ok := SolveLinearCongruence(step*anchor, db, n)
	if !ok {
		return nil
	}
	for _, k := range ks {
		p.offer(g-k*step, meetsAll)
	}

	return p.values()
}
