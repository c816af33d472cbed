// SPDX-License-Identifier: MIT
// Package: rosette/sequencer
//
// multiplicative.go — geometric walk S(i) = start·gⁱ mod n.
//
// When gcd(start, n) > 1 or gcd(g, n) > 1 the orbit may fall into a cycle
// that never revisits start. The walk stops the first time a value repeats,
// so it is at most n+1 long either way.

package sequencer

import (
	"github.com/katalvlaran/rosette/modular"
	"github.com/katalvlaran/rosette/params"
)

const TagMultiplicative = "multiplicative"

// Multiplicative multiplies by Factor at every step.
type Multiplicative struct {
	Factor int
}

var multiplicativeSchema = params.Schema{
	{Name: "factor", Kind: params.KindInt, Default: 2, Min: 0, Max: 720},
}

func multiplicativeFromRecord(rec params.Record) (Sequencer, error) {
	r := newReader(TagMultiplicative, rec, multiplicativeSchema)
	s := Multiplicative{Factor: r.Int("factor")}

	return done(s, r.Err())
}

func (Multiplicative) Tag() string { return TagMultiplicative }

// Generate stops on return to start, on the first repeated non-start value,
// or after n+1 steps.
func (s Multiplicative) Generate(n, start int) []int {
	if n <= 0 {
		return nil
	}
	start = modular.Mod(start, n)
	g := modular.Mod(s.Factor, n)
	seen := make([]bool, n)
	seen[start] = true
	walk := []int{start}

	v := start
	for i := 0; i <= n; i++ {
		v = (v * g) % n
		walk = append(walk, v)
		if v == start || seen[v] {
			break
		}
		seen[v] = true
	}

	return walk
}

// Cosets returns nil: multiplicative orbits do not partition Z_n.
func (Multiplicative) Cosets(int) []int { return nil }

func (s Multiplicative) Record() params.Record {
	return params.Record{params.TagKey: TagMultiplicative, "factor": s.Factor}
}

func (s Multiplicative) Signature() string { return s.Record().Signature() }
