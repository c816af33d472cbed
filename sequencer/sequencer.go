// SPDX-License-Identifier: MIT
// Package: rosette/sequencer
//
// sequencer.go — the Sequencer contract and walk diagnostics.

package sequencer

import (
	"github.com/katalvlaran/rosette/modular"
	"github.com/katalvlaran/rosette/params"
)

// Sequencer produces index walks over Z_n.
//
// Generate returns the walk starting at start (reduced mod n). Cosets
// returns one start index per disjoint orbit, or nil when the variant does
// not partition Z_n.
type Sequencer interface {
	Tag() string
	Generate(n, start int) []int
	Cosets(n int) []int
	Signature() string
	Record() params.Record
}

// Closed reports whether walk returns to its first index.
func Closed(walk []int) bool {
	return len(walk) >= 2 && walk[0] == walk[len(walk)-1]
}

// Chords returns the number of chords in walk.
func Chords(walk []int) int {
	if len(walk) < 2 {
		return 0
	}

	return len(walk) - 1
}

// ExpectedChords returns how many chords a closed walk of s over Z_n has,
// or 0 when it cannot be known without walking (Multiplicative).
func ExpectedChords(s Sequencer, n int) int {
	if n <= 0 {
		return 0
	}
	switch v := s.(type) {
	case Additive:
		return modular.OrbitLength(n, v.Step)
	case Alternating:
		return 2 * modular.OrbitLength(n, v.A+v.B)
	case FourStep:
		return 4 * modular.OrbitLength(n, v.A+v.B+v.C+v.D)
	default:
		return 0
	}
}

// phased walks Z_n by cycling through incs until the state (value, phase)
// returns to (start, 0) or limit steps were taken.
func phased(n, start int, incs []int, limit int) []int {
	if n <= 0 || len(incs) == 0 {
		return nil
	}
	start = modular.Mod(start, n)
	walk := make([]int, 1, n+1)
	walk[0] = start

	v, phase := start, 0
	for i := 0; i < limit; i++ {
		v = modular.Mod(v+incs[phase], n)
		phase = (phase + 1) % len(incs)
		walk = append(walk, v)
		if v == start && phase == 0 {
			break
		}
	}

	return walk
}

// cosetStarts returns 0 … gcd(n, sum)−1.
func cosetStarts(n, sum int) []int {
	if n <= 0 {
		return nil
	}
	g := modular.GCD(n, sum)
	starts := make([]int, g)
	for i := range starts {
		starts[i] = i
	}

	return starts
}
