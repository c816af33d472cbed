// SPDX-License-Identifier: MIT
// Package: rosette/sequencer
//
// additive.go — Additive, Alternating and FourStep: walks driven by a fixed
// cycle of increments.
//
// Complexity: O(k·n) time and memory for a cycle of k increments.

package sequencer

import (
	"github.com/katalvlaran/rosette/modular"
	"github.com/katalvlaran/rosette/params"
)

const (
	TagAdditive    = "additive"
	TagAlternating = "alternating"
	TagFourStep    = "four_step"
)

func stepSpec(name string, def float64) params.Spec {
	return params.Spec{Name: name, Kind: params.KindInt, Default: def, Min: 0, Max: 720}
}

// Additive steps by a constant increment: S(i) = (start + i·Step) mod n.
// The walk closes after n / gcd(Step, n) chords.
type Additive struct {
	Step int
}

var additiveSchema = params.Schema{stepSpec("step", 1)}

func additiveFromRecord(rec params.Record) (Sequencer, error) {
	r := newReader(TagAdditive, rec, additiveSchema)
	s := Additive{Step: r.Int("step")}

	return done(s, r.Err())
}

func (Additive) Tag() string { return TagAdditive }

// Generate walks at most n+1 steps.
func (s Additive) Generate(n, start int) []int {
	return phased(n, start, []int{s.Step}, n+1)
}

// Cosets returns 0 … gcd(Step, n)−1.
func (s Additive) Cosets(n int) []int {
	return cosetStarts(n, s.Step)
}

func (s Additive) Record() params.Record {
	return params.Record{params.TagKey: TagAdditive, "step": s.Step}
}

func (s Additive) Signature() string { return s.Record().Signature() }

// Alternating alternates two increments. The walk is tracked as the pair
// (value, phase) and closes when it returns to (start, 0), so its chord
// count is even.
type Alternating struct {
	A, B int
}

var alternatingSchema = params.Schema{stepSpec("a", 1), stepSpec("b", 2)}

func alternatingFromRecord(rec params.Record) (Sequencer, error) {
	r := newReader(TagAlternating, rec, alternatingSchema)
	s := Alternating{A: r.Int("a"), B: r.Int("b")}

	return done(s, r.Err())
}

func (Alternating) Tag() string { return TagAlternating }

// Generate walks at most 2n+2 steps.
func (s Alternating) Generate(n, start int) []int {
	return phased(n, start, []int{s.A, s.B}, 2*n+2)
}

// Cosets returns 0 … gcd(n, A+B)−1.
func (s Alternating) Cosets(n int) []int {
	return cosetStarts(n, s.A+s.B)
}

func (s Alternating) Record() params.Record {
	return params.Record{params.TagKey: TagAlternating, "a": s.A, "b": s.B}
}

func (s Alternating) Signature() string { return s.Record().Signature() }

// FourStep cycles through four increments A, B, C, D.
type FourStep struct {
	A, B, C, D int
}

var fourStepSchema = params.Schema{stepSpec("a", 1), stepSpec("b", 2), stepSpec("c", 3), stepSpec("d", 4)}

func fourStepFromRecord(rec params.Record) (Sequencer, error) {
	r := newReader(TagFourStep, rec, fourStepSchema)
	s := FourStep{A: r.Int("a"), B: r.Int("b"), C: r.Int("c"), D: r.Int("d")}

	return done(s, r.Err())
}

func (FourStep) Tag() string { return TagFourStep }

// Generate walks at most 4n+4 steps.
func (s FourStep) Generate(n, start int) []int {
	return phased(n, start, []int{s.A, s.B, s.C, s.D}, 4*n+4)
}

// Cosets returns 0 … gcd(n, A+B+C+D)−1.
func (s FourStep) Cosets(n int) []int {
	return cosetStarts(n, s.A+s.B+s.C+s.D)
}

func (s FourStep) Record() params.Record {
	return params.Record{params.TagKey: TagFourStep, "a": s.A, "b": s.B, "c": s.C, "d": s.D}
}

func (s FourStep) Signature() string { return s.Record().Signature() }

// Generator reports whether s alone visits every index of Z_n.
func (s Additive) Generator(n int) bool {
	return modular.IsGenerator(modular.Mod(s.Step, n), n)
}
