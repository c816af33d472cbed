// SPDX-License-Identifier: MIT
// Package: rosette/coincidence
//
// sequence.go — the additive sequence descriptor.

package coincidence

import (
	"fmt"

	"github.com/katalvlaran/rosette/modular"
	"github.com/katalvlaran/rosette/sequencer"
)

// Sequence describes S(i) = (Offset + i·Generator) mod N.
type Sequence struct {
	N         int
	Generator int
	Offset    int
}

// At returns S(i). It returns 0 for N ≤ 0.
func (s Sequence) At(i int) int {
	if s.N <= 0 {
		return 0
	}

	return modular.Mod(s.Offset+i*s.Generator, s.N)
}

// Validate reports ErrBadModulus for N ≤ 0.
func (s Sequence) Validate() error {
	if s.N <= 0 {
		return fmt.Errorf("Validate: n=%d: %w", s.N, ErrBadModulus)
	}

	return nil
}

// Sequencer returns the additive sequencer that walks s.
func (s Sequence) Sequencer() sequencer.Additive {
	return sequencer.Additive{Step: s.Generator}
}

// Coincide returns the indices where s and o agree.
func (s Sequence) Coincide(o Sequence) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.N != o.N {
		return nil, fmt.Errorf("Coincide: %d vs %d: %w", s.N, o.N, ErrModulusMismatch)
	}

	return Indices(s.N, s.Generator, o.Generator, s.Offset, o.Offset), nil
}
