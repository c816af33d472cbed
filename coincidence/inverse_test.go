package coincidence_test

import (
	"testing"

	"github.com/katalvlaran/rosette/coincidence"
	"github.com/katalvlaran/rosette/modular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindAny lists partners of 1 over Z_12 for several offset gaps.
func TestFindAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{5, 7, 11}, coincidence.FindAny(12, 1, 0, 0))
	assert.Nil(t, coincidence.FindAny(12, 1, 0, 1))
	assert.Equal(t, []int{11}, coincidence.FindAny(12, 1, 0, 2))
	assert.Nil(t, coincidence.FindAny(1, 0, 0, 0))
	assert.Nil(t, coincidence.FindAny(-4, 1, 0, 0))
}

// TestFindExactCount pins the Z_12 partners of 1.
func TestFindExactCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  []int
	}{
		{1, nil},
		{2, []int{11}},
		{3, nil},
		{4, []int{5}},
		{5, nil},
		{6, []int{7}},
		{12, nil},
		{0, nil},
		{-2, nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, coincidence.FindExactCount(12, 1, tc.count, 0, 0), "count=%d", tc.count)
	}
	// count must divide Δb.
	assert.Nil(t, coincidence.FindExactCount(12, 1, 4, 0, 2))
}

// TestFindExactCount_Property checks soundness and completeness against a
// brute-force scan of every generator.
func TestFindExactCount_Property(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 40; n++ {
		for _, g := range modular.Generators(n) {
			for _, offB := range []int{0, 2, 3} {
				for _, c := range modular.Divisors(n) {
					got := coincidence.FindExactCount(n, g, c, 0, offB)

					var want []int
					for _, gp := range modular.Generators(n) {
						if gp != g && coincidence.Count(n, g, gp, 0, offB) == c {
							want = append(want, gp)
						}
					}
					require.Equal(t, want, got, "n=%d g=%d c=%d offB=%d", n, g, c, offB)

					for _, gp := range got {
						k := modular.Mod(g-gp, n) / c
						assert.Equal(t, c, modular.GCD(k*c, n))
					}
				}
			}
		}
	}
}

// TestFindCountRange groups partners by count.
func TestFindCountRange(t *testing.T) {
	t.Parallel()

	got := coincidence.FindCountRange(12, 1, 1, 12, 0, 0)
	assert.Equal(t, []coincidence.Candidate{
		{Generator: 11, Count: 2},
		{Generator: 5, Count: 4},
		{Generator: 7, Count: 6},
	}, got)

	assert.Equal(t, []coincidence.Candidate{{Generator: 5, Count: 4}}, coincidence.FindCountRange(12, 1, 3, 5, 0, 0))
	assert.Nil(t, coincidence.FindCountRange(12, 1, 7, 3, 0, 0))

	// Across all counts the partners are exactly those with any coincidence.
	for n := 2; n <= 30; n++ {
		all := coincidence.FindCountRange(n, 1, 1, n, 0, 1)
		var gens []int
		for _, c := range all {
			gens = append(gens, c.Generator)
		}
		assert.ElementsMatch(t, coincidence.FindAny(n, 1, 0, 1), gens, "n=%d", n)
	}
}

// TestFindForIndices_EndToEnd finds 47 among the partners of 29 that meet it
// at 0 and 20 over Z_360.
func TestFindForIndices_EndToEnd(t *testing.T) {
	t.Parallel()

	got := coincidence.FindForIndices(360, 29, []int{20, 0, 380}, 0, 0)
	require.NotEmpty(t, got)
	assert.Contains(t, got, 47)
	for _, gp := range got {
		assert.Equal(t, 11, gp%18)
		idx := coincidence.Indices(360, 29, gp, 0, 0)
		assert.Contains(t, idx, 0)
		assert.Contains(t, idx, 20)
	}
}

// TestFindForIndices_Property compares the algebraic search with a brute
// force scan over single indices and index pairs.
func TestFindForIndices_Property(t *testing.T) {
	t.Parallel()

	brute := func(n, g int, indices []int, offA, offB int) []int {
		var out []int
		db := modular.Mod(offB-offA, n)
		for _, gp := range modular.Generators(n) {
			if gp == g {
				continue
			}
			ok := true
			for _, i := range indices {
				if modular.Mod((g-gp)*i, n) != db {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, gp)
			}
		}
		return out
	}

	for n := 2; n <= 24; n++ {
		g := modular.Generators(n)[0]
		for _, offB := range []int{0, 1, 4} {
			for i := 0; i < n; i++ {
				single := []int{i}
				assert.Equal(t, brute(n, g, single, 0, offB), coincidence.FindForIndices(n, g, single, 0, offB),
					"n=%d i=%d offB=%d", n, i, offB)
				for j := i + 1; j < n; j++ {
					pair := []int{j, i}
					assert.Equal(t, brute(n, g, pair, 0, offB), coincidence.FindForIndices(n, g, pair, 0, offB),
						"n=%d pair=%v offB=%d", n, pair, offB)
				}
			}
		}
	}

	assert.Nil(t, coincidence.FindForIndices(12, 1, nil, 0, 0))
	assert.Equal(t, []int{5, 7, 11}, coincidence.FindForIndices(12, 1, []int{0}, 0, 0))
	assert.Nil(t, coincidence.FindForIndices(12, 1, []int{0}, 0, 3))
}

// TestSolver checks options and result limiting.
func TestSolver(t *testing.T) {
	t.Parallel()

	_, err := coincidence.NewSolver(0)
	assert.ErrorIs(t, err, coincidence.ErrBadModulus)
	assert.Panics(t, func() { coincidence.WithLimit(-1) })

	s, err := coincidence.NewSolver(12, coincidence.WithOffsets(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 12, s.N())
	assert.Equal(t, []int{11}, s.Any(1))
	assert.Equal(t, 2, s.Count(1, 11))
	assert.Equal(t, []int{1, 7}, s.Indices(1, 11))
	assert.Equal(t, []int{11}, s.Exact(1, 2))
	assert.Equal(t, []coincidence.Candidate{{Generator: 11, Count: 2}}, s.Range(1, 1, 12))
	assert.Equal(t, []int{11}, s.ForIndices(1, []int{1, 7}))

	limited, err := coincidence.NewSolver(12, coincidence.WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, limited.Any(1))
	assert.Equal(t, 2, limited.Options().Limit)
}
