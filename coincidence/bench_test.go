package coincidence_test

import (
	"testing"

	"github.com/katalvlaran/rosette/coincidence"
)

// BenchmarkFindCountRange measures the full divisor sweep over Z_2520,
// a highly composite modulus with 48 divisors.
func BenchmarkFindCountRange(b *testing.B) {
	const n = 2520
	for i := 0; i < b.N; i++ {
		_ = coincidence.FindCountRange(n, 1, 1, n, 0, 0)
	}
}

// BenchmarkFindForIndices measures the multi-index search.
// Complexity: O(d·|indices|) after the congruence solve.
func BenchmarkFindForIndices(b *testing.B) {
	indices := []int{20, 40, 100}
	for i := 0; i < b.N; i++ {
		_ = coincidence.FindForIndices(360, 29, indices, 0, 0)
	}
}
