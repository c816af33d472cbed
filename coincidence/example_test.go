package coincidence_test

import (
	"fmt"

	"github.com/katalvlaran/rosette/coincidence"
)

func ExampleIndices() {
	fmt.Println(coincidence.Count(360, 29, 47, 0, 0))
	fmt.Println(coincidence.Indices(360, 29, 47, 0, 0)[:4])
	// Output:
	// 18
	// [0 20 40 60]
}

func ExampleFindCountRange() {
	for _, c := range coincidence.FindCountRange(12, 1, 1, 12, 0, 0) {
		fmt.Printf("g'=%d meets g=1 %d times\n", c.Generator, c.Count)
	}
	// Output:
	// g'=11 meets g=1 2 times
	// g'=5 meets g=1 4 times
	// g'=7 meets g=1 6 times
}
