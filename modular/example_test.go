package modular_test

import (
	"fmt"

	"github.com/katalvlaran/rosette/modular"
)

// ExampleGCD shows how the orbit structure of an additive walk over Z_360
// follows from a single gcd.
func ExampleGCD() {
	n, step := 360, 342
	g := modular.GCD(step, n)
	fmt.Printf("gcd=%d orbits=%d length=%d\n", g, g, n/g)
	// Output:
	// gcd=18 orbits=18 length=20
}

// ExamplePrimeFactors factors a typical modulus.
func ExamplePrimeFactors() {
	fmt.Println(modular.PrimeFactors(360))
	// Output:
	// [2 2 2 3 3 5]
}
