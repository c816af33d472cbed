// Command rosette renders chordal rosettes, blends them and answers
// coincidence queries from the command line.
//
//	rosette render --curve rose --param n=5 --param d=3 --seq additive --seq-param step=7 --n 120
//	rosette blend --a-n 12 --b-curve rose --b-n 7 --weight 0.5 --connector arc
//	rosette coincide --mode indices --n 360 --generator 29 --partner 47
//	rosette run scene.yaml
//	rosette schema curve
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(2)
	}
}
