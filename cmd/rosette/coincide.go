// SPDX-License-Identifier: MIT
// Package: rosette/cmd/rosette
//
// coincide.go — `rosette coincide`.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rosette/studio"
)

func newCoincideCmd(g *globals) *cobra.Command {
	var (
		q    studio.CoincidenceQuery
		mode string
	)
	modes := make([]string, 0, len(studio.QueryModes()))
	for _, m := range studio.QueryModes() {
		modes = append(modes, string(m))
	}

	cmd := &cobra.Command{
		Use:   "coincide",
		Short: "Find where two additive walks over Z_n meet",
		Long: fmt.Sprintf(`Sequences A(i) = offset-a + i·generator and B(i) = offset-b + i·partner
(mod n) coincide at i when A(i) = B(i).

Modes: %s.`, strings.Join(modes, ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.Mode = studio.QueryMode(mode)
			if q.Mode == studio.QueryRange && !cmd.Flags().Changed("max") {
				q.Max = q.N
			}
			ans, err := g.engine().Coincide(q)
			if err != nil {
				return err
			}

			return writeAnswers(g, []studio.CoincidenceQuery{q}, []studio.CoincidenceAnswer{ans})
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&mode, "mode", "m", string(studio.QueryIndices), "query mode")
	fs.IntVar(&q.N, "n", 360, "modulus")
	fs.IntVarP(&q.Generator, "generator", "g", 1, "reference generator")
	fs.IntVarP(&q.Partner, "partner", "p", 0, "partner generator (count, indices)")
	fs.IntVar(&q.OffsetA, "offset-a", 0, "offset of the reference sequence")
	fs.IntVar(&q.OffsetB, "offset-b", 0, "offset of the partner sequence")
	fs.IntVar(&q.Count, "count", 0, "wanted coincidence count (exact)")
	fs.IntVar(&q.Min, "min", 1, "lowest count (range)")
	fs.IntVar(&q.Max, "max", 0, "highest count (range; defaults to n)")
	fs.IntSliceVar(&q.Indices, "indices", nil, "indices that must coincide (for_indices)")
	fs.IntVar(&q.Limit, "limit", 0, "return at most this many candidates (0: all)")

	return cmd
}
