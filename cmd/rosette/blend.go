// SPDX-License-Identifier: MIT
// Package: rosette/cmd/rosette
//
// blend.go — `rosette blend`.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rosette/studio"
)

func newBlendCmd(g *globals) *cobra.Command {
	var (
		a, b      renderFlags
		weight    float64
		threshold int
		connector string
		connArgs  map[string]string
		samples   int
		points    bool
	)
	cmd := &cobra.Command{
		Use:   "blend",
		Short: "Interpolate between two rosettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := studio.BlendRequest{
				A:         a.request(),
				B:         b.request(),
				Weight:    weight,
				Connector: record(connector, connArgs),
				Samples:   samples,
			}
			if cmd.Flags().Changed("threshold") {
				req.Threshold = &threshold
			}
			res, err := g.engine().Blend(req)
			if err != nil {
				return err
			}

			return writeBlending(g, res, points)
		},
	}
	fs := cmd.Flags()
	a.bind(fs, "a-", "circle", 12)
	b.bind(fs, "b-", "rose", 7)
	fs.Float64VarP(&weight, "weight", "w", 0.5, "blend weight in [0, 1]; 0 is A, 1 is B")
	fs.IntVar(&threshold, "threshold", 0, "largest exact LCM; 0 always samples approximately")
	fs.StringVar(&connector, "connector", "straight", "chord shape: straight, wave, bezier or arc")
	fs.StringToStringVar(&connArgs, "connector-param", nil, "connector parameter key=value (repeatable)")
	fs.IntVar(&samples, "samples", 0, "sub-segments per deformed chord (0 keeps the default)")
	fs.BoolVar(&points, "points", false, "list every vertex")

	return cmd
}
