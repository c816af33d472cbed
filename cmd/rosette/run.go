// SPDX-License-Identifier: MIT
// Package: rosette/cmd/rosette
//
// run.go — `rosette run` and `rosette schema`.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rosette/scene"
	"github.com/katalvlaran/rosette/studio"
)

func newRunCmd(g *globals) *cobra.Command {
	var special bool
	cmd := &cobra.Command{
		Use:   "run <scene.yaml>",
		Short: "Execute every request of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			var opts []studio.Option
			if special {
				opts = append(opts, studio.WithSpecialPoints())
			}
			rep, err := s.Run(g.engine(opts...))
			if err != nil {
				return err
			}

			return writeReport(g, rep)
		},
	}
	cmd.Flags().BoolVar(&special, "special", false, "report zeros, double points and peaks")

	return cmd
}

func newSchemaCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:       "schema [curve|sequencer|connector]",
		Short:     "List variant types and their parameters",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{studio.FamilyCurve, studio.FamilySequencer, studio.FamilyConnector},
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []studio.VariantSchema
			for _, v := range studio.Catalog() {
				if len(args) == 0 || v.Family == args[0] {
					out = append(out, v)
				}
			}
			if len(out) == 0 {
				return fmt.Errorf("unknown family %q", args[0])
			}

			return writeCatalog(g, out)
		},
	}
}
