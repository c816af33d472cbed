// SPDX-License-Identifier: MIT
// Package: rosette/cmd/rosette
//
// root.go — command tree and shared flags.

package main

import (
	"fmt"
	"io"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rosette/studio"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

type globals struct {
	out     io.Writer
	verbose bool
	format  string
}

func (g *globals) engine(opts ...studio.Option) *studio.Engine {
	if g.verbose {
		opts = append(opts, studio.WithLogger(l.NewConsoleLoggerWrapper()))
	}

	return studio.NewEngine(opts...)
}

func (g *globals) checkFormat() error {
	switch g.format {
	case formatTable, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown --format %q (want %s or %s)", g.format, formatTable, formatYAML)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	g := &globals{out: out}
	root := &cobra.Command{
		Use:   "rosette",
		Short: "Chordal rosettes over cyclic groups",
		Long: `rosette samples a parametric curve at the angles picked by an integer
walk over Z_n and joins the samples with chords. It also blends two
rosettes of different sizes and solves the linear congruences that tell
where two additive walks meet.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return g.checkFormat()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log engine activity to the console")
	root.PersistentFlags().StringVarP(&g.format, "format", "f", formatTable, "output format: table or yaml")

	root.AddCommand(
		newRenderCmd(g),
		newBlendCmd(g),
		newCoincideCmd(g),
		newRunCmd(g),
		newSchemaCmd(g),
	)

	return root
}
