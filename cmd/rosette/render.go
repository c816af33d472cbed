// SPDX-License-Identifier: MIT
// Package: rosette/cmd/rosette
//
// render.go — `rosette render` and the flag set shared with `blend`.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/rosette/params"
	"github.com/katalvlaran/rosette/studio"
)

// renderFlags binds one RenderRequest to flags, optionally prefixed
// ("a-", "b-") so blend can take two of them.
type renderFlags struct {
	curve     string
	curveArgs map[string]string
	seq       string
	seqArgs   map[string]string
	n         int
	offset    int
	cosets    bool
}

func (f *renderFlags) bind(fs *pflag.FlagSet, prefix string, defCurve string, defN int) {
	fs.StringVar(&f.curve, prefix+"curve", defCurve, "curve type")
	fs.StringToStringVar(&f.curveArgs, prefix+"param", nil, "curve parameter key=value (repeatable)")
	fs.StringVar(&f.seq, prefix+"seq", "additive", "sequencer type")
	fs.StringToStringVar(&f.seqArgs, prefix+"seq-param", nil, "sequencer parameter key=value (repeatable)")
	fs.IntVar(&f.n, prefix+"n", defN, "modulus: number of sample points")
	fs.IntVar(&f.offset, prefix+"offset", 0, "start index of the walk")
	fs.BoolVar(&f.cosets, prefix+"cosets", false, "draw every coset instead of a single walk")
}

func (f *renderFlags) request() studio.RenderRequest {
	return studio.RenderRequest{
		Curve:     record(f.curve, f.curveArgs),
		Sequencer: record(f.seq, f.seqArgs),
		N:         f.n,
		Offset:    f.offset,
		Cosets:    f.cosets,
	}
}

// record builds a params.Record from a tag and string values; params
// coerces the strings when the variant reads them.
func record(tag string, args map[string]string) params.Record {
	if tag == "" {
		return nil
	}
	rec := params.Record{params.TagKey: tag}
	for k, v := range args {
		rec[k] = v
	}

	return rec
}

func newRenderCmd(g *globals) *cobra.Command {
	var (
		f       renderFlags
		points  bool
		special bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one rosette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []studio.Option
			if special {
				opts = append(opts, studio.WithSpecialPoints())
			}
			r, err := g.engine(opts...).Render(f.request())
			if err != nil {
				return err
			}

			return writeRendering(g, r, points)
		},
	}
	f.bind(cmd.Flags(), "", "rose", 36)
	cmd.Flags().BoolVar(&points, "points", false, "list every vertex")
	cmd.Flags().BoolVar(&special, "special", false, "report zeros, double points and peaks")

	return cmd
}
