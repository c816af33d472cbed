// SPDX-License-Identifier: MIT
// Package: rosette/cmd/rosette
//
// output.go — table and YAML writers for command results.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rosette/geom"
	"github.com/katalvlaran/rosette/scene"
	"github.com/katalvlaran/rosette/studio"
)

func newTable(g *globals, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(g.out)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)

	return t
}

func writeYAML(g *globals, v any) error {
	enc := yaml.NewEncoder(g.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// renderingView is the YAML shape of a Rendering.
type renderingView struct {
	Curve      string       `yaml:"curve"`
	Sequencer  string       `yaml:"sequencer"`
	Period     float64      `yaml:"period"`
	Segments   int          `yaml:"segments"`
	Closed     bool         `yaml:"closed"`
	Degenerate bool         `yaml:"degenerate"`
	Walks      [][]int      `yaml:"walks,flow"`
	Points     [][]float64  `yaml:"points,omitempty,flow"`
	Special    *specialView `yaml:"special,omitempty"`
}

type specialView struct {
	Zeros        int `yaml:"zeros"`
	DoublePoints int `yaml:"double_points"`
	Peaks        int `yaml:"peaks"`
}

func viewRendering(r *studio.Rendering, points bool) renderingView {
	v := renderingView{
		Curve:      r.CurveSignature,
		Sequencer:  r.SequencerSignature,
		Period:     r.Period,
		Segments:   r.Segments(),
		Closed:     r.Closed,
		Degenerate: r.Degenerate,
		Walks:      r.Walks,
	}
	if points {
		for _, p := range r.Polylines {
			v.Points = append(v.Points, pairs(p)...)
		}
	}
	if r.Special != nil {
		v.Special = &specialView{
			Zeros:        len(r.Special.Zeros),
			DoublePoints: len(r.Special.DoublePoints),
			Peaks:        len(r.Special.Peaks),
		}
	}

	return v
}

func pairs(pts []geom.Point) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}

	return out
}

func writeRendering(g *globals, r *studio.Rendering, points bool) error {
	v := viewRendering(r, points)
	if g.format == formatYAML {
		return writeYAML(g, v)
	}

	t := newTable(g, "Rendering")
	t.AppendHeader(table.Row{"Curve", "Sequencer", "Period", "Walks", "Segments", "Closed", "Degenerate"})
	t.AppendRow(table.Row{v.Curve, v.Sequencer, fmtFloat(v.Period), len(v.Walks), v.Segments, v.Closed, v.Degenerate})
	if v.Special != nil {
		t.AppendFooter(table.Row{"Zeros", v.Special.Zeros, "Double points", v.Special.DoublePoints, "Peaks", v.Special.Peaks})
	}
	t.Render()
	if points {
		writePoints(g, r.Polylines)
	}

	return nil
}

func writePoints[P ~[]geom.Point](g *globals, lines []P) {
	t := newTable(g, "Vertices")
	t.AppendHeader(table.Row{"Polyline", "#", "X", "Y"})
	for i, p := range lines {
		for j, pt := range p {
			t.AppendRow(table.Row{i, j, fmtFloat(pt.X), fmtFloat(pt.Y)})
		}
	}
	t.Render()
}

type blendingView struct {
	Mode      string      `yaml:"mode"`
	Segments  int         `yaml:"segments"`
	SegmentsA int         `yaml:"segments_a"`
	SegmentsB int         `yaml:"segments_b"`
	Points    [][]float64 `yaml:"points,omitempty,flow"`
}

func viewBlending(b *studio.Blending, points bool) blendingView {
	v := blendingView{
		Mode:      b.Mode.String(),
		Segments:  b.Segments,
		SegmentsA: b.SegmentsA,
		SegmentsB: b.SegmentsB,
	}
	if points {
		v.Points = pairs(b.Points)
	}

	return v
}

func writeBlending(g *globals, b *studio.Blending, points bool) error {
	v := viewBlending(b, points)
	if g.format == formatYAML {
		return writeYAML(g, v)
	}

	t := newTable(g, "Blend")
	t.AppendHeader(table.Row{"Mode", "Segments A", "Segments B", "Segments"})
	t.AppendRow(table.Row{v.Mode, v.SegmentsA, v.SegmentsB, v.Segments})
	t.Render()
	if points {
		writePoints(g, [][]geom.Point{b.Points})
	}

	return nil
}

type answerView struct {
	Mode       string   `yaml:"mode"`
	N          int      `yaml:"n"`
	Generator  int      `yaml:"generator"`
	Count      int      `yaml:"count"`
	Indices    []int    `yaml:"indices,omitempty,flow"`
	Candidates [][2]int `yaml:"candidates,omitempty,flow"` // generator, count
}

func viewAnswer(q studio.CoincidenceQuery, a studio.CoincidenceAnswer) answerView {
	v := answerView{Mode: string(a.Mode), N: q.N, Generator: q.Generator, Count: a.Count, Indices: a.Indices}
	for _, c := range a.Candidates {
		v.Candidates = append(v.Candidates, [2]int{c.Generator, c.Count})
	}

	return v
}

func writeAnswers(g *globals, qs []studio.CoincidenceQuery, as []studio.CoincidenceAnswer) error {
	views := make([]answerView, len(as))
	for i := range as {
		views[i] = viewAnswer(qs[i], as[i])
	}
	if g.format == formatYAML {
		return writeYAML(g, views)
	}

	t := newTable(g, "Coincidences")
	t.AppendHeader(table.Row{"Mode", "n", "g", "Count", "Result"})
	for _, v := range views {
		t.AppendRow(table.Row{v.Mode, v.N, v.Generator, v.Count, resultCell(v)})
	}
	t.Render()

	return nil
}

func resultCell(v answerView) string {
	var parts []string
	switch {
	case len(v.Indices) > 0:
		for _, i := range v.Indices {
			parts = append(parts, strconv.Itoa(i))
		}
	case len(v.Candidates) > 0:
		for _, c := range v.Candidates {
			parts = append(parts, fmt.Sprintf("%d(×%d)", c[0], c[1]))
		}
	default:
		return "-"
	}

	return strings.Join(parts, " ")
}

func writeReport(g *globals, rep *scene.Report) error {
	if g.format == formatYAML {
		doc := struct {
			Name    string          `yaml:"name,omitempty"`
			Renders []renderingView `yaml:"render,omitempty"`
			Blends  []blendingView  `yaml:"blend,omitempty"`
			Queries []answerView    `yaml:"query,omitempty"`
		}{Name: rep.Name}
		for _, r := range rep.Renders {
			doc.Renders = append(doc.Renders, viewRendering(r, false))
		}
		for _, b := range rep.Blends {
			doc.Blends = append(doc.Blends, viewBlending(b, false))
		}
		for i := range rep.Answers {
			doc.Queries = append(doc.Queries, viewAnswer(rep.Questions[i], rep.Answers[i]))
		}
		return writeYAML(g, doc)
	}

	for _, r := range rep.Renders {
		if err := writeRendering(g, r, false); err != nil {
			return err
		}
	}
	for _, b := range rep.Blends {
		if err := writeBlending(g, b, false); err != nil {
			return err
		}
	}
	if len(rep.Answers) > 0 {
		return writeAnswers(g, rep.Questions, rep.Answers)
	}

	return nil
}

func writeCatalog(g *globals, vs []studio.VariantSchema) error {
	if g.format == formatYAML {
		return writeYAML(g, vs)
	}

	t := newTable(g, "Variants")
	t.AppendHeader(table.Row{"Family", "Type", "Param", "Kind", "Default", "Min", "Max"})
	for _, v := range vs {
		if len(v.Params) == 0 {
			t.AppendRow(table.Row{v.Family, v.Tag, "-", "", "", "", ""})
			continue
		}
		for _, p := range v.Params {
			t.AppendRow(table.Row{v.Family, v.Tag, p.Name, p.Kind.String(), fmtFloat(p.Default), fmtFloat(p.Min), fmtFloat(p.Max)})
		}
	}
	t.Render()

	return nil
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
