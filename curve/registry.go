// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// registry.go — built-in curve variants and the tag → constructor table.
//
// Contract:
//   • New(c.Record()) reproduces c for every built-in variant.
//   • Register panics on programmer errors; New never panics.

package curve

import (
	"github.com/katalvlaran/rosette/params"
)

// Factory builds a curve from a flat record.
type Factory = params.Factory[Curve]

var registry = params.NewRegistry[Curve]("curve", ErrUnknownCurve)

func init() {
	Register(TagRose, roseFromRecord, roseSchema)
	Register(TagBlendedRose, blendedRoseFromRecord, blendedRoseSchema)
	Register(TagCircle, circleFromRecord, circleSchema)
	Register(TagEpitrochoid, epitrochoidFromRecord, epitrochoidSchema)
	Register(TagLissajous, lissajousFromRecord, lissajousSchema)
	Register(TagPolygon, polygonFromRecord, polygonSchema)
	Register(TagSuperformula, superformulaFromRecord, superformulaSchema)
	Register(TagFarris, farrisFromRecord, farrisSchema)
}

// Register adds a curve variant under tag. It panics on an empty tag, a nil
// factory or a duplicate tag.
func Register(tag string, f Factory, schema params.Schema) {
	registry.Register(tag, f, schema)
}

// New builds the curve described by rec. Unknown tags yield ErrUnknownCurve,
// unreadable values ErrBadParams.
func New(rec params.Record) (Curve, error) {
	return registry.New(rec)
}

// Tags returns the registered tags in ascending order.
func Tags() []string {
	return registry.Tags()
}

// SchemaFor returns the parameter schema registered for tag.
func SchemaFor(tag string) (params.Schema, bool) {
	return registry.Schema(tag)
}
