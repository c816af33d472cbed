// SPDX-License-Identifier: MIT
// Package: rosette/sequencer
//
// registry.go — built-in sequencer variants and the tag → constructor table.

package sequencer

import (
	"github.com/katalvlaran/rosette/params"
)

// Factory builds a sequencer from a flat record.
type Factory = params.Factory[Sequencer]

var registry = params.NewRegistry[Sequencer]("sequencer", ErrUnknownSequencer)

func init() {
	Register(TagAdditive, additiveFromRecord, additiveSchema)
	Register(TagAlternating, alternatingFromRecord, alternatingSchema)
	Register(TagFourStep, fourStepFromRecord, fourStepSchema)
	Register(TagMultiplicative, multiplicativeFromRecord, multiplicativeSchema)
}

// Register adds a sequencer variant under tag. It panics on an empty tag, a
// nil factory or a duplicate tag.
func Register(tag string, f Factory, schema params.Schema) {
	registry.Register(tag, f, schema)
}

// New builds the sequencer described by rec.
func New(rec params.Record) (Sequencer, error) {
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

func newReader(tag string, rec params.Record, schema params.Schema) *params.Reader {
	return params.NewReader(tag, rec, schema, ErrBadParams)
}

func done(s Sequencer, err error) (Sequencer, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}
