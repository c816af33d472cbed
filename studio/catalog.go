// SPDX-License-Identifier: MIT
// Package: rosette/studio
//
// catalog.go — parameter schemas of every registered variant, for front
// ends that build input forms.

package studio

import (
	"github.com/katalvlaran/rosette/curve"
	"github.com/katalvlaran/rosette/params"
	"github.com/katalvlaran/rosette/resample"
	"github.com/katalvlaran/rosette/sequencer"
)

// Variant families.
const (
	FamilyCurve     = "curve"
	FamilySequencer = "sequencer"
	FamilyConnector = "connector"
)

// VariantSchema is the parameter schema of one registered variant.
type VariantSchema struct {
	Family string        `yaml:"family"`
	Tag    string        `yaml:"type"`
	Params params.Schema `yaml:"params"`
}

// Catalog lists curves, then sequencers, then connectors, each by tag.
func Catalog() []VariantSchema {
	var out []VariantSchema
	for _, tag := range curve.Tags() {
		s, _ := curve.SchemaFor(tag)
		out = append(out, VariantSchema{Family: FamilyCurve, Tag: tag, Params: s})
	}
	for _, tag := range sequencer.Tags() {
		s, _ := sequencer.SchemaFor(tag)
		out = append(out, VariantSchema{Family: FamilySequencer, Tag: tag, Params: s})
	}
	for _, tag := range resample.ConnectorTags() {
		s, _ := resample.ConnectorSchema(tag)
		out = append(out, VariantSchema{Family: FamilyConnector, Tag: tag, Params: s})
	}

	return out
}
