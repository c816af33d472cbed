// SPDX-License-Identifier: MIT
// Package: rosette/studio
//
// types.go — request and response shapes. Field tags follow the scene file
// layout so requests can be decoded straight from YAML.

package studio

import (
	"github.com/katalvlaran/rosette/coincidence"
	"github.com/katalvlaran/rosette/curve"
	"github.com/katalvlaran/rosette/params"
	"github.com/katalvlaran/rosette/polyline"
	"github.com/katalvlaran/rosette/resample"
)

// RenderRequest describes one rosette.
type RenderRequest struct {
	Curve     params.Record `yaml:"curve"`
	Sequencer params.Record `yaml:"sequencer"`
	N         int           `yaml:"n"`
	Offset    int           `yaml:"offset"`
	Cosets    bool          `yaml:"cosets"` // draw every coset instead of one walk
}

// Rendering is the result of Render.
type Rendering struct {
	CurveSignature     string
	SequencerSignature string
	Period             float64
	Polylines          []polyline.Polyline
	Walks              [][]int
	Closed             bool // every walk returned to its start
	Degenerate         bool // every polyline collapsed to a point (or none exists)
	Special            *curve.SpecialPoints
}

// Segments returns the total chord count over all polylines.
func (r *Rendering) Segments() int {
	total := 0
	for _, p := range r.Polylines {
		total += p.Segments()
	}

	return total
}

// BlendRequest interpolates between two renders. Threshold overrides the
// engine default when set. Connector is a connector record; empty means
// straight chords.
type BlendRequest struct {
	A         RenderRequest `yaml:"a"`
	B         RenderRequest `yaml:"b"`
	Weight    float64       `yaml:"weight"`
	Threshold *int          `yaml:"threshold,omitempty"`
	Connector params.Record `yaml:"connector,omitempty"`
	Samples   int           `yaml:"samples,omitempty"`
}

// Blending is the result of Blend.
type Blending struct {
	resample.Result
	SegmentsA int
	SegmentsB int
}

// QueryMode selects a coincidence computation.
type QueryMode string

const (
	QueryCount      QueryMode = "count"       // number of coincidences of two generators
	QueryIndices    QueryMode = "indices"     // coincident indices of two generators
	QueryAny        QueryMode = "any"         // partners with at least one coincidence
	QueryExact      QueryMode = "exact"       // partners with exactly Count coincidences
	QueryRange      QueryMode = "range"       // partners with Min ≤ count ≤ Max
	QueryForIndices QueryMode = "for_indices" // partners meeting at every index in Indices
)

// QueryModes lists every supported mode.
func QueryModes() []QueryMode {
	return []QueryMode{QueryCount, QueryIndices, QueryAny, QueryExact, QueryRange, QueryForIndices}
}

// CoincidenceQuery is a request against two additive sequences over Z_N.
// Partner is only read by the count and indices modes.
type CoincidenceQuery struct {
	Mode      QueryMode `yaml:"mode"`
	N         int       `yaml:"n"`
	Generator int       `yaml:"generator"`
	Partner   int       `yaml:"partner,omitempty"`
	OffsetA   int       `yaml:"offset_a,omitempty"`
	OffsetB   int       `yaml:"offset_b,omitempty"`
	Count     int       `yaml:"count,omitempty"`
	Min       int       `yaml:"min,omitempty"`
	Max       int       `yaml:"max,omitempty"`
	Indices   []int     `yaml:"indices,omitempty"`
	Limit     int       `yaml:"limit,omitempty"`
}

// CoincidenceAnswer carries the result of a query. Which fields are filled
// depends on the mode: count and indices set Count and Indices, inverse
// searches set Candidates (Count is then the number of candidates).
type CoincidenceAnswer struct {
	Mode       QueryMode
	Count      int
	Indices    []int
	Candidates []coincidence.Candidate
}

// Generators returns the candidate generators in order.
func (a CoincidenceAnswer) Generators() []int {
	if len(a.Candidates) == 0 {
		return nil
	}
	out := make([]int, len(a.Candidates))
	for i, c := range a.Candidates {
		out[i] = c.Generator
	}

	return out
}
