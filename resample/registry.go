// SPDX-License-Identifier: MIT
// Package: rosette/resample
//
// registry.go — connector records: tag → constructor table.

package resample

import (
	"github.com/katalvlaran/rosette/params"
)

var connectors = params.NewRegistry[Connector]("connector", ErrUnknownConnector)

func init() {
	connectors.Register(TagStraight, func(params.Record) (Connector, error) { return Straight{}, nil }, nil)
	connectors.Register(TagWave, waveFromRecord, waveSchema)
	connectors.Register(TagBezier, bezierFromRecord, bulgeSchema)
	connectors.Register(TagArc, arcFromRecord, bulgeSchema)
}

var (
	waveSchema = params.Schema{
		{Name: "amplitude", Kind: params.KindFloat, Default: 0.1, Min: -1, Max: 1},
		{Name: "cycles", Kind: params.KindFloat, Default: 1, Min: 0, Max: 20},
	}
	bulgeSchema = params.Schema{
		{Name: "bulge", Kind: params.KindFloat, Default: 0.25, Min: -2, Max: 2},
	}
)

func waveFromRecord(rec params.Record) (Connector, error) {
	r := params.NewReader(TagWave, rec, waveSchema, ErrBadParams)
	c := Wave{Amplitude: r.Float("amplitude"), Cycles: r.Float("cycles")}

	return done(c, r.Err())
}

func bezierFromRecord(rec params.Record) (Connector, error) {
	r := params.NewReader(TagBezier, rec, bulgeSchema, ErrBadParams)
	return done(Bezier{Bulge: r.Float("bulge")}, r.Err())
}

func arcFromRecord(rec params.Record) (Connector, error) {
	r := params.NewReader(TagArc, rec, bulgeSchema, ErrBadParams)
	return done(Arc{Bulge: r.Float("bulge")}, r.Err())
}

func done(c Connector, err error) (Connector, error) {
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewConnector builds the connector described by rec. An empty record
// yields Straight.
func NewConnector(rec params.Record) (Connector, error) {
	if len(rec) == 0 {
		return Straight{}, nil
	}

	return connectors.New(rec)
}

// ConnectorTags returns the registered connector tags in ascending order.
func ConnectorTags() []string {
	return connectors.Tags()
}

// ConnectorSchema returns the parameter schema of a connector tag.
func ConnectorSchema(tag string) (params.Schema, bool) {
	return connectors.Schema(tag)
}
