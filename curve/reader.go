// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// reader.go — record decoding glue for the built-in variants.

package curve

import "github.com/katalvlaran/rosette/params"

func newReader(tag string, rec params.Record, schema params.Schema) *params.Reader {
	return params.NewReader(tag, rec, schema, ErrBadParams)
}

// done returns c, or nil when decoding failed.
func done(c Curve, err error) (Curve, error) {
	if err != nil {
		return nil, err
	}

	return c, nil
}
