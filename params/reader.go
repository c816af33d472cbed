// SPDX-License-Identifier: MIT
// Package: rosette/params
//
// reader.go — schema-driven record decoding with first-error semantics.

package params

import "fmt"

// Reader pulls typed values out of a record, taking defaults from a variant
// schema. The first failure is kept and later reads return defaults.
// Failures wrap both the coercion error (ErrBadValue) and the caller's
// family sentinel, so errors.Is matches either.
type Reader struct {
	tag    string
	rec    Record
	schema Schema
	family error
	err    error
}

// NewReader returns a Reader for one variant. family is the sentinel of the
// variant family, e.g. curve.ErrBadParams.
func NewReader(tag string, rec Record, schema Schema, family error) *Reader {
	return &Reader{tag: tag, rec: rec, schema: schema, family: family}
}

func (r *Reader) def(name string) float64 {
	spec, _ := r.schema.Lookup(name)
	return spec.Default
}

// Int reads an integral parameter.
func (r *Reader) Int(name string) int {
	def := int(r.def(name))
	if r.err != nil {
		return def
	}
	v, err := r.rec.Int(name, def)
	if err != nil {
		r.fail(err)
	}

	return v
}

// Float reads a real parameter.
func (r *Reader) Float(name string) float64 {
	def := r.def(name)
	if r.err != nil {
		return def
	}
	v, err := r.rec.Float(name, def)
	if err != nil {
		r.fail(err)
	}

	return v
}

// Err returns the first decoding failure, if any.
func (r *Reader) Err() error { return r.err }

func (r *Reader) fail(err error) {
	if r.family == nil {
		r.err = fmt.Errorf("%s: %w", r.tag, err)
		return
	}
	r.err = fmt.Errorf("%s: %w: %w", r.tag, err, r.family)
}
