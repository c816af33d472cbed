// SPDX-License-Identifier: MIT
// Package: rosette/params
//
// errors.go — sentinel errors for the params package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Accessors wrap the sentinel with the offending key via %w.

package params

import "errors"

// ErrBadValue indicates that a record value could not be coerced into the
// requested scalar type (e.g. "abc" read as an int).
var ErrBadValue = errors.New("params: value cannot be coerced")

// ErrMissingTag indicates that a record carries no non-empty "type" entry.
var ErrMissingTag = errors.New("params: record has no type tag")
