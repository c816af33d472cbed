// SPDX-License-Identifier: MIT
// Package: rosette/curve
//
// errors.go — sentinel errors for the curve package.
//
// Degenerate geometry is NOT an error: a zero denominator or frequency yields
// a zero closure period and callers treat that as "nothing to sample".
// Errors are reserved for records that cannot describe a curve at all.

package curve

import "errors"

// ErrUnknownCurve indicates that a record's type tag is not registered.
var ErrUnknownCurve = errors.New("curve: unknown curve type")

// ErrBadParams indicates that a record carries a value that cannot be read
// as the parameter's kind.
var ErrBadParams = errors.New("curve: invalid parameters")
