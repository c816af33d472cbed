// SPDX-License-Identifier: MIT
// Package: rosette/resample
//
// errors.go — sentinel errors for the resample package.

package resample

import "errors"

var (
	// ErrTooFewPoints indicates a polyline with fewer than two points.
	ErrTooFewPoints = errors.New("resample: need at least two points")

	// ErrNotMultiple indicates an exact target that is not a positive
	// multiple of the input segment count.
	ErrNotMultiple = errors.New("resample: target is not a multiple of the segment count")

	// ErrBadTarget indicates a non-positive approximate target.
	ErrBadTarget = errors.New("resample: target must be positive")

	// ErrLengthMismatch indicates blending polylines of different lengths.
	ErrLengthMismatch = errors.New("resample: polylines differ in length")

	// ErrUnknownConnector indicates that a record's type tag is not a
	// registered connector.
	ErrUnknownConnector = errors.New("resample: unknown connector type")

	// ErrBadParams indicates a connector record value of the wrong kind.
	ErrBadParams = errors.New("resample: invalid connector parameters")

	// ErrBadThreshold is the panic message of WithThreshold(n < 0).
	ErrBadThreshold = errors.New("resample: threshold must be non-negative")

	// ErrNilConnector is the panic message of WithConnector(nil).
	ErrNilConnector = errors.New("resample: connector must not be nil")

	// ErrBadSamples is the panic message of WithConnectorSamples(k < 1).
	ErrBadSamples = errors.New("resample: connector samples must be at least 1")
)
