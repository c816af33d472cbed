// SPDX-License-Identifier: MIT
// Package: rosette/studio
//
// errors.go — sentinel errors for request validation.

package studio

import "errors"

var (
	// ErrBadModulus indicates a request with n ≤ 0.
	ErrBadModulus = errors.New("studio: modulus must be positive")

	// ErrBadQuery indicates a coincidence query that cannot be answered as
	// posed (unknown mode, empty index set, inverted range).
	ErrBadQuery = errors.New("studio: malformed coincidence query")

	// ErrBadTTL is the panic message of WithCacheTTL(d < 0).
	ErrBadTTL = errors.New("studio: cache TTL must be non-negative")
)
