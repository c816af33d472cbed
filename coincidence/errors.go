// SPDX-License-Identifier: MIT
// Package: rosette/coincidence
//
// errors.go — sentinel errors for the coincidence package.
//
// Only malformed descriptors are errors. An empty answer (no coincidence,
// no partner generator) is a valid result.

package coincidence

import "errors"

// ErrBadModulus indicates a modulus n ≤ 0.
var ErrBadModulus = errors.New("coincidence: modulus must be positive")

// ErrModulusMismatch indicates two sequences over different groups.
var ErrModulusMismatch = errors.New("coincidence: sequences have different moduli")

// ErrBadLimit indicates a negative result limit passed to WithLimit.
var ErrBadLimit = errors.New("coincidence: limit must be non-negative")
