// SPDX-License-Identifier: MIT
// Package: rosette/sequencer
//
// errors.go — sentinel errors for the sequencer package.
//
// A walk that hits its iteration cap is NOT an error; it is returned short
// and Closed(walk) reports false.

package sequencer

import "errors"

// ErrUnknownSequencer indicates that a record's type tag is not registered.
var ErrUnknownSequencer = errors.New("sequencer: unknown sequencer type")

// ErrBadParams indicates that a record carries a value that cannot be read
// as the parameter's kind.
var ErrBadParams = errors.New("sequencer: invalid parameters")
