// SPDX-License-Identifier: MIT
// Package: rosette/scene
//
// errors.go — sentinel errors for scene files.

package scene

import "errors"

var (
	// ErrEmptyScene indicates a document with no requests.
	ErrEmptyScene = errors.New("scene: no render, blend or query entries")

	// ErrDecode indicates a document that is not a valid scene.
	ErrDecode = errors.New("scene: cannot decode document")
)
