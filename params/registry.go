// SPDX-License-Identifier: MIT
// Package: rosette/params
//
// registry.go — generic tag → constructor dispatch table.
//
// Contract:
//   • Register panics on programmer errors (empty tag, nil factory,
//     duplicate tag). New never panics.
//   • Tags are matched after Record.Tag normalisation (trimmed, lower-case).
//   • Safe for concurrent use; registration normally happens in init.

package params

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a value of a variant family from a flat record.
type Factory[T any] func(rec Record) (T, error)

type registryEntry[T any] struct {
	factory Factory[T]
	schema  Schema
}

// Registry maps variant tags to their factory and schema.
type Registry[T any] struct {
	kind    string // "curve", "sequencer": used in panic messages
	unknown error  // sentinel returned for unregistered tags

	mu      sync.RWMutex
	entries map[string]registryEntry[T]
}

// NewRegistry returns an empty registry. unknown is the sentinel New wraps
// when a tag is not registered.
func NewRegistry[T any](kind string, unknown error) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		unknown: unknown,
		entries: make(map[string]registryEntry[T]),
	}
}

// Register adds a variant under tag.
func (r *Registry[T]) Register(tag string, f Factory[T], schema Schema) {
	if tag == "" {
		panic(r.kind + ": Register with empty tag")
	}
	if f == nil {
		panic(r.kind + ": Register(" + tag + ") with nil factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[tag]; dup {
		panic(r.kind + ": Register called twice for " + tag)
	}
	r.entries[tag] = registryEntry[T]{factory: f, schema: schema}
}

// New builds the variant described by rec.
func (r *Registry[T]) New(rec Record) (T, error) {
	var zero T
	tag, err := rec.Tag()
	if err != nil {
		return zero, fmt.Errorf("New: %w", err)
	}
	r.mu.RLock()
	e, ok := r.entries[tag]
	r.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("New: %q: %w", tag, r.unknown)
	}

	return e.factory(rec)
}

// Tags returns the registered tags in ascending order.
func (r *Registry[T]) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.entries))
	for t := range r.entries {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return tags
}

// Schema returns the parameter schema registered for tag.
func (r *Registry[T]) Schema(tag string) (Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[tag]

	return e.schema, ok
}
