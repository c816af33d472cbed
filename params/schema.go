// SPDX-License-Identifier: MIT
// Package: rosette/params
//
// schema.go — parameter schemas for variant editors.

package params

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind classifies a parameter for editor generation.
type Kind int

const (
	// KindInt is an integer parameter (frequencies, radii, increments).
	KindInt Kind = iota
	// KindFloat is a real parameter (amplitudes, offsets, weights).
	KindFloat
	// KindAngle is a real parameter measured in radians.
	KindAngle
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindAngle:
		return "angle"
	default:
		return "unknown"
	}
}

// MarshalYAML writes k by name.
func (k Kind) MarshalYAML() (any, error) { return k.String(), nil }

// UnmarshalYAML reads a kind name.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "int":
		*k = KindInt
	case "float":
		*k = KindFloat
	case "angle":
		*k = KindAngle
	default:
		return fmt.Errorf("kind %q: %w", node.Value, ErrBadValue)
	}

	return nil
}

// Spec describes one parameter of a variant.
type Spec struct {
	Name    string  `yaml:"name"`
	Kind    Kind    `yaml:"kind"`
	Default float64 `yaml:"default"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Label   string  `yaml:"label,omitempty"`
}

// Schema is the ordered list of parameters a variant accepts.
type Schema []Spec

// Defaults returns a Record holding every parameter's default value and the
// given tag.
func (s Schema) Defaults(tag string) Record {
	r := make(Record, len(s)+1)
	r[TagKey] = tag
	for _, p := range s {
		if p.Kind == KindInt {
			r[p.Name] = int(p.Default)
			continue
		}
		r[p.Name] = p.Default
	}

	return r
}

// Lookup returns the spec called name.
func (s Schema) Lookup(name string) (Spec, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}

	return Spec{}, false
}
