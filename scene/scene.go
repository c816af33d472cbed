// SPDX-License-Identifier: MIT
// Package: rosette/scene
//
// scene.go — Scene document, YAML codec and execution.

package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rosette/studio"
)

// Scene is a batch of requests.
type Scene struct {
	Name    string                    `yaml:"name,omitempty"`
	Renders []studio.RenderRequest    `yaml:"render,omitempty"`
	Blends  []studio.BlendRequest     `yaml:"blend,omitempty"`
	Queries []studio.CoincidenceQuery `yaml:"query,omitempty"`
}

// Len returns the total number of requests.
func (s *Scene) Len() int {
	return len(s.Renders) + len(s.Blends) + len(s.Queries)
}

// Load decodes one scene document from r.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: %w", ErrEmptyScene)
		}
		return nil, fmt.Errorf("Load: %v: %w", err, ErrDecode)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("Load: %w", ErrEmptyScene)
	}

	return &s, nil
}

// LoadFile reads the scene stored at path.
func LoadFile(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}

	return Load(bytes.NewReader(raw))
}

// Save encodes s as YAML.
func (s *Scene) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return enc.Close()
}

// Report holds the outcome of every request in scene order.
type Report struct {
	Name      string
	Renders   []*studio.Rendering
	Blends    []*studio.Blending
	Questions []studio.CoincidenceQuery
	Answers   []studio.CoincidenceAnswer
}

// Run executes every request of s on e and stops at the first failure.
func (s *Scene) Run(e *studio.Engine) (*Report, error) {
	rep := &Report{Name: s.Name}
	for i, req := range s.Renders {
		r, err := e.Render(req)
		if err != nil {
			return rep, fmt.Errorf("Run: render[%d]: %w", i, err)
		}
		rep.Renders = append(rep.Renders, r)
	}
	for i, req := range s.Blends {
		b, err := e.Blend(req)
		if err != nil {
			return rep, fmt.Errorf("Run: blend[%d]: %w", i, err)
		}
		rep.Blends = append(rep.Blends, b)
	}
	for i, q := range s.Queries {
		a, err := e.Coincide(q)
		if err != nil {
			return rep, fmt.Errorf("Run: query[%d]: %w", i, err)
		}
		rep.Questions = append(rep.Questions, q)
		rep.Answers = append(rep.Answers, a)
	}

	return rep, nil
}
