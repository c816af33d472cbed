// SPDX-License-Identifier: MIT
// Package: rosette/params
//
// record.go — flat key→value records and typed accessors.
//
// Contract:
//   • Record is a plain map; the zero value (nil) reads as "all defaults".
//   • Accessors never panic. Absent keys yield the default; present keys
//     that cannot be coerced yield ErrBadValue wrapped with the key.
//   • Signature is a pure function of the record's contents.

package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// TagKey is the reserved key holding the variant tag of a record.
const TagKey = "type"

// Record is the flat persistence shape of a curve or sequencer variant.
type Record map[string]any

// Tag returns the variant tag stored under TagKey.
func (r Record) Tag() (string, error) {
	v, ok := r[TagKey]
	if !ok {
		return "", ErrMissingTag
	}
	tag, err := cast.ToStringE(v)
	if err != nil || tag == "" {
		return "", ErrMissingTag
	}

	return strings.ToLower(strings.TrimSpace(tag)), nil
}

// Float returns the value at key as float64, or def when the key is absent.
func (r Record) Float(key string, def float64) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def, fmt.Errorf("key %q: %v: %w", key, v, ErrBadValue)
	}

	return f, nil
}

// Int returns the value at key as int, or def when the key is absent.
// Floats with a fractional part are rejected rather than truncated.
func (r Record) Int(key string, def int) (int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case float32, float64:
		f := cast.ToFloat64(x)
		if f != float64(int(f)) {
			return def, fmt.Errorf("key %q: %v is not integral: %w", key, v, ErrBadValue)
		}
		return int(f), nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return def, fmt.Errorf("key %q: %v: %w", key, v, ErrBadValue)
	}

	return i, nil
}

// String returns the value at key as a string, or def when absent.
func (r Record) String(key string, def string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return def, fmt.Errorf("key %q: %v: %w", key, v, ErrBadValue)
	}

	return s, nil
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Keys returns the record's keys in ascending order, TagKey excluded.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		if k == TagKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Signature renders r as "tag:k1=v1,k2=v2" with keys sorted and numbers in
// their shortest round-trip form, making it usable as a memoisation key.
func (r Record) Signature() string {
	tag, _ := r.Tag()

	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte(':')
	for i, k := range r.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(formatValue(r[k]))
	}

	return b.String()
}

// formatValue renders numbers canonically so 2, 2.0 and "2" agree.
func formatValue(v any) string {
	if f, err := cast.ToFloat64E(v); err == nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return cast.ToString(v)
}
