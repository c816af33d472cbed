// Package params defines the flat key→value record that every curve and
// sequencer variant can be reduced to and rebuilt from, plus the parameter
// schema used to generate editing surfaces.
//
// A Record is the persistence shape of a variant: one "type" tag and a set
// of scalar parameters. Values arriving from YAML, JSON or UI widgets are
// loosely typed (ints, floats, numeric strings); the typed accessors coerce
// them with spf13/cast and fall back to a documented default when a key is
// absent.
//
// Usage:
//
//	rec := params.Record{"type": "rose", "n": 3, "d": "2"}
//	n, err := rec.Int("n", 1)      // 3
//	d, err := rec.Int("d", 1)      // 2 (string coerced)
//	sig := rec.Signature()         // "rose:d=2,n=3"
package params
