package params_test

import (
	"testing"

	"github.com/katalvlaran/rosette/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecord_Accessors covers default fallback and loose coercion.
func TestRecord_Accessors(t *testing.T) {
	t.Parallel()

	r := params.Record{"type": " Rose ", "n": 3, "d": "2", "a": 1.5, "bad": "x", "frac": 2.5}

	tag, err := r.Tag()
	require.NoError(t, err)
	assert.Equal(t, "rose", tag, "tags are trimmed and lower-cased")

	n, err := r.Int("n", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	d, err := r.Int("d", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, d, "numeric strings are coerced")

	a, err := r.Float("a", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, a)

	missing, err := r.Float("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, missing, "absent keys yield the default")

	_, err = r.Int("bad", 0)
	assert.ErrorIs(t, err, params.ErrBadValue)

	_, err = r.Int("frac", 0)
	assert.ErrorIs(t, err, params.ErrBadValue, "fractional floats are not truncated")
}

// TestRecord_MissingTag checks the tag sentinel.
func TestRecord_MissingTag(t *testing.T) {
	t.Parallel()

	_, err := params.Record{"n": 1}.Tag()
	assert.ErrorIs(t, err, params.ErrMissingTag)

	_, err = params.Record{"type": ""}.Tag()
	assert.ErrorIs(t, err, params.ErrMissingTag)

	var nilRec params.Record
	_, err = nilRec.Tag()
	assert.ErrorIs(t, err, params.ErrMissingTag)
}

// TestRecord_Signature verifies stability across equivalent encodings.
func TestRecord_Signature(t *testing.T) {
	t.Parallel()

	a := params.Record{"type": "rose", "n": 3, "d": 2.0}
	b := params.Record{"d": "2", "n": 3.0, "type": "rose"}
	c := params.Record{"type": "rose", "n": 3, "d": 4}

	assert.Equal(t, "rose:d=2,n=3", a.Signature())
	assert.Equal(t, a.Signature(), b.Signature(), "equal parameters, equal signatures")
	assert.NotEqual(t, a.Signature(), c.Signature())
}

// TestSchema_Defaults ensures defaults honour kinds.
func TestSchema_Defaults(t *testing.T) {
	t.Parallel()

	s := params.Schema{
		{Name: "n", Kind: params.KindInt, Default: 3},
		{Name: "amplitude", Kind: params.KindFloat, Default: 1},
	}
	r := s.Defaults("rose")
	assert.Equal(t, params.Record{"type": "rose", "n": 3, "amplitude": 1.0}, r)

	spec, ok := s.Lookup("n")
	assert.True(t, ok)
	assert.Equal(t, "int", spec.Kind.String())

	_, ok = s.Lookup("zzz")
	assert.False(t, ok)
}
