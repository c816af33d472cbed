package params_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rosette/params"
)

var errFamily = errors.New("family: bad")

// TestReader keeps the first failure and falls back to schema defaults.
func TestReader(t *testing.T) {
	t.Parallel()

	schema := params.Schema{
		{Name: "n", Kind: params.KindInt, Default: 3},
		{Name: "r", Kind: params.KindFloat, Default: 1.5},
	}

	r := params.NewReader("demo", params.Record{"n": "7"}, schema, errFamily)
	assert.Equal(t, 7, r.Int("n"))
	assert.Equal(t, 1.5, r.Float("r"))
	require.NoError(t, r.Err())

	r = params.NewReader("demo", params.Record{"n": 2.5, "r": 9}, schema, errFamily)
	assert.Equal(t, 3, r.Int("n"))
	assert.Equal(t, 1.5, r.Float("r"), "reads after a failure return defaults")
	assert.ErrorIs(t, r.Err(), errFamily)
	assert.ErrorIs(t, r.Err(), params.ErrBadValue)
	assert.Contains(t, r.Err().Error(), "demo")

	r = params.NewReader("demo", params.Record{"r": "wide"}, schema, nil)
	r.Float("r")
	assert.ErrorIs(t, r.Err(), params.ErrBadValue)
}

// TestSchema_YAML writes kinds by name and reads them back.
func TestSchema_YAML(t *testing.T) {
	t.Parallel()

	in := params.Schema{
		{Name: "n", Kind: params.KindInt, Default: 3, Min: 0, Max: 10, Label: "petals"},
		{Name: "rotation", Kind: params.KindAngle, Max: 3.14},
	}
	raw, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kind: angle")

	var out params.Schema
	require.NoError(t, yaml.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	err = yaml.Unmarshal([]byte("- name: x\n  kind: complex\n"), &out)
	assert.ErrorIs(t, err, params.ErrBadValue)
}
