package scene_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rosette/resample"
	"github.com/katalvlaran/rosette/scene"
	"github.com/katalvlaran/rosette/studio"
)

// TestLoadFile_Run decodes the sample scene and executes it.
func TestLoadFile_Run(t *testing.T) {
	t.Parallel()

	s, err := scene.LoadFile("testdata/petals.yaml")
	require.NoError(t, err)
	assert.Equal(t, "petals", s.Name)
	assert.Equal(t, 5, s.Len())
	require.Len(t, s.Renders, 2)
	assert.True(t, s.Renders[1].Cosets)
	require.NotNil(t, s.Blends[0].Threshold)
	assert.Equal(t, 40, *s.Blends[0].Threshold)

	rep, err := s.Run(studio.NewEngine())
	require.NoError(t, err)
	require.Len(t, rep.Renders, 2)
	// 7 generates Z_120: one closed walk of 120 chords.
	assert.Equal(t, 120, rep.Renders[0].Segments())
	assert.True(t, rep.Renders[0].Closed)
	assert.Len(t, rep.Renders[1].Polylines, 4)

	require.Len(t, rep.Blends, 1)
	// lcm(12, 7) = 84 exceeds 40.
	assert.Equal(t, resample.ModeApproximate, rep.Blends[0].Mode)
	assert.Equal(t, 120, rep.Blends[0].Segments)

	require.Len(t, rep.Answers, 2)
	assert.Equal(t, 18, rep.Answers[0].Count)
	assert.Equal(t, []int{5}, rep.Answers[1].Generators())
}

// TestSave_RoundTrip writes a scene and reads it back.
func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := scene.LoadFile("testdata/petals.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))
	back, err := scene.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

// TestLoad_Errors covers empty, unknown and malformed documents.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty input", "", scene.ErrEmptyScene},
		{"no requests", "name: nothing\n", scene.ErrEmptyScene},
		{"unknown key", "renders: []\n", scene.ErrDecode},
		{"bad shape", "render: 3\n", scene.ErrDecode},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := scene.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

// TestRun_StopsAtFailure reports the failing entry.
func TestRun_StopsAtFailure(t *testing.T) {
	t.Parallel()

	s, err := scene.Load(strings.NewReader(`
query:
  - {mode: count, n: 12, generator: 1, partner: 5}
  - {mode: nearest, n: 12, generator: 1}
`))
	require.NoError(t, err)
	rep, err := s.Run(studio.NewEngine())
	assert.ErrorIs(t, err, studio.ErrBadQuery)
	assert.Contains(t, err.Error(), "query[1]")
	assert.Len(t, rep.Answers, 1)
}
