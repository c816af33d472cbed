package studio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rosette/studio"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	cat := studio.Catalog()
	assert.Len(t, cat, 8+4+4)

	families := map[string]int{}
	for _, v := range cat {
		families[v.Family]++
		assert.NotEmpty(t, v.Tag)
	}
	assert.Equal(t, map[string]int{"curve": 8, "sequencer": 4, "connector": 4}, families)
	assert.Equal(t, "blended_rose", cat[0].Tag)
}
