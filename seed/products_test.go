package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsCatalogShape(t *testing.T) {
	products := Products()
	require.Len(t, products, 17)

	ids := make(map[string]bool)
	slugs := make(map[string]bool)
	names := make(map[string]bool)
	for _, p := range products {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		assert.False(t, names[p.Name], "duplicate name %s", p.Name)
		ids[p.ID] = true
		slugs[p.Slug] = true
		names[p.Name] = true

		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.OriginalPrice, p.Price)
		assert.NotEmpty(t, p.ScentFamily)
		assert.NotEmpty(t, p.Notes)
		assert.True(t, p.InStock)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestProductsCatalogKnownEntries(t *testing.T) {
	products := Products()

	byName := make(map[string]float64, len(products))
	for _, p := range products {
		byName[p.Name] = p.Price
	}

	assert.Equal(t, 300.0, byName["Ocean Secrets"])
	assert.Equal(t, 280.0, byName["Lavender Bliss"])
	assert.Equal(t, 350.0, byName["Elegance"])
	assert.Equal(t, 456.50, byName["Fleur Enchanté"])
}
