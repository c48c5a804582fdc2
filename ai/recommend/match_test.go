package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleur-api/ai/catalog"
)

func matchProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "prod_ocean_secrets", Name: "Ocean Secrets"},
		{ID: "prod_lavender_bliss", Name: "Lavender Bliss"},
		{ID: "prod_fleur_enchante", Name: "Fleur Enchanté"},
		{ID: "prod_sandalwood", Name: "Sandalwood Tranquility"},
	}
}

func TestMatchCatalogExact(t *testing.T) {
	p := matchCatalog("Lavender Bliss", matchProducts(), 0)
	assert.NotNil(t, p)
	assert.Equal(t, "prod_lavender_bliss", p.ID)
}

func TestMatchCatalogCaseAndWhitespaceInsensitive(t *testing.T) {
	p := matchCatalog("  lavender   BLISS ", matchProducts(), 0)
	assert.NotNil(t, p)
	assert.Equal(t, "prod_lavender_bliss", p.ID)
}

func TestMatchCatalogSingularPluralDrift(t *testing.T) {
	p := matchCatalog("Ocean Secret", matchProducts(), 0)
	assert.NotNil(t, p)
	assert.Equal(t, "prod_ocean_secrets", p.ID)
}

func TestMatchCatalogPartialName(t *testing.T) {
	p := matchCatalog("Sandalwood", matchProducts(), 0)
	assert.Nil(t, p, "a single shared token out of two should stay below the default ratio")

	p = matchCatalog("Sandalwood Tranquility Oil", matchProducts(), 0)
	assert.NotNil(t, p)
	assert.Equal(t, "prod_sandalwood", p.ID)
}

func TestMatchCatalogUnknownName(t *testing.T) {
	assert.Nil(t, matchCatalog("Midnight Phantom", matchProducts(), 0))
	assert.Nil(t, matchCatalog("", matchProducts(), 0))
	assert.Nil(t, matchCatalog("   ", matchProducts(), 0))
}

func TestMatchCatalogCustomRatio(t *testing.T) {
	// with a permissive ratio a half-overlap resolves
	p := matchCatalog("Sandalwood", matchProducts(), 0.5)
	assert.NotNil(t, p)
	assert.Equal(t, "prod_sandalwood", p.ID)
}

func TestTokenOverlap(t *testing.T) {
	assert.Equal(t, 1.0, tokenOverlap([]string{"ocean", "secrets"}, []string{"ocean", "secrets"}))
	assert.Equal(t, 0.5, tokenOverlap([]string{"ocean"}, []string{"ocean", "secrets"}))
	assert.Equal(t, 0.0, tokenOverlap([]string{}, []string{"ocean"}))
	assert.Equal(t, 0.0, tokenOverlap([]string{"midnight"}, []string{"ocean", "secrets"}))
}
