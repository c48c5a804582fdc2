package services

import (
	"context"

	"fleur-api/ai/catalog"
	"fleur-api/repositories"
)

// CatalogAdapter exposes the product collection through the read-only view
// the AI features consume.
type CatalogAdapter struct {
	products *repositories.ProductRepository
}

func NewCatalogAdapter(products *repositories.ProductRepository) *CatalogAdapter {
	return &CatalogAdapter{products: products}
}

func (a *CatalogAdapter) ListAll(ctx context.Context) ([]catalog.Product, error) {
	models, err := a.products.List(ctx, repositories.ProductFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Product, 0, len(models))
	for _, p := range models {
		out = append(out, catalog.Product{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			ScentFamily: p.ScentFamily,
			Notes:       p.Notes,
			Description: p.ShortDescription,
			Rating:      p.Rating,
			InStock:     p.InStock,
		})
	}
	return out, nil
}
