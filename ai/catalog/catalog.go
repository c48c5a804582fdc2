// Package catalog defines the read-only product view consumed by the
// assistant and the scent finder. Keeping it as a small interface lets the
// AI packages stay independent of the storage layer.
package catalog

import "context"

// Product is the subset of catalog data the AI features need.
type Product struct {
	ID          string
	Name        string
	Price       float64
	Category    string
	ScentFamily string
	Notes       []string
	Description string
	Rating      float64
	InStock     bool
}

// Service provides catalog lookups.
type Service interface {
	// ListAll returns every product. The catalog is small enough that the
	// AI prompts enumerate it in full.
	ListAll(ctx context.Context) ([]Product, error)
}
