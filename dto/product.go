package dto

import (
	"time"

	"fleur-api/models"
)

// ProductDTO mirrors the catalog document for API consumers.
type ProductDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Price            float64   `json:"price"`
	OriginalPrice    float64   `json:"original_price"`
	DiscountPercent  int       `json:"discount_percent"`
	Category         string    `json:"category"`
	Subcategory      string    `json:"subcategory,omitempty"`
	Size             string    `json:"size"`
	ScentFamily      string    `json:"scent_family"`
	Notes            []string  `json:"notes"`
	Image            string    `json:"image"`
	Images           []string  `json:"images"`
	InStock          bool      `json:"in_stock"`
	IsNew            bool      `json:"is_new"`
	IsBestseller     bool      `json:"is_bestseller"`
	Rating           float64   `json:"rating"`
	ReviewsCount     int       `json:"reviews_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		DiscountPercent:  p.DiscountPercent,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		Size:             p.Size,
		ScentFamily:      p.ScentFamily,
		Notes:            p.Notes,
		Image:            p.Image,
		Images:           p.Images,
		InStock:          p.InStock,
		IsNew:            p.IsNew,
		IsBestseller:     p.IsBestseller,
		Rating:           p.Rating,
		ReviewsCount:     p.ReviewsCount,
		CreatedAt:        p.CreatedAt,
	}
}

func NewProductDTOs(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductDTO(p))
	}
	return out
}
