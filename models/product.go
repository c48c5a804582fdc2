package models

import "time"

// Product is a catalog entry.
// Collection: products
type Product struct {
	ID               string    `bson:"_id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Slug             string    `bson:"slug" json:"slug"`
	Description      string    `bson:"description" json:"description"`
	ShortDescription string    `bson:"short_description" json:"short_description"`
	Price            float64   `bson:"price" json:"price"`
	OriginalPrice    float64   `bson:"original_price" json:"original_price"`
	DiscountPercent  int       `bson:"discount_percent" json:"discount_percent"`
	Category         string    `bson:"category" json:"category"`
	Subcategory      string    `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Size             string    `bson:"size" json:"size"`
	ScentFamily      string    `bson:"scent_family" json:"scent_family"`
	Notes            []string  `bson:"notes" json:"notes"`
	Image            string    `bson:"image" json:"image"`
	Images           []string  `bson:"images" json:"images"`
	InStock          bool      `bson:"in_stock" json:"in_stock"`
	IsNew            bool      `bson:"is_new" json:"is_new"`
	IsBestseller     bool      `bson:"is_bestseller" json:"is_bestseller"`
	Rating           float64   `bson:"rating" json:"rating"`
	ReviewsCount     int       `bson:"reviews_count" json:"reviews_count"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
