package dto

// CartItemRequestDTO adds or updates one cart line.
type CartItemRequestDTO struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CartUpdateRequestDTO sets a line quantity. Zero or less removes the
// line.
type CartUpdateRequestDTO struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CartItemDTO is a cart line enriched with catalog data.
type CartItemDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
}

type CartDTO struct {
	Items []CartItemDTO `json:"items"`
	Total float64       `json:"total"`
}

// WishlistDTO returns the saved products in full, the way the product
// listing does.
type WishlistDTO struct {
	Products []ProductDTO `json:"products"`
}

type WishlistItemRequestDTO struct {
	ProductID string `json:"product_id" binding:"required"`
}
