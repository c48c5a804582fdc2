package models

import "time"

// CartItem is a product reference with a quantity, shared by carts and
// order line items.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Cart holds the items a user has staged for checkout. One document per
// user.
// Collection: carts
type Cart struct {
	ID        string     `bson:"_id" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Wishlist holds product ids a user has saved. One document per user.
// Collection: wishlists
type Wishlist struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ProductIDs []string  `bson:"product_ids" json:"product_ids"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
