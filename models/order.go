package models

import "time"

// Order payment and fulfillment states.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	OrderStatusProcessing = "processing"
	OrderStatusConfirmed  = "confirmed"
)

// OrderItem is a denormalized snapshot of a product at order time, so the
// order stays readable after catalog edits.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Size      string  `bson:"size" json:"size"`
}

// Order is a placed order.
// Collection: orders
type Order struct {
	ID              string            `bson:"_id" json:"id"`
	UserID          string            `bson:"user_id" json:"user_id"`
	Items           []OrderItem       `bson:"items" json:"items"`
	ShippingAddress map[string]string `bson:"shipping_address" json:"shipping_address"`
	PaymentMethod   string            `bson:"payment_method" json:"payment_method"`
	PaymentStatus   string            `bson:"payment_status" json:"payment_status"`
	OrderStatus     string            `bson:"order_status" json:"order_status"`
	TotalAmount     float64           `bson:"total_amount" json:"total_amount"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
}
