package models

import "time"

// PaymentTransaction tracks a checkout attempt with an external payment
// provider.
// Collection: payment_transactions
type PaymentTransaction struct {
	ID              string      `bson:"_id" json:"id"`
	UserID          string      `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Provider        string      `bson:"provider" json:"provider"`
	SessionID       string      `bson:"session_id,omitempty" json:"session_id,omitempty"`
	RazorpayOrderID string      `bson:"razorpay_order_id,omitempty" json:"razorpay_order_id,omitempty"`
	Items           []OrderItem `bson:"items" json:"items"`
	Amount          float64     `bson:"amount" json:"amount"`
	Currency        string      `bson:"currency" json:"currency"`
	PaymentStatus   string      `bson:"payment_status" json:"payment_status"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}
