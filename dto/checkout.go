package dto

// CheckoutRequestDTO starts a hosted payment session for the given items.
type CheckoutRequestDTO struct {
	Items     []CartItemRequestDTO `json:"items" binding:"required,min=1,dive"`
	OriginURL string               `json:"origin_url" binding:"required,url"`
}

type CheckoutSessionDTO struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type CheckoutStatusDTO struct {
	SessionID     string  `json:"session_id"`
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// RazorpayOrderDTO is returned when creating a Razorpay order.
type RazorpayOrderDTO struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"key_id"`
}

// RazorpayVerifyRequestDTO carries the client-side payment confirmation
// to be verified against the provider signature.
type RazorpayVerifyRequestDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
