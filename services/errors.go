package services

import "errors"

// Sentinel errors translated to HTTP statuses by the handlers.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAlreadyReviewed    = errors.New("product already reviewed by this user")
	ErrPaymentsDisabled   = errors.New("payment provider not configured")
	ErrCartEmpty          = errors.New("no purchasable items in checkout")
	ErrSessionNotFound    = errors.New("payment session not found")
	ErrBadSignature       = errors.New("payment signature verification failed")
	ErrNoImage            = errors.New("image url or base64 data required")
	ErrAIUnavailable      = errors.New("assistant temporarily unavailable")
)
