package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "rzp_test_secret"
	orderID := "order_N1hQZ2eZ5W"
	paymentID := "pay_N1hRZ9xYz0"

	sig := signPayment(secret, orderID, paymentID)
	assert.True(t, VerifyRazorpaySignature(secret, orderID, paymentID, sig))
}

func TestVerifyRazorpaySignatureRejectsTampering(t *testing.T) {
	secret := "rzp_test_secret"
	sig := signPayment(secret, "order_a", "pay_a")

	assert.False(t, VerifyRazorpaySignature(secret, "order_b", "pay_a", sig))
	assert.False(t, VerifyRazorpaySignature(secret, "order_a", "pay_b", sig))
	assert.False(t, VerifyRazorpaySignature("other_secret", "order_a", "pay_a", sig))
	assert.False(t, VerifyRazorpaySignature(secret, "order_a", "pay_a", ""))
	assert.False(t, VerifyRazorpaySignature(secret, "order_a", "pay_a", "not-hex"))
}
