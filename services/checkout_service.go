package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/dto"
	"fleur-api/events"
	"fleur-api/kafka"
	"fleur-api/logger"
	"fleur-api/models"
	"fleur-api/repositories"
)

// CheckoutSession is a hosted payment page created by a provider.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// StripeProvider abstracts the hosted Stripe checkout integration. A nil
// provider means Stripe payments are disabled for this deployment.
type StripeProvider interface {
	CreateSession(ctx context.Context, amount float64, currency, successURL, cancelURL string) (*CheckoutSession, error)
	SessionPaymentStatus(ctx context.Context, sessionID string) (string, error)
	// HandleWebhook validates the event signature and returns the session
	// id with its payment status.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (sessionID, paymentStatus string, err error)
}

// RazorpayProvider abstracts Razorpay order creation. A nil provider means
// Razorpay payments are disabled.
type RazorpayProvider interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency string) (string, error)
	KeyID() string
}

// VerifyRazorpaySignature checks the client-reported payment signature:
// hex HMAC-SHA256 of "<order_id>|<payment_id>" under the key secret.
func VerifyRazorpaySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// CheckoutService starts payment sessions and confirms orders once a
// payment is verified. Confirmation is idempotent: the transaction flips
// to paid exactly once and the order is created on that transition only.
type CheckoutService struct {
	payments *repositories.PaymentRepository
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	carts    *repositories.CartRepository
	producer kafka.Producer

	stripe         StripeProvider
	razorpay       RazorpayProvider
	razorpaySecret string
}

func NewCheckoutService(
	payments *repositories.PaymentRepository,
	orders *repositories.OrderRepository,
	products *repositories.ProductRepository,
	carts *repositories.CartRepository,
	producer kafka.Producer,
	stripe StripeProvider,
	razorpay RazorpayProvider,
	razorpaySecret string,
) *CheckoutService {
	return &CheckoutService{
		payments:       payments,
		orders:         orders,
		products:       products,
		carts:          carts,
		producer:       producer,
		stripe:         stripe,
		razorpay:       razorpay,
		razorpaySecret: razorpaySecret,
	}
}

// priceItems snapshots the requested lines against the live catalog.
// Unknown products are skipped, matching the add-to-cart behavior.
func (s *CheckoutService) priceItems(ctx context.Context, lines []dto.CartItemRequestDTO) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				continue
			}
			return nil, 0, err
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  line.Quantity,
			Size:      product.Size,
		})
		total += product.Price * float64(line.Quantity)
	}
	if total <= 0 {
		return nil, 0, ErrCartEmpty
	}
	return items, math.Round(total*100) / 100, nil
}

// StartStripe creates a hosted checkout session and records a pending
// transaction keyed by the provider session id.
func (s *CheckoutService) StartStripe(ctx context.Context, userID string, req dto.CheckoutRequestDTO) (*dto.CheckoutSessionDTO, error) {
	if s.stripe == nil {
		return nil, ErrPaymentsDisabled
	}

	items, total, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	successURL := req.OriginURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := req.OriginURL + "/cart"

	session, err := s.stripe.CreateSession(ctx, total, "inr", successURL, cancelURL)
	if err != nil {
		return nil, err
	}

	txn := &models.PaymentTransaction{
		ID:            uuid.NewString(),
		UserID:        userID,
		Provider:      "stripe",
		SessionID:     session.SessionID,
		Items:         items,
		Amount:        total,
		Currency:      "INR",
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := s.payments.Insert(ctx, txn); err != nil {
		return nil, err
	}
	return &dto.CheckoutSessionDTO{SessionID: session.SessionID, CheckoutURL: session.URL}, nil
}

// StripeStatus polls the provider and, on the first paid observation,
// confirms the order.
func (s *CheckoutService) StripeStatus(ctx context.Context, sessionID string) (*dto.CheckoutStatusDTO, error) {
	if s.stripe == nil {
		return nil, ErrPaymentsDisabled
	}

	txn, err := s.payments.FindBySessionID(ctx, sessionID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	status, err := s.stripe.SessionPaymentStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if status == models.PaymentStatusPaid {
		if err := s.confirm(ctx, txn); err != nil {
			return nil, err
		}
		txn.PaymentStatus = models.PaymentStatusPaid
	}
	return &dto.CheckoutStatusDTO{
		SessionID:     sessionID,
		PaymentStatus: txn.PaymentStatus,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
	}, nil
}

// HandleStripeWebhook processes a provider event. Paid sessions are
// confirmed through the same idempotent transition as the status poll, so
// webhook and poll can race without duplicating orders.
func (s *CheckoutService) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.stripe == nil {
		return ErrPaymentsDisabled
	}

	sessionID, status, err := s.stripe.HandleWebhook(ctx, payload, signature)
	if err != nil {
		return ErrBadSignature
	}
	if status != models.PaymentStatusPaid {
		return nil
	}

	txn, err := s.payments.FindBySessionID(ctx, sessionID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrSessionNotFound
		}
		return err
	}
	return s.confirm(ctx, txn)
}

// CreateRazorpayOrder registers an order with Razorpay (amounts in paise)
// and records a pending transaction keyed by the provider order id.
func (s *CheckoutService) CreateRazorpayOrder(ctx context.Context, userID string, req dto.CheckoutRequestDTO) (*dto.RazorpayOrderDTO, error) {
	if s.razorpay == nil {
		return nil, ErrPaymentsDisabled
	}

	items, total, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	amountPaise := int64(math.Round(total * 100))
	orderID, err := s.razorpay.CreateOrder(ctx, amountPaise, "INR")
	if err != nil {
		return nil, err
	}

	txn := &models.PaymentTransaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		Provider:        "razorpay",
		RazorpayOrderID: orderID,
		Items:           items,
		Amount:          total,
		Currency:        "INR",
		PaymentStatus:   models.PaymentStatusPending,
	}
	if err := s.payments.Insert(ctx, txn); err != nil {
		return nil, err
	}
	return &dto.RazorpayOrderDTO{
		OrderID:  orderID,
		Amount:   float64(amountPaise),
		Currency: "INR",
		KeyID:    s.razorpay.KeyID(),
	}, nil
}

// VerifyRazorpay validates the client-side payment signature and confirms
// the order on the first successful verification.
func (s *CheckoutService) VerifyRazorpay(ctx context.Context, req dto.RazorpayVerifyRequestDTO) error {
	if s.razorpay == nil {
		return ErrPaymentsDisabled
	}
	if !VerifyRazorpaySignature(s.razorpaySecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return ErrBadSignature
	}

	txn, err := s.payments.FindByRazorpayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrSessionNotFound
		}
		return err
	}
	return s.confirm(ctx, txn)
}

// confirm flips the transaction to paid and, when this call performed the
// transition, creates the confirmed order, clears the cart, and emits
// order.confirmed. Repeat confirmations are no-ops.
func (s *CheckoutService) confirm(ctx context.Context, txn *models.PaymentTransaction) error {
	transitioned, err := s.payments.MarkPaidIfPending(ctx, txn.ID)
	if err != nil {
		return err
	}
	if !transitioned {
		return nil
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          txn.UserID,
		Items:           txn.Items,
		ShippingAddress: map[string]string{},
		PaymentMethod:   txn.Provider,
		PaymentStatus:   models.PaymentStatusPaid,
		OrderStatus:     models.OrderStatusConfirmed,
		TotalAmount:     txn.Amount,
		CreatedAt:       time.Now(),
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return err
	}

	if err := s.carts.Clear(ctx, txn.UserID); err != nil {
		logger.ErrorWithFields("failed to clear cart after payment", logger.Fields{
			"order_id": order.ID,
			"error":    err.Error(),
		})
	}

	event := events.OrderConfirmedEvent{
		BaseEvent: events.NewBase(events.OrderConfirmed),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Provider:  txn.Provider,
	}
	if err := s.producer.PublishEvent(kafka.TopicOrderEvents, event); err != nil {
		logger.Log.Errorf("failed to publish order.confirmed: %v", err)
	}
	return nil
}
