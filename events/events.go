package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a storefront event.
type EventType string

const (
	OrderPlaced            EventType = "order.placed"
	OrderConfirmed         EventType = "order.confirmed"
	NewsletterSubscribed   EventType = "newsletter.subscribed"
	GiftingInquiryReceived EventType = "gifting.inquiry_received"
	AIChatCompleted        EventType = "ai.chat_completed"
	AIScentFinderCompleted EventType = "ai.scent_finder_completed"
)

// BaseEvent is the envelope shared by every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// NewBase fills the envelope for a freshly emitted event.
func NewBase(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "fleur-api",
		Version:   "1.0",
	}
}

func (b BaseEvent) EventID() string      { return b.ID }
func (b BaseEvent) EventType() EventType { return b.Type }

// Event is anything carrying a BaseEvent envelope.
type Event interface {
	EventID() string
	EventType() EventType
}

// OrderPlacedEvent fires when an order document is created.
type OrderPlacedEvent struct {
	BaseEvent
	OrderID       string  `json:"order_id"`
	UserID        string  `json:"user_id"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	ItemCount     int     `json:"item_count"`
}

// OrderConfirmedEvent fires once per order after payment verification.
type OrderConfirmedEvent struct {
	BaseEvent
	OrderID  string `json:"order_id"`
	UserID   string `json:"user_id"`
	Provider string `json:"provider"`
}

// NewsletterSubscribedEvent fires on a first-time newsletter signup.
type NewsletterSubscribedEvent struct {
	BaseEvent
	Email string `json:"email"`
}

// GiftingInquiryReceivedEvent fires when a corporate gifting lead arrives.
type GiftingInquiryReceivedEvent struct {
	BaseEvent
	InquiryID   string `json:"inquiry_id"`
	CompanyName string `json:"company_name"`
	Quantity    int    `json:"quantity"`
}

// AIChatCompletedEvent fires after every chat round trip, degraded or not.
type AIChatCompletedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Fallback  bool   `json:"fallback"`
}

// AIScentFinderCompletedEvent fires after every quiz submission.
type AIScentFinderCompletedEvent struct {
	BaseEvent
	ResultCount int      `json:"result_count"`
	ProductIDs  []string `json:"product_ids"`
}

// Serialize renders an event as JSON along with its type.
func Serialize(event Event) ([]byte, EventType, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", err
	}
	return data, event.EventType(), nil
}
