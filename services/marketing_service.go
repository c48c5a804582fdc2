package services

import (
	"context"
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

// MarketingService covers newsletter signups, contact forms and corporate
// gifting inquiries.
type MarketingService struct {
	newsletter *repositories.NewsletterRepository
	contacts   *repositories.ContactRepository
	gifting    *repositories.GiftingRepository
	producer   kafka.Producer
}

func NewMarketingService(newsletter *repositories.NewsletterRepository, contacts *repositories.ContactRepository, gifting *repositories.GiftingRepository, producer kafka.Producer) *MarketingService {
	return &MarketingService{newsletter: newsletter, contacts: contacts, gifting: gifting, producer: producer}
}

// Subscribe is idempotent: repeat signups report success without a second
// insert or event.
func (s *MarketingService) Subscribe(ctx context.Context, email string) (string, error) {
	if _, err := s.newsletter.FindByEmail(ctx, email); err == nil {
		return "Already subscribed", nil
	} else if err != mongo.ErrNoDocuments {
		return "", err
	}

	sub := &models.Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if err := s.newsletter.Insert(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "Already subscribed", nil
		}
		return "", err
	}

	event := events.NewsletterSubscribedEvent{
		BaseEvent: events.NewBase(events.NewsletterSubscribed),
		Email:     email,
	}
	if err := s.producer.PublishEvent(kafka.TopicMarketingEvents, event); err != nil {
		logger.Log.Errorf("failed to publish newsletter.subscribed: %v", err)
	}
	return "Successfully subscribed to newsletter", nil
}

func (s *MarketingService) SubmitContact(ctx context.Context, req dto.ContactRequestDTO) error {
	subject := req.Subject
	if subject == "" {
		subject = "General Inquiry"
	}
	return s.contacts.Insert(ctx, &models.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	})
}

func (s *MarketingService) SubmitGiftingInquiry(ctx context.Context, req dto.GiftingInquiryRequestDTO) (string, error) {
	inquiry := &models.GiftingInquiry{
		ID:              uuid.NewString(),
		CompanyName:     req.CompanyName,
		ContactName:     req.ContactName,
		Email:           req.Email,
		Phone:           req.Phone,
		PackageInterest: req.PackageInterest,
		Quantity:        req.Quantity,
		Occasion:        req.Occasion,
		Message:         req.Message,
		Status:          "new",
		CreatedAt:       time.Now(),
	}
	if err := s.gifting.Insert(ctx, inquiry); err != nil {
		return "", err
	}

	event := events.GiftingInquiryReceivedEvent{
		BaseEvent:   events.NewBase(events.GiftingInquiryReceived),
		InquiryID:   inquiry.ID,
		CompanyName: inquiry.CompanyName,
		Quantity:    inquiry.Quantity,
	}
	if err := s.producer.PublishEvent(kafka.TopicMarketingEvents, event); err != nil {
		logger.Log.Errorf("failed to publish gifting.inquiry_received: %v", err)
	}
	return inquiry.ID, nil
}
