package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/models"
)

type NewsletterRepository struct {
	col *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{col: db.Collection("newsletter")}
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var s models.Subscriber
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *NewsletterRepository) Insert(ctx context.Context, s *models.Subscriber) error {
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection("contacts")}
}

func (r *ContactRepository) Insert(ctx context.Context, c *models.Contact) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

type GiftingRepository struct {
	col *mongo.Collection
}

func NewGiftingRepository(db *mongo.Database) *GiftingRepository {
	return &GiftingRepository{col: db.Collection("gifting_inquiries")}
}

func (r *GiftingRepository) Insert(ctx context.Context, g *models.GiftingInquiry) error {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, g)
	return err
}
