package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fleur-api/models"
)

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

// GetByUser returns the user's cart, or an empty cart if none exists yet.
func (r *CartRepository) GetByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var c models.Cart
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return &c, nil
}

// SaveItems replaces the user's cart items, creating the cart document on
// first write.
func (r *CartRepository) SaveItems(ctx context.Context, userID string, items []models.CartItem) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{"_id": uuid.NewString(), "user_id": userID},
		"$set":         bson.M{"items": items, "updated_at": time.Now()},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	return r.SaveItems(ctx, userID, []models.CartItem{})
}
