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

type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: db.Collection("wishlists")}
}

func (r *WishlistRepository) GetByUser(ctx context.Context, userID string) (*models.Wishlist, error) {
	var w models.Wishlist
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return &models.Wishlist{UserID: userID, ProductIDs: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if w.ProductIDs == nil {
		w.ProductIDs = []string{}
	}
	return &w, nil
}

func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{"_id": uuid.NewString(), "user_id": userID},
		"$addToSet":    bson.M{"product_ids": productID},
		"$set":         bson.M{"updated_at": time.Now()},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$pull": bson.M{"product_ids": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}
