package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fleur-api/models"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

func (r *ReviewRepository) Insert(ctx context.Context, rev *models.Review) error {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, rev)
	return err
}

// ListByProduct returns the newest reviews for a product, capped at limit.
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"product_id": productID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"product_id": productID})
}

// AverageByProduct computes the mean rating across a product's reviews.
func (r *ReviewRepository) AverageByProduct(ctx context.Context, productID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": productID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "avg": bson.M{"$avg": "$rating"}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Avg, nil
}
