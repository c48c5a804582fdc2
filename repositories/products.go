package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fleur-api/models"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// ProductFilter narrows and orders List results. Zero values mean no
// constraint; Sort is one of newest, price_low, price_high, rating.
type ProductFilter struct {
	Category    string
	ScentFamily string
	Bestseller  bool
	New         bool
	MinPrice    *float64
	MaxPrice    *float64
	Sort        string
	Limit       int64
}

func (r *ProductRepository) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.ScentFamily != "" {
		filter["scent_family"] = f.ScentFamily
	}
	if f.Bestseller {
		filter["is_bestseller"] = true
	}
	if f.New {
		filter["is_new"] = true
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	switch f.Sort {
	case "price_low":
		sort = bson.D{{Key: "price", Value: 1}}
	case "price_high":
		sort = bson.D{{Key: "price", Value: -1}}
	case "rating":
		sort = bson.D{{Key: "rating", Value: -1}}
	}

	opts := options.Find().SetSort(sort)
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// DistinctStrings returns the unique values of a string field.
func (r *ProductRepository) DistinctStrings(ctx context.Context, field string) ([]string, error) {
	values, err := r.col.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Search matches name, description and notes case-insensitively.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	filter := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": query, "$options": "i"}},
		{"description": bson.M{"$regex": query, "$options": "i"}},
		{"notes": bson.M{"$regex": query, "$options": "i"}},
	}}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// IncrementReviewStats folds a new review rating into the product's
// aggregate rating and review count.
func (r *ProductRepository) IncrementReviewStats(ctx context.Context, productID string, newRating float64, newCount int) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{
		"$set": bson.M{"rating": newRating, "reviews_count": newCount},
	})
	return err
}
