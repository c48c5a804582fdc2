package db

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fleur-api/config"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
// MONGODB_URI overrides the configured URI when set.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := os.Getenv("MONGODB_URI")
		if uri == "" {
			uri = cfg.Mongo.URI
		}
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.Mongo.DBName
		if dbName == "" {
			dbName = "fleur"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		log.Println("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// users: unique index on email
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}
		if _, err := d.Collection("users").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// products: unique slug plus browse indexes
	{
		if _, err := d.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "scent_family", Value: 1}},
			Options: options.Index().SetName("idx_scent_family"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "rating", Value: -1}},
			Options: options.Index().SetName("idx_rating_desc"),
		}); err != nil {
			return err
		}
	}

	// carts / wishlists: one document per user
	{
		if _, err := d.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_cart_user").SetUnique(true),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("wishlists").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_wishlist_user").SetUnique(true),
		}); err != nil {
			return err
		}
	}

	// orders: per-user listing sorted by recency
	{
		if _, err := d.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_user_created_desc"),
		}); err != nil {
			return err
		}
	}

	// reviews: per-product listing
	{
		if _, err := d.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "product_id", Value: 1}},
			Options: options.Index().SetName("idx_product_id"),
		}); err != nil {
			return err
		}
	}

	// newsletter: one subscription per email
	{
		if _, err := d.Collection("newsletter").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_subscriber_email").SetUnique(true),
		}); err != nil {
			return err
		}
	}

	// payment_transactions: provider reference lookups
	{
		if _, err := d.Collection("payment_transactions").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("idx_session_id").SetSparse(true),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("payment_transactions").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "razorpay_order_id", Value: 1}},
			Options: options.Index().SetName("idx_razorpay_order_id").SetSparse(true),
		}); err != nil {
			return err
		}
	}

	return nil
}
