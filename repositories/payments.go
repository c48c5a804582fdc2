package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/models"
)

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payment_transactions")}
}

func (r *PaymentRepository) Insert(ctx context.Context, t *models.PaymentTransaction) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *PaymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	var t models.PaymentTransaction
	if err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PaymentRepository) FindByRazorpayOrderID(ctx context.Context, orderID string) (*models.PaymentTransaction, error) {
	var t models.PaymentTransaction
	if err := r.col.FindOne(ctx, bson.M{"razorpay_order_id": orderID}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkPaidIfPending flips a transaction to paid exactly once. The filter
// on the current status makes webhook and polling confirmation idempotent;
// the returned bool reports whether this call performed the transition.
func (r *PaymentRepository) MarkPaidIfPending(ctx context.Context, id string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "payment_status": bson.M{"$ne": models.PaymentStatusPaid}},
		bson.M{"$set": bson.M{
			"payment_status": models.PaymentStatusPaid,
			"updated_at":     time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
