package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	ClassID    string             `bson:"class_id"`
	PriceCents int64              `bson:"price_cents"`
	Currency   string             `bson:"currency"`
	IntentID   string             `bson:"intent_id"`
	Status     string             `bson:"status"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		Email:      p.Email,
		ClassID:    p.ClassID,
		PriceCents: p.PriceCents,
		Currency:   p.Currency,
		IntentID:   p.IntentID,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	return r.list(ctx, bson.M{})
}

func (r *PaymentRepository) list(ctx context.Context, filter bson.M) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	var payments []*domain.Payment
	for cur.Next(ctx) {
		var mp mongoPayment
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, &domain.Payment{
			ID:         mp.ID.Hex(),
			Email:      mp.Email,
			ClassID:    mp.ClassID,
			PriceCents: mp.PriceCents,
			Currency:   mp.Currency,
			IntentID:   mp.IntentID,
			Status:     mp.Status,
			CreatedAt:  unixToTime(mp.CreatedAt),
		})
	}
	return payments, cur.Err()
}
