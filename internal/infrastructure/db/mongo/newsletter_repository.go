package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

const newsletterCollection = "newsletter"

type NewsletterRepository struct {
	coll *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{coll: db.Collection(newsletterCollection)}
}

type mongoSubscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	SubscribedAt int64              `bson:"subscribed_at"`
}

func (r *NewsletterRepository) Create(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSubscriber{
		Name:         sub.Name,
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}

	created := *sub
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *NewsletterRepository) List(ctx context.Context) ([]*domain.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "subscribed_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer cur.Close(ctx)

	var subs []*domain.Subscriber
	for cur.Next(ctx) {
		var ms mongoSubscriber
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode subscriber: %w", err)
		}
		subs = append(subs, &domain.Subscriber{
			ID:           ms.ID.Hex(),
			Name:         ms.Name,
			Email:        ms.Email,
			SubscribedAt: unixToTime(ms.SubscribedAt),
		})
	}
	return subs, cur.Err()
}

// EnsureIndexes creates the unique email index so repeated signups are rejected.
func (r *NewsletterRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
