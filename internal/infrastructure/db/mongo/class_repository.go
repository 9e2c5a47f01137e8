package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

const classesCollection = "classes"

type ClassRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection(classesCollection)}
}

type mongoClass struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Image         string             `bson:"image"`
	Details       string             `bson:"details"`
	TrainerEmails []string           `bson:"trainer_emails"`
	BookingCount  int64              `bson:"booking_count"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *ClassRepository) Create(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoClass{
		Name:          class.Name,
		Image:         class.Image,
		Details:       class.Details,
		TrainerEmails: class.TrainerEmails,
		BookingCount:  class.BookingCount,
		CreatedAt:     class.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}

	created := *class
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id string) (*domain.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClassNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoClass
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return toDomainClass(mc), nil
}

func (r *ClassRepository) List(ctx context.Context, filter ports.ListClassesFilter) ([]*domain.Class, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Search, Options: "i"}}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count classes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list classes: %w", err)
	}
	defer cur.Close(ctx)

	var classes []*domain.Class
	for cur.Next(ctx) {
		var mc mongoClass
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode class: %w", err)
		}
		classes = append(classes, toDomainClass(mc))
	}
	return classes, total, cur.Err()
}

func (r *ClassRepository) TopBooked(ctx context.Context, n int) ([]*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "booking_count", Value: -1}}).
		SetLimit(int64(n))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("top booked classes: %w", err)
	}
	defer cur.Close(ctx)

	var classes []*domain.Class
	for cur.Next(ctx) {
		var mc mongoClass
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		classes = append(classes, toDomainClass(mc))
	}
	return classes, cur.Err()
}

func (r *ClassRepository) IncrementBookingCount(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClassNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"booking_count": 1}})
	if err != nil {
		return fmt.Errorf("increment booking count: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing listing and featured queries.
func (r *ClassRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "booking_count", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainClass(mc mongoClass) *domain.Class {
	return &domain.Class{
		ID:            mc.ID.Hex(),
		Name:          mc.Name,
		Image:         mc.Image,
		Details:       mc.Details,
		TrainerEmails: mc.TrainerEmails,
		BookingCount:  mc.BookingCount,
		CreatedAt:     unixToTime(mc.CreatedAt),
	}
}
