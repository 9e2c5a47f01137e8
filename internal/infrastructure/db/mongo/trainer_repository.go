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
)

const trainersCollection = "trainer_applications"

type TrainerRepository struct {
	coll *mongo.Collection
}

func NewTrainerRepository(db *mongo.Database) *TrainerRepository {
	return &TrainerRepository{coll: db.Collection(trainersCollection)}
}

type mongoApplication struct {
	ID            primitive.ObjectID       `bson:"_id,omitempty"`
	Email         string                   `bson:"email"`
	Name          string                   `bson:"name"`
	Age           int                      `bson:"age"`
	Skills        []string                 `bson:"skills"`
	AvailableDays []string                 `bson:"available_days"`
	AvailableTime string                   `bson:"available_time"`
	Experience    string                   `bson:"experience,omitempty"`
	Status        domain.ApplicationStatus `bson:"status"`
	Feedback      string                   `bson:"feedback,omitempty"`
	CreatedAt     int64                    `bson:"created_at"`
	UpdatedAt     int64                    `bson:"updated_at"`
}

func (r *TrainerRepository) Create(ctx context.Context, app *domain.TrainerApplication) (*domain.TrainerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoApplication{
		Email:         app.Email,
		Name:          app.Name,
		Age:           app.Age,
		Skills:        app.Skills,
		AvailableDays: app.AvailableDays,
		AvailableTime: app.AvailableTime,
		Experience:    app.Experience,
		Status:        app.Status,
		CreatedAt:     app.CreatedAt.Unix(),
		UpdatedAt:     app.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TrainerRepository) FindByID(ctx context.Context, id string) (*domain.TrainerApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return toDomainApplication(ma), nil
}

func (r *TrainerRepository) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]*domain.TrainerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"status": status}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var apps []*domain.TrainerApplication
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, toDomainApplication(ma))
	}
	return apps, cur.Err()
}

func (r *TrainerRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, feedback string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": status, "updated_at": time.Now().UTC().Unix()}
	if feedback != "" {
		set["feedback"] = feedback
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func toDomainApplication(ma mongoApplication) *domain.TrainerApplication {
	return &domain.TrainerApplication{
		ID:            ma.ID.Hex(),
		Email:         ma.Email,
		Name:          ma.Name,
		Age:           ma.Age,
		Skills:        ma.Skills,
		AvailableDays: ma.AvailableDays,
		AvailableTime: ma.AvailableTime,
		Experience:    ma.Experience,
		Status:        ma.Status,
		Feedback:      ma.Feedback,
		CreatedAt:     unixToTime(ma.CreatedAt),
		UpdatedAt:     unixToTime(ma.UpdatedAt),
	}
}
