package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

const forumCollection = "forum_posts"

type ForumRepository struct {
	coll *mongo.Collection
}

func NewForumRepository(db *mongo.Database) *ForumRepository {
	return &ForumRepository{coll: db.Collection(forumCollection)}
}

type mongoPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	AuthorEmail string             `bson:"author_email"`
	AuthorRole  string             `bson:"author_role"`
	UpVotes     int64              `bson:"up_votes"`
	DownVotes   int64              `bson:"down_votes"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *ForumRepository) Create(ctx context.Context, post *domain.ForumPost) (*domain.ForumPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		Title:       post.Title,
		Content:     post.Content,
		AuthorEmail: post.AuthorEmail,
		AuthorRole:  post.AuthorRole,
		CreatedAt:   post.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ForumRepository) FindByID(ctx context.Context, id string) (*domain.ForumPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return toDomainPost(mp), nil
}

func (r *ForumRepository) List(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.ForumPost, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []*domain.ForumPost
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, 0, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, toDomainPost(mp))
	}
	return posts, total, cur.Err()
}

func (r *ForumRepository) IncrementVote(ctx context.Context, id, direction string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	field := "up_votes"
	if direction == domain.VoteDown {
		field = "down_votes"
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("increment vote: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func toDomainPost(mp mongoPost) *domain.ForumPost {
	return &domain.ForumPost{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Content:     mp.Content,
		AuthorEmail: mp.AuthorEmail,
		AuthorRole:  mp.AuthorRole,
		UpVotes:     mp.UpVotes,
		DownVotes:   mp.DownVotes,
		CreatedAt:   unixToTime(mp.CreatedAt),
	}
}
