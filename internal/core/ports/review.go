package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// ListLatest returns up to n reviews, newest first.
	ListLatest(ctx context.Context, n int) ([]*domain.Review, error)
}

// CreateReviewInput carries member feedback.
type CreateReviewInput struct {
	Email   string
	Name    string
	Rating  int
	Comment string
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]*domain.Review, error)
}
