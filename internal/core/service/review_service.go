package service

import (
	"context"
	"time"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

const latestReviews = 20

// ReviewService implements member reviews.
type ReviewService struct {
	repo ports.ReviewRepository
}

func NewReviewService(repo ports.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) CreateReview(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if in.Email == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.Create(ctx, &domain.Review{
		Email:     in.Email,
		Name:      in.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.ListLatest(ctx, latestReviews)
}
