package service

import (
	"context"
	"time"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// NewsletterService implements newsletter signups.
type NewsletterService struct {
	repo ports.NewsletterRepository
}

func NewNewsletterService(repo ports.NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.Create(ctx, &domain.Subscriber{
		Name:         name,
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	})
}

func (s *NewsletterService) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.repo.List(ctx)
}
