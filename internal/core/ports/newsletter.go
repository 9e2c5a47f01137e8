package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// NewsletterRepository defines persistence operations for newsletter signups.
type NewsletterRepository interface {
	// Create inserts a subscriber. A duplicate email returns
	// domain.ErrAlreadySubscribed.
	Create(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error)
	List(ctx context.Context) ([]*domain.Subscriber, error)
}

// NewsletterService defines use-case operations for the newsletter.
type NewsletterService interface {
	Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error)
}
