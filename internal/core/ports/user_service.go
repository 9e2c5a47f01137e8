package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// UserService defines use-case operations on user records.
type UserService interface {
	// ResolveRole looks up the current role for email directly in the user
	// store. It is total: an unknown email returns domain.ErrUserNotFound,
	// never an empty role with nil error.
	ResolveRole(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}
