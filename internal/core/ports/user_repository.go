package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	// Create inserts a new user. A duplicate email returns domain.ErrUserExists
	// (first write wins, never merged).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRoleByID(ctx context.Context, id, role string) error
	UpdateRoleByEmail(ctx context.Context, email, role string) error
	Delete(ctx context.Context, id string) error
}
