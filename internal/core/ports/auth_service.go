package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	PhotoURL string
	// Password is optional: accounts verified by an external identity
	// provider register without one and obtain tokens via IssueToken.
	Password string
}

// AuthService implements registration, login, and credential issuance.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// IssueToken mints a signed bearer credential for email with the fixed
	// validity window. Empty email returns domain.ErrInvalidInput.
	IssueToken(ctx context.Context, email string) (string, error)
}
