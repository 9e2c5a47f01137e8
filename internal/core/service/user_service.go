package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// UserService implements role resolution and privileged user management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// ResolveRole returns the current role stored for email. This is the single
// source of truth for authorization decisions: the result is never cached
// and never read from a bearer credential.
func (s *UserService) ResolveRole(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// SetRole changes a user's role. Role changes take effect on the next
// authorization check without reissuing credentials.
func (s *UserService) SetRole(ctx context.Context, id, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	if err := s.repo.UpdateRoleByID(ctx, id, role); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user removed")
	return nil
}
