package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// TrainerService implements the trainer application lifecycle.
type TrainerService struct {
	apps   ports.TrainerRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTrainerService(apps ports.TrainerRepository, users ports.UserRepository, logger zerolog.Logger) *TrainerService {
	return &TrainerService{apps: apps, users: users, logger: logger}
}

// Apply files a pending trainer application for the authenticated member.
func (s *TrainerService) Apply(ctx context.Context, in ports.ApplyInput) (*domain.TrainerApplication, error) {
	if in.Email == "" || in.Name == "" || len(in.Skills) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	app := &domain.TrainerApplication{
		Email:         in.Email,
		Name:          in.Name,
		Age:           in.Age,
		Skills:        in.Skills,
		AvailableDays: in.AvailableDays,
		AvailableTime: in.AvailableTime,
		Experience:    in.Experience,
		Status:        domain.ApplicationPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("application_id", created.ID).Str("applicant", in.Email).Msg("trainer application filed")
	return created, nil
}

func (s *TrainerService) GetApplication(ctx context.Context, id string) (*domain.TrainerApplication, error) {
	return s.apps.FindByID(ctx, id)
}

func (s *TrainerService) ListPending(ctx context.Context) ([]*domain.TrainerApplication, error) {
	return s.apps.ListByStatus(ctx, domain.ApplicationPending)
}

// Approve transitions the application to approved and promotes the applicant
// to the trainer role. The promotion is visible to the applicant's existing
// credential on its next request.
func (s *TrainerService) Approve(ctx context.Context, id string) error {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !app.Status.CanTransitionTo(domain.ApplicationApproved) {
		return fmt.Errorf("approve application: %w (from %s)", domain.ErrInvalidTransition, app.Status)
	}

	if err := s.apps.UpdateStatus(ctx, id, domain.ApplicationApproved, ""); err != nil {
		return err
	}
	if err := s.users.UpdateRoleByEmail(ctx, app.Email, domain.RoleTrainer); err != nil {
		return fmt.Errorf("promote applicant: %w", err)
	}

	s.logger.Info().Str("application_id", id).Str("applicant", app.Email).Msg("trainer application approved")
	return nil
}

// Reject transitions the application to rejected, recording reviewer feedback.
func (s *TrainerService) Reject(ctx context.Context, id, feedback string) error {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !app.Status.CanTransitionTo(domain.ApplicationRejected) {
		return fmt.Errorf("reject application: %w (from %s)", domain.ErrInvalidTransition, app.Status)
	}

	if err := s.apps.UpdateStatus(ctx, id, domain.ApplicationRejected, feedback); err != nil {
		return err
	}

	s.logger.Info().Str("application_id", id).Str("applicant", app.Email).Msg("trainer application rejected")
	return nil
}

func (s *TrainerService) ListTrainers(ctx context.Context) ([]*domain.TrainerApplication, error) {
	return s.apps.ListByStatus(ctx, domain.ApplicationApproved)
}

// Remove demotes the trainer behind an approved application back to member.
// The application record stays approved as history.
func (s *TrainerService) Remove(ctx context.Context, id string) error {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status != domain.ApplicationApproved {
		return fmt.Errorf("remove trainer: %w (status %s)", domain.ErrInvalidTransition, app.Status)
	}

	if err := s.users.UpdateRoleByEmail(ctx, app.Email, domain.RoleMember); err != nil {
		return err
	}

	s.logger.Info().Str("application_id", id).Str("trainer", app.Email).Msg("trainer demoted to member")
	return nil
}
