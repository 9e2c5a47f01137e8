package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// TrainerRepository defines persistence operations for trainer applications.
type TrainerRepository interface {
	Create(ctx context.Context, app *domain.TrainerApplication) (*domain.TrainerApplication, error)
	FindByID(ctx context.Context, id string) (*domain.TrainerApplication, error)
	ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]*domain.TrainerApplication, error)
	// UpdateStatus persists a status change plus optional reviewer feedback.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, feedback string) error
}

// ApplyInput carries a member's trainer application.
type ApplyInput struct {
	Email         string
	Name          string
	Age           int
	Skills        []string
	AvailableDays []string
	AvailableTime string
	Experience    string
}

// TrainerService defines use-case operations for the trainer lifecycle.
type TrainerService interface {
	Apply(ctx context.Context, in ApplyInput) (*domain.TrainerApplication, error)
	GetApplication(ctx context.Context, id string) (*domain.TrainerApplication, error)
	ListPending(ctx context.Context) ([]*domain.TrainerApplication, error)
	// Approve transitions a pending application to approved and promotes the
	// applicant's user record to the trainer role.
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id, feedback string) error
	// ListTrainers returns approved applications (the public trainer roster).
	ListTrainers(ctx context.Context) ([]*domain.TrainerApplication, error)
	// Remove demotes the trainer behind an approved application back to member.
	Remove(ctx context.Context, id string) error
}
