package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	featuredCount    = 6
)

// ClassService implements class management and listings.
type ClassService struct {
	repo   ports.ClassRepository
	logger zerolog.Logger
}

func NewClassService(repo ports.ClassRepository, logger zerolog.Logger) *ClassService {
	return &ClassService{repo: repo, logger: logger}
}

func (s *ClassService) CreateClass(ctx context.Context, in ports.CreateClassInput) (*domain.Class, error) {
	if in.Name == "" || in.Details == "" {
		return nil, domain.ErrInvalidInput
	}

	class := &domain.Class{
		Name:          in.Name,
		Image:         in.Image,
		Details:       in.Details,
		TrainerEmails: in.TrainerEmails,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, class)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create class")
		return nil, err
	}

	s.logger.Info().Str("class_id", created.ID).Str("name", created.Name).Msg("class created")
	return created, nil
}

func (s *ClassService) ListClasses(ctx context.Context, filter ports.ListClassesFilter) (*ports.ListClassesResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListClassesResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// FeaturedClasses returns the most-booked classes for the landing page.
func (s *ClassService) FeaturedClasses(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.TopBooked(ctx, featuredCount)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
