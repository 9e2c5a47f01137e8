package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// ListClassesFilter carries query parameters for the class listing.
type ListClassesFilter struct {
	Search string // optional: partial match on class name
	Page   int    // 1-based
	Limit  int    // capped at 100 by the service
}

// ClassRepository defines persistence operations for classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) (*domain.Class, error)
	FindByID(ctx context.Context, id string) (*domain.Class, error)
	// List returns a page of classes matching filter and the total count.
	List(ctx context.Context, filter ListClassesFilter) ([]*domain.Class, int64, error)
	// TopBooked returns the n classes with the highest booking count.
	TopBooked(ctx context.Context, n int) ([]*domain.Class, error)
	IncrementBookingCount(ctx context.Context, id string) error
}

// CreateClassInput carries the data needed to add a class.
type CreateClassInput struct {
	Name          string
	Image         string
	Details       string
	TrainerEmails []string
}

// ListClassesResult is returned by ListClasses.
type ListClassesResult struct {
	Items      []*domain.Class
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ClassService defines use-case operations for classes.
type ClassService interface {
	CreateClass(ctx context.Context, in CreateClassInput) (*domain.Class, error)
	ListClasses(ctx context.Context, filter ListClassesFilter) (*ListClassesResult, error)
	FeaturedClasses(ctx context.Context) ([]*domain.Class, error)
}
