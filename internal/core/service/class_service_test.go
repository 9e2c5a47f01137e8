package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

type memClassRepo struct {
	classes []*domain.Class
	nextID  int
}

func (r *memClassRepo) Create(_ context.Context, class *domain.Class) (*domain.Class, error) {
	r.nextID++
	c := *class
	c.ID = fmt.Sprintf("class-%d", r.nextID)
	r.classes = append(r.classes, &c)
	return &c, nil
}

func (r *memClassRepo) FindByID(_ context.Context, id string) (*domain.Class, error) {
	for _, c := range r.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrClassNotFound
}

func (r *memClassRepo) List(_ context.Context, filter ports.ListClassesFilter) ([]*domain.Class, int64, error) {
	var matched []*domain.Class
	for _, c := range r.classes {
		if filter.Search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Search)) {
			matched = append(matched, c)
		}
	}
	total := int64(len(matched))

	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memClassRepo) TopBooked(_ context.Context, n int) ([]*domain.Class, error) {
	sorted := make([]*domain.Class, len(r.classes))
	copy(sorted, r.classes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].BookingCount > sorted[j].BookingCount
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n], nil
}

func (r *memClassRepo) IncrementBookingCount(_ context.Context, id string) error {
	for _, c := range r.classes {
		if c.ID == id {
			c.BookingCount++
			return nil
		}
	}
	return domain.ErrClassNotFound
}

func seedClasses(t *testing.T, svc *ClassService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := svc.CreateClass(context.Background(), ports.CreateClassInput{
			Name:    fmt.Sprintf("Class %02d", i),
			Details: "details",
		}); err != nil {
			t.Fatalf("seeding class %d: %v", i, err)
		}
	}
}

func TestCreateClassValidatesInput(t *testing.T) {
	svc := NewClassService(&memClassRepo{}, zerolog.Nop())

	if _, err := svc.CreateClass(context.Background(), ports.CreateClassInput{Name: "Spin"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without details, got %v", err)
	}
}

func TestListClassesPagination(t *testing.T) {
	svc := NewClassService(&memClassRepo{}, zerolog.Nop())
	seedClasses(t, svc, 25)

	res, err := svc.ListClasses(context.Background(), ports.ListClassesFilter{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 25 {
		t.Fatalf("expected total 25, got %d", res.Total)
	}
	if len(res.Items) != 10 {
		t.Fatalf("expected 10 items on page 2, got %d", len(res.Items))
	}
	if res.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", res.TotalPages)
	}
}

func TestListClassesNormalizesPageParams(t *testing.T) {
	svc := NewClassService(&memClassRepo{}, zerolog.Nop())
	seedClasses(t, svc, 5)

	res, err := svc.ListClasses(context.Background(), ports.ListClassesFilter{Page: 0, Limit: -1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Page != 1 || res.Limit != 10 {
		t.Fatalf("expected page=1 limit=10 after normalization, got page=%d limit=%d", res.Page, res.Limit)
	}

	res, err = svc.ListClasses(context.Background(), ports.ListClassesFilter{Page: 1, Limit: 1000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", res.Limit)
	}
}

func TestListClassesSearch(t *testing.T) {
	repo := &memClassRepo{}
	svc := NewClassService(repo, zerolog.Nop())
	for _, name := range []string{"Morning Yoga", "Evening Yoga", "Boxing"} {
		if _, err := svc.CreateClass(context.Background(), ports.CreateClassInput{Name: name, Details: "d"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	res, err := svc.ListClasses(context.Background(), ports.ListClassesFilter{Search: "yoga"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 yoga classes, got %d", res.Total)
	}
}

func TestFeaturedClassesOrderedByBookings(t *testing.T) {
	repo := &memClassRepo{}
	svc := NewClassService(repo, zerolog.Nop())
	seedClasses(t, svc, 8)

	// Bump bookings so class-3 is the most booked, then class-7.
	for i := 0; i < 5; i++ {
		_ = repo.IncrementBookingCount(context.Background(), "class-3")
	}
	for i := 0; i < 3; i++ {
		_ = repo.IncrementBookingCount(context.Background(), "class-7")
	}

	featured, err := svc.FeaturedClasses(context.Background())
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) != 6 {
		t.Fatalf("expected 6 featured classes, got %d", len(featured))
	}
	if featured[0].ID != "class-3" || featured[1].ID != "class-7" {
		t.Fatalf("unexpected ordering: %s, %s", featured[0].ID, featured[1].ID)
	}
}
