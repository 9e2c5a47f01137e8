package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// VoteGuard abstracts the double-vote store (Redis).
type VoteGuard interface {
	// MarkVoted atomically records voterEmail's vote on postID and reports
	// whether this was the first vote. False means a vote already existed.
	MarkVoted(ctx context.Context, postID, voterEmail string) (bool, error)
}

// ForumService implements community posts and voting.
type ForumService struct {
	repo   ports.ForumRepository
	guard  VoteGuard
	logger zerolog.Logger
}

func NewForumService(repo ports.ForumRepository, guard VoteGuard, logger zerolog.Logger) *ForumService {
	return &ForumService{repo: repo, guard: guard, logger: logger}
}

func (s *ForumService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.ForumPost, error) {
	if in.Title == "" || in.Content == "" || in.AuthorEmail == "" {
		return nil, domain.ErrInvalidInput
	}

	post := &domain.ForumPost{
		Title:       in.Title,
		Content:     in.Content,
		AuthorEmail: in.AuthorEmail,
		AuthorRole:  in.AuthorRole,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author", in.AuthorEmail).Msg("forum post created")
	return created, nil
}

func (s *ForumService) ListPosts(ctx context.Context, filter ports.ListPostsFilter) (*ports.ListPostsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListPostsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Vote records one up/down vote per voter per post. The guard write is a
// single atomic set-if-absent, so concurrent votes by the same voter cannot
// both pass; the mark lands before the counter moves, so a crashed request
// can at worst lose a vote, never double-count one.
func (s *ForumService) Vote(ctx context.Context, postID, voterEmail, direction string) error {
	if direction != domain.VoteUp && direction != domain.VoteDown {
		return domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByID(ctx, postID); err != nil {
		return err
	}

	first, err := s.guard.MarkVoted(ctx, postID, voterEmail)
	if err != nil {
		return fmt.Errorf("vote guard mark: %w", err)
	}
	if !first {
		return domain.ErrAlreadyVoted
	}

	if err := s.repo.IncrementVote(ctx, postID, direction); err != nil {
		return err
	}

	s.logger.Debug().Str("post_id", postID).Str("direction", direction).Msg("vote recorded")
	return nil
}
