package ports

import (
	"context"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// ListPostsFilter carries pagination parameters for the forum listing.
type ListPostsFilter struct {
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// ForumRepository defines persistence operations for forum posts.
type ForumRepository interface {
	Create(ctx context.Context, post *domain.ForumPost) (*domain.ForumPost, error)
	FindByID(ctx context.Context, id string) (*domain.ForumPost, error)
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.ForumPost, int64, error)
	// IncrementVote adds one to the up or down counter of a post.
	IncrementVote(ctx context.Context, id, direction string) error
}

// CreatePostInput carries a new forum post. AuthorRole is the author's role
// resolved at posting time, captured for display only.
type CreatePostInput struct {
	Title       string
	Content     string
	AuthorEmail string
	AuthorRole  string
}

// ListPostsResult is returned by ListPosts.
type ListPostsResult struct {
	Items      []*domain.ForumPost
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ForumService defines use-case operations for the community forum.
type ForumService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.ForumPost, error)
	ListPosts(ctx context.Context, filter ListPostsFilter) (*ListPostsResult, error)
	// Vote records a single up/down vote by voterEmail on the post. A second
	// vote by the same voter returns domain.ErrAlreadyVoted.
	Vote(ctx context.Context, postID, voterEmail, direction string) error
}
