package handler

import (
	"time"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

type createPostRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type voteRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type postResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	AuthorRole  string    `json:"author_role"`
	UpVotes     int64     `json:"up_votes"`
	DownVotes   int64     `json:"down_votes"`
	CreatedAt   time.Time `json:"created_at"`
}

type listPostsResponse struct {
	Data       []postResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toPostResponse(p *domain.ForumPost) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		AuthorEmail: p.AuthorEmail,
		AuthorRole:  p.AuthorRole,
		UpVotes:     p.UpVotes,
		DownVotes:   p.DownVotes,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func toListPostsResponse(r *ports.ListPostsResult) listPostsResponse {
	items := make([]postResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toPostResponse(p)
	}
	return listPostsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
