package handler

import (
	"time"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// errorResponse is the standard failure envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type createClassRequest struct {
	Name          string   `json:"name"           validate:"required"`
	Image         string   `json:"image"          validate:"omitempty,url"`
	Details       string   `json:"details"        validate:"required"`
	TrainerEmails []string `json:"trainer_emails" validate:"omitempty,dive,email"`
}

type classResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image,omitempty"`
	Details       string    `json:"details"`
	TrainerEmails []string  `json:"trainer_emails,omitempty"`
	BookingCount  int64     `json:"booking_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listClassesResponse struct {
	Data       []classResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type featuredClassesResponse struct {
	Classes []classResponse `json:"classes"`
}

func toClassResponse(c *domain.Class) classResponse {
	return classResponse{
		ID:            c.ID,
		Name:          c.Name,
		Image:         c.Image,
		Details:       c.Details,
		TrainerEmails: c.TrainerEmails,
		BookingCount:  c.BookingCount,
		CreatedAt:     c.CreatedAt.UTC(),
	}
}

func toListClassesResponse(r *ports.ListClassesResult) listClassesResponse {
	items := make([]classResponse, len(r.Items))
	for i, c := range r.Items {
		items[i] = toClassResponse(c)
	}
	return listClassesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
