package handler

import (
	"time"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

type applyRequest struct {
	Name          string   `json:"name"           validate:"required"`
	Age           int      `json:"age"            validate:"required,gt=17"`
	Skills        []string `json:"skills"         validate:"required,min=1,dive,required"`
	AvailableDays []string `json:"available_days" validate:"required,min=1"`
	AvailableTime string   `json:"available_time" validate:"required"`
	Experience    string   `json:"experience"`
}

type rejectRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

type applicationResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Skills        []string  `json:"skills"`
	AvailableDays []string  `json:"available_days"`
	AvailableTime string    `json:"available_time"`
	Experience    string    `json:"experience,omitempty"`
	Status        string    `json:"status"`
	Feedback      string    `json:"feedback,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type listApplicationsResponse struct {
	Applications []applicationResponse `json:"applications"`
}

func toApplicationResponse(a *domain.TrainerApplication) applicationResponse {
	return applicationResponse{
		ID:            a.ID,
		Email:         a.Email,
		Name:          a.Name,
		Age:           a.Age,
		Skills:        a.Skills,
		AvailableDays: a.AvailableDays,
		AvailableTime: a.AvailableTime,
		Experience:    a.Experience,
		Status:        string(a.Status),
		Feedback:      a.Feedback,
		CreatedAt:     a.CreatedAt.UTC(),
	}
}

func toApplicationListResponse(apps []*domain.TrainerApplication) listApplicationsResponse {
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toApplicationResponse(a)
	}
	return listApplicationsResponse{Applications: out}
}
