package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// NewsletterHandler handles newsletter signups.
type NewsletterHandler struct {
	newsletterService ports.NewsletterService
}

func NewNewsletterHandler(newsletterService ports.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

type subscriberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type listSubscribersResponse struct {
	Subscribers []subscriberResponse `json:"subscribers"`
}

// Subscribe signs an email up for the newsletter. Public; a duplicate email
// is rejected with a conflict.
//
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Subscriber"
// @Success      201   {object}  subscriberResponse
// @Failure      409   {object}  errorResponse
// @Router       /newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sub, err := h.newsletterService.Subscribe(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, subscriberResponse{
		ID:           sub.ID,
		Name:         sub.Name,
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt.UTC(),
	})
}

// ListSubscribers returns every newsletter subscriber.
//
// @Summary      List newsletter subscribers
// @Tags         newsletter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSubscribersResponse
// @Failure      403  {object}  errorResponse
// @Router       /newsletter [get]
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subs, err := h.newsletterService.ListSubscribers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]subscriberResponse, len(subs))
	for i, s := range subs {
		out[i] = subscriberResponse{
			ID:           s.ID,
			Name:         s.Name,
			Email:        s.Email,
			SubscribedAt: s.SubscribedAt.UTC(),
		}
	}
	return c.JSON(http.StatusOK, listSubscribersResponse{Subscribers: out})
}
