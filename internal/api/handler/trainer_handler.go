package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// TrainerHandler handles the trainer application lifecycle and roster.
type TrainerHandler struct {
	trainerService ports.TrainerService
}

func NewTrainerHandler(trainerService ports.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// Apply files a trainer application for the authenticated member. The
// applicant email always comes from the verified identity, never the body.
//
// @Summary      Apply to become a trainer
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  applicationResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /trainers/applications [post]
func (h *TrainerHandler) Apply(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.trainerService.Apply(c.Request().Context(), ports.ApplyInput{
		Email:         email,
		Name:          req.Name,
		Age:           req.Age,
		Skills:        req.Skills,
		AvailableDays: req.AvailableDays,
		AvailableTime: req.AvailableTime,
		Experience:    req.Experience,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// ListApplications returns pending applications for admin review.
//
// @Summary      List pending trainer applications
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listApplicationsResponse
// @Failure      403  {object}  errorResponse
// @Router       /trainers/applications [get]
func (h *TrainerHandler) ListApplications(c echo.Context) error {
	apps, err := h.trainerService.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationListResponse(apps))
}

// GetApplication returns a single application.
//
// @Summary      Get a trainer application
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /trainers/applications/{id} [get]
func (h *TrainerHandler) GetApplication(c echo.Context) error {
	app, err := h.trainerService.GetApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// Approve approves a pending application and promotes the applicant.
//
// @Summary      Approve a trainer application
// @Tags         trainers
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /trainers/applications/{id}/approve [patch]
func (h *TrainerHandler) Approve(c echo.Context) error {
	if err := h.trainerService.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Reject rejects a pending application with reviewer feedback.
//
// @Summary      Reject a trainer application
// @Tags         trainers
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string         true  "Application ID"
// @Param        body  body  rejectRequest  true  "Reviewer feedback"
// @Success      204   "No Content"
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /trainers/applications/{id}/reject [patch]
func (h *TrainerHandler) Reject(c echo.Context) error {
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.trainerService.Reject(c.Request().Context(), c.Param("id"), req.Feedback); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTrainers returns the public roster of approved trainers.
//
// @Summary      List trainers
// @Tags         trainers
// @Produce      json
// @Success      200  {object}  listApplicationsResponse
// @Router       /trainers [get]
func (h *TrainerHandler) ListTrainers(c echo.Context) error {
	apps, err := h.trainerService.ListTrainers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationListResponse(apps))
}

// Remove demotes a trainer back to member.
//
// @Summary      Remove a trainer
// @Tags         trainers
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /trainers/{id} [delete]
func (h *TrainerHandler) Remove(c echo.Context) error {
	if err := h.trainerService.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
