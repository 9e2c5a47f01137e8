package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// UserHandler handles user listing, role-status reads, and privileged
// role management.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type roleStatusResponse struct {
	Admin   bool `json:"admin,omitempty"`
	Trainer bool `json:"trainer,omitempty"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member trainer admin"`
}

type listUsersResponse struct {
	Users []*userResponse `json:"users"`
}

// List returns every registered user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]*userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: out})
}

// AdminStatus reports whether the caller is an admin. The self-match
// middleware guarantees the path email equals the authenticated email.
//
// @Summary      Check own admin status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Own email"
// @Success      200    {object}  roleStatusResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	role, err := h.userService.ResolveRole(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleStatusResponse{Admin: role == domain.RoleAdmin})
}

// TrainerStatus reports whether the caller is a trainer.
//
// @Summary      Check own trainer status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Own email"
// @Success      200    {object}  roleStatusResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/trainer/{email} [get]
func (h *UserHandler) TrainerStatus(c echo.Context) error {
	role, err := h.userService.ResolveRole(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleStatusResponse{Trainer: role == domain.RoleTrainer})
}

// SetRole changes a user's role. The change takes effect on the target's
// next request without reissuing their credential.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User ID"
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      204   "No Content"
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/role [patch]
func (h *UserHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.userService.SetRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user record.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
