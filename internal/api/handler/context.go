package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/api/middleware"
	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// callerEmail extracts the identity attached by the Authenticate middleware
// and fast-fails before any service call. An empty email on a protected
// route means the middleware did not run; handlers never re-derive identity
// from client-supplied data.
func callerEmail(c echo.Context) (string, error) {
	email := middleware.CallerEmail(c)
	if email == "" {
		return "", domain.ErrUnauthenticated
	}
	return email, nil
}
