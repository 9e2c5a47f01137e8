package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/api/metrics"
	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// emailKey is the context key under which the authenticated email is stored.
const emailKey = "email"

// identityClaims is the identity claim signed into every bearer credential.
// It deliberately carries no role: role is re-resolved from the user store on
// every authorization check.
type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticate validates the bearer credential and attaches the caller's
// email to the request context. Missing, malformed, badly signed, or expired
// credentials are all rejected as unauthenticated.
func Authenticate(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			claims := &identityClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid || claims.Email == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrUnauthenticated
			}

			c.Set(emailKey, claims.Email)
			return next(c)
		}
	}
}

// CallerEmail returns the authenticated email attached by Authenticate, or
// the empty string when the route is public.
func CallerEmail(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}
