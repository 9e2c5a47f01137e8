package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/api/metrics"
	"github.com/fitrack/fitrack-api/internal/core/domain"
)

// Policy declares what a route requires before its handler runs. It is pure
// data: the router holds one Policy per route and the Guard expands it into
// the middleware chain, so no authorization rule is duplicated in handlers.
type Policy struct {
	// Public skips authentication entirely.
	Public bool
	// SelfParam names a path parameter whose value must equal the
	// authenticated email (byte-for-byte).
	SelfParam string
	// Roles, when non-empty, is the set of roles admitted to the route. The
	// caller's role is freshly resolved from the user store on every request.
	Roles []string
}

// RoleResolver resolves the current role for an email from the user store.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}

// Guard expands route policies into middleware chains.
type Guard struct {
	jwtSecret string
	roles     RoleResolver
}

func NewGuard(jwtSecret string, roles RoleResolver) *Guard {
	return &Guard{jwtSecret: jwtSecret, roles: roles}
}

// Wrap returns the middleware chain enforcing p, in gate order:
// authenticate, then self-match, then role check. Any rejection
// short-circuits; public routes get no middleware at all.
func (g *Guard) Wrap(p Policy) []echo.MiddlewareFunc {
	if p.Public {
		return nil
	}

	mws := []echo.MiddlewareFunc{Authenticate(g.jwtSecret)}
	if p.SelfParam != "" {
		mws = append(mws, RequireSelf(p.SelfParam))
	}
	if len(p.Roles) > 0 {
		mws = append(mws, RequireRoles(g.roles, p.Roles...))
	}
	return mws
}

// RequireSelf rejects requests whose path parameter param does not exactly
// match the authenticated email. This stops one authenticated user from
// querying another's role status.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Param(param) != CallerEmail(c) {
				metrics.AuthRejectionsTotal.WithLabelValues("self_mismatch").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireRoles admits the request only when the caller's current role, freshly
// resolved from the user store, is in allowedRoles. The role inside the
// credential (there is none by construction) is never consulted; a role change
// takes effect on the very next request. An email with no user record is
// forbidden, not not-found, so role checks never leak account existence.
func RequireRoles(resolver RoleResolver, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := resolver.ResolveRole(c.Request().Context(), CallerEmail(c))
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
					return domain.ErrForbidden
				}
				return fmt.Errorf("resolve role: %w", err)
			}

			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
