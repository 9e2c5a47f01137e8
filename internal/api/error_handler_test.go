package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/api/middleware"
	"github.com/fitrack/fitrack-api/internal/core/domain"
)

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"already voted", domain.ErrAlreadyVoted, http.StatusConflict},
		{"already subscribed", domain.ErrAlreadySubscribed, http.StatusConflict},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"class not found", domain.ErrClassNotFound, http.StatusNotFound},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"echo http error", echo.NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
	}

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			e.HTTPErrorHandler(tc.err, c)

			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, rec.Code)
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding envelope: %v", err)
			}
			if body.Success {
				t.Fatal("error envelope must have success=false")
			}
			if body.Message == "" {
				t.Fatal("error envelope must carry a message")
			}
		})
	}
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(context.DeadlineExceeded, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "internal server error" {
		t.Fatalf("internal cause leaked to client: %q", body.Message)
	}
}

type staticResolver map[string]string

func (r staticResolver) ResolveRole(_ context.Context, email string) (string, error) {
	role, ok := r[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

// End-to-end over the gate: request -> authenticate -> role check -> handler,
// with rejections rendered by the central error handler.
func TestGateEndToEnd(t *testing.T) {
	const secret = "gate-secret"

	resolver := staticResolver{
		"member@example.com": domain.RoleMember,
		"admin@example.com":  domain.RoleAdmin,
	}

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	guard := middleware.NewGuard(secret, resolver)

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.Add(http.MethodGet, "/admin-only", ok, guard.Wrap(middleware.Policy{Roles: []string{domain.RoleAdmin}})...)
	e.Add(http.MethodGet, "/self/:email", ok, guard.Wrap(middleware.Policy{SelfParam: "email"})...)
	e.Add(http.MethodGet, "/open", ok, guard.Wrap(middleware.Policy{Public: true})...)

	token := func(email string) string {
		now := time.Now().UTC()
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": email,
			"iat":   now.Unix(),
			"exp":   now.Add(time.Hour).Unix(),
		}).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("signing token: %v", err)
		}
		return "Bearer " + signed
	}

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"public route without token", "/open", "", http.StatusOK},
		{"protected route without token", "/admin-only", "", http.StatusUnauthorized},
		{"member on admin route", "/admin-only", token("member@example.com"), http.StatusForbidden},
		{"admin on admin route", "/admin-only", token("admin@example.com"), http.StatusOK},
		{"unknown user on admin route", "/admin-only", token("ghost@example.com"), http.StatusForbidden},
		{"self lookup own email", "/self/member@example.com", token("member@example.com"), http.StatusOK},
		{"self lookup other email", "/self/admin@example.com", token("member@example.com"), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d (body %s)", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}
