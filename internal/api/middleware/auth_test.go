package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, email string, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func newContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func runMiddleware(mw echo.MiddlewareFunc, c echo.Context) (called bool, err error) {
	h := mw(func(c echo.Context) error {
		called = true
		return nil
	})
	err = h(c)
	return called, err
}

func TestAuthenticateValidToken(t *testing.T) {
	token := signToken(t, testSecret, "member@example.com", time.Hour)
	c := newContext("Bearer " + token)

	called, err := runMiddleware(Authenticate(testSecret), c)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("handler was not invoked")
	}
	if got := CallerEmail(c); got != "member@example.com" {
		t.Fatalf("expected caller email member@example.com, got %q", got)
	}
}

func TestAuthenticateSchemeIsCaseInsensitive(t *testing.T) {
	token := signToken(t, testSecret, "member@example.com", time.Hour)
	c := newContext("bearer " + token)

	called, err := runMiddleware(Authenticate(testSecret), c)
	if err != nil || !called {
		t.Fatalf("lowercase scheme rejected: called=%v err=%v", called, err)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "member@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing HS512 token: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"no token part", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "member@example.com", time.Hour)},
		{"expired token", "Bearer " + signToken(t, testSecret, "member@example.com", -time.Minute)},
		{"empty email claim", "Bearer " + signToken(t, testSecret, "", time.Hour)},
		{"wrong algorithm", "Bearer " + wrongAlg},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(tc.header)
			called, err := runMiddleware(Authenticate(testSecret), c)
			if err != domain.ErrUnauthenticated {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
			if called {
				t.Fatal("handler should not run for a rejected request")
			}
		})
	}
}

func TestCallerEmailOnPublicRoute(t *testing.T) {
	c := newContext("")
	if got := CallerEmail(c); got != "" {
		t.Fatalf("expected empty caller email, got %q", got)
	}
}
