package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/api"
	"github.com/fitrack/fitrack-api/internal/api/handler"
	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn   func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn      func(ctx context.Context, email, password string) (string, *domain.User, error)
	issueTokenFn func(ctx context.Context, email string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) IssueToken(ctx context.Context, email string) (string, error) {
	return s.issueTokenFn(ctx, email)
}

func newAuthServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(stub)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/token", h.Token)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Name != "Alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "user-1", Name: in.Name, Email: in.Email, Role: domain.RoleMember}, nil
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response: %v", resp)
	}
	if user["email"] != "alice@example.com" || user["role"] != domain.RoleMember {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/register", `{"name":"Bob","email":"bob@example.com"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/register", "not-json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", rec.Code)
	}

	rec = postJSON(e, "/auth/register", `{"name":"Bob"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing email, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Name: "Alice", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/login", `{"email":"alice@example.com","password":"secret"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Token_Success(t *testing.T) {
	stub := &stubAuthService{
		issueTokenFn: func(ctx context.Context, email string) (string, error) {
			if email != "verified@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return "tokenXYZ", nil
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/token", `{"email":"verified@example.com"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "tokenXYZ" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Token_RequiresEmail(t *testing.T) {
	stub := &stubAuthService{
		issueTokenFn: func(ctx context.Context, email string) (string, error) {
			t.Fatal("service should not be called")
			return "", nil
		},
	}
	e := newAuthServer(stub)

	rec := postJSON(e, "/auth/token", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
