package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

const testSecret = "test-secret"

// memUserRepo is an in-memory UserRepository keyed by email, shared by the
// service tests in this package.
type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	u := *user
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[u.Email] = &u
	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) UpdateRoleByID(_ context.Context, id, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) UpdateRoleByEmail(_ context.Context, email, role string) error {
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func TestRegisterDefaultsToMemberRole(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret, 0)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("expected member role, got %q", user.Role)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")) != nil {
		t.Fatal("stored hash does not verify against the password")
	}
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret, 0)
	in := ports.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret"}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterRequiresNameAndEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret, 0)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.c"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Alice"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user %q", user.Email)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginRejectsPasswordlessAccount(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	// Accounts registered without a password authenticate externally.
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "bob@example.com", "anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestIssueTokenClaims(t *testing.T) {
	ttl := 24 * time.Hour
	svc := NewAuthService(newMemUserRepo(), testSecret, ttl)

	signed, err := svc.IssueToken(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("parsing issued token: %v", err)
	}

	if claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected email claim %v", claims["email"])
	}
	if _, hasRole := claims["role"]; hasRole {
		t.Fatal("token must not embed a role claim")
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if got := time.Duration(exp-iat) * time.Second; got != ttl {
		t.Fatalf("expected %v lifetime, got %v", ttl, got)
	}
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret, 0)
	if _, err := svc.IssueToken(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
