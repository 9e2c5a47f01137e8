package domain

import "time"

const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleTrainer || role == RoleAdmin
}

// User models a registered account. Email is the identity key; role is the
// single authorization axis in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
