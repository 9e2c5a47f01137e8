package handler

// registerRequest creates an account. Password is optional: accounts verified
// by an external identity provider register without one.
type registerRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
	Password string `json:"password"  validate:"omitempty,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenRequest mints a credential for an externally-verified identity.
type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}
