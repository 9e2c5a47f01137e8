package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("missing or invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrApplicationNotFound = errors.New("trainer application not found")
	ErrInvalidTransition   = errors.New("invalid application status transition")

	ErrClassNotFound = errors.New("class not found")
	ErrPostNotFound  = errors.New("forum post not found")

	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrAlreadyVoted      = errors.New("already voted on this post")
)
