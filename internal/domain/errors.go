package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrDuplicateSlug      = errors.New("slug already in use")
	ErrParentNotFound     = errors.New("referenced parent does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("authorization token required")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
