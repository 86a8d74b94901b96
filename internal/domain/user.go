package domain

import (
	"context"
	"time"
)

// Role codes accepted at registration. Roles are carried in tokens but not enforced.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account and is the root of every ownership chain.
// swagger:model User
type User struct {
	ID           string `json:"id_user"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(name, email, passwordHash, role string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
}

// Identity is the authenticated caller decoded from a bearer token.
type Identity struct {
	UserID string
	Role   string
}

// PasswordHasher hashes and verifies passwords. Implementations embed their own salt.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed bearer tokens for an identity.
type TokenIssuer interface {
	Issue(identity Identity, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the identity it carries.
// It returns ErrMissingToken for an empty token and ErrInvalidToken otherwise.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// AuthService registers users and exchanges credentials for tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
