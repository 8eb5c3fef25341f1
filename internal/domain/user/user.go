package user

import (
	"context"
	"errors"
	"time"
)

// Role classifies an account: riders request rides, drivers fulfil them.
type Role string

const (
	RoleUser   Role = "USER"
	RoleDriver Role = "DRIVER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleDriver
}

// User is a registered account. PasswordHash is the bcrypt digest of the
// plaintext password; the plaintext is never persisted or logged.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repository defines the interface for user persistence
type Repository interface {
	// Create persists a new user and assigns its ID
	Create(ctx context.Context, u *User) error

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// Errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)
