package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rideshare/backend/internal/domain/user"
	"github.com/rideshare/backend/pkg/apperrors"
	"github.com/rideshare/backend/pkg/logger"
)

// Service handles registration and login.
type Service struct {
	users  user.Repository
	logger *logger.Logger
}

// NewService creates a new auth service.
func NewService(users user.Repository, log *logger.Logger) *Service {
	return &Service{
		users:  users,
		logger: log,
	}
}

// Register creates a new account. The username must be unused; the password
// is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, username, password string, role user.Role) (*user.User, error) {
	if !role.Valid() {
		return nil, apperrors.Validation("Role must be USER or DRIVER", nil)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, apperrors.Internal("Failed to check username", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("Username already taken", user.ErrUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	u := &user.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration for the same username.
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, apperrors.Conflict("Username already taken", err)
		}
		return nil, apperrors.Internal("Failed to create user", err)
	}

	s.logger.Info("User registered",
		logger.String("username", u.Username),
		logger.String("role", string(u.Role)),
	)

	return u, nil
}

// Authenticate verifies a login attempt. An unknown username and a wrong
// password produce the same error, so callers cannot probe for accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.InvalidCredentials("Invalid credentials", err)
		}
		return nil, apperrors.Internal("Failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.InvalidCredentials("Invalid credentials", err)
	}

	s.logger.Info("User authenticated", logger.String("username", u.Username))

	return u, nil
}
