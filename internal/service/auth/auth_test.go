package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rideshare/backend/internal/domain/user"
	"github.com/rideshare/backend/pkg/apperrors"
	"github.com/rideshare/backend/pkg/logger"
)

// memUserRepo is an in-memory user.Repository for tests.
type memUserRepo struct {
	byUsername map[string]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*user.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := m.byUsername[u.Username]; ok {
		return user.ErrUsernameTaken
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	cp := *u
	m.byUsername[u.Username] = &cp
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestService(t *testing.T) (*Service, *memUserRepo) {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)
	repo := newMemUserRepo()
	return NewService(repo, log), repo
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	svc, repo := newTestService(t)

	u, err := svc.Register(context.Background(), "alice", "pw1", user.RoleUser)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, user.RoleUser, u.Role)

	stored := repo.byUsername["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash, "password must not be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Register(context.Background(), "alice", "pw1", user.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other", user.RoleDriver)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "CONFLICT"))

	// First registration remains queryable unchanged.
	u, err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, u.ID)
	assert.Equal(t, user.RoleUser, u.Role)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "alice", "pw1", user.Role("ADMIN"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "bob", "pw2", user.RoleDriver)
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "bob", "pw2")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, user.RoleDriver, u.Role)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "alice", "pw1", user.RoleUser)
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(context.Background(), "alice", "nope")
	_, unknownUser := svc.Authenticate(context.Background(), "mallory", "nope")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.True(t, apperrors.Is(wrongPassword, "INVALID_CREDENTIALS"))
	assert.True(t, apperrors.Is(unknownUser, "INVALID_CREDENTIALS"))
	assert.Equal(t, apperrors.From(wrongPassword).Message, apperrors.From(unknownUser).Message)
}
