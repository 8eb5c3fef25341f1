package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue("alice", "USER")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "alice", claims.Subject)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	tok, err := issuer.Issue("alice", "USER")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.Error(t, err)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	tok, err := m.Issue("alice", "USER")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"not a token", "not-a-token"},
		{"truncated token", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.input)
			assert.Error(t, err)
		})
	}
}
