package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rideshare/backend/internal/domain/user"
	"github.com/rideshare/backend/pkg/apperrors"
	"github.com/rideshare/backend/pkg/token"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUsername = "auth_username"
	ContextRole     = "auth_role"
)

// RequireAuth verifies the bearer token and stores the caller's identity
// in the gin context. Requests without a valid token never reach the
// handler.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.Unauthorized("Missing authorization header", nil))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, apperrors.Unauthorized("Invalid authorization header", nil))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abortWithError(c, apperrors.Unauthorized("Invalid or expired token", err))
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose verified role is not in the allowed
// set. Must run after RequireAuth.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if _, ok := allowed[role]; !ok {
			abortWithError(c, apperrors.Forbidden("Insufficient role for this operation", nil))
			return
		}
		c.Next()
	}
}

// CallerIdentity returns the username and role RequireAuth stored for
// this request.
func CallerIdentity(c *gin.Context) (username, role string) {
	return c.GetString(ContextUsername), c.GetString(ContextRole)
}

func abortWithError(c *gin.Context, err *apperrors.Error) {
	c.AbortWithStatusJSON(err.Status, gin.H{
		"error":     err.Kind,
		"message":   err.Message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
