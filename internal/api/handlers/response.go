package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rideshare/backend/pkg/apperrors"
)

// errorBody is the uniform error shape every failing response carries.
type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// respondError maps any error to exactly one HTTP status and renders the
// uniform error body. Unknown errors become INTERNAL_ERROR rather than
// leaking to the client.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Status, errorBody{
		Error:     appErr.Kind,
		Message:   appErr.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// respondValidation renders a binding failure as a VALIDATION_ERROR.
func respondValidation(c *gin.Context, err error) {
	respondError(c, apperrors.Validation("Invalid request payload", err))
}
