package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rideshare/backend/internal/api/dto"
	"github.com/rideshare/backend/internal/domain/user"
	"github.com/rideshare/backend/pkg/logger"
)

// Register handles POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), req.Username, req.Password, user.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	h.Monitor.RecordUserRegistered(string(u.Role))

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message:  "User registered successfully",
		Username: u.Username,
		Role:     string(u.Role),
	})
}

// Login handles POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	u, err := h.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tok, err := h.Tokens.Issue(u.Username, string(u.Role))
	if err != nil {
		h.Logger.Error("Failed to issue token", logger.Err(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    tok,
		Username: u.Username,
		Role:     string(u.Role),
	})
}
