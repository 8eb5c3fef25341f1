package handlers

import (
	"github.com/rideshare/backend/internal/service/auth"
	"github.com/rideshare/backend/internal/service/rides"
	"github.com/rideshare/backend/pkg/logger"
	"github.com/rideshare/backend/pkg/monitoring"
	"github.com/rideshare/backend/pkg/token"
)

// Handlers holds all handler dependencies
type Handlers struct {
	Auth    *auth.Service
	Rides   *rides.Service
	Tokens  *token.Manager
	Logger  *logger.Logger
	Monitor *monitoring.NewRelicApp
}

// NewHandlers creates a new Handlers instance
func NewHandlers(authSvc *auth.Service, rideSvc *rides.Service, tokens *token.Manager, log *logger.Logger, monitor *monitoring.NewRelicApp) *Handlers {
	return &Handlers{
		Auth:    authSvc,
		Rides:   rideSvc,
		Tokens:  tokens,
		Logger:  log,
		Monitor: monitor,
	}
}
