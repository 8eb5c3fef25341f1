package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/rideshare/backend/internal/api/handlers"
	"github.com/rideshare/backend/internal/api/middleware"
	"github.com/rideshare/backend/internal/domain/user"
	"github.com/rideshare/backend/pkg/token"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *handlers.Handlers, tokens *token.Manager, db *sql.DB, nrApp *newrelic.Application) {
	// Add New Relic middleware if enabled
	if nrApp != nil {
		r.Use(nrgin.Middleware(nrApp))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "unhealthy", "database": "down"})
			return
		}
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		// Public auth endpoints
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
		}

		// Protected endpoints; identity established per request from the
		// bearer token, role enforced per route group.
		v1 := api.Group("/v1", middleware.RequireAuth(tokens))
		{
			rider := v1.Group("", middleware.RequireRole(user.RoleUser))
			{
				rider.POST("/rides", h.CreateRide)
				rider.GET("/user/rides", h.ListUserRides)
			}

			driver := v1.Group("/driver", middleware.RequireRole(user.RoleDriver))
			{
				driver.GET("/rides/requests", h.ListPendingRides)
				driver.POST("/rides/:rideId/accept", h.AcceptRide)
			}

			either := v1.Group("", middleware.RequireRole(user.RoleUser, user.RoleDriver))
			{
				either.POST("/rides/:rideId/complete", h.CompleteRide)
			}
		}
	}
}
