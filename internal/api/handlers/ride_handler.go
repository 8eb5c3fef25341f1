package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rideshare/backend/internal/api/dto"
	"github.com/rideshare/backend/internal/api/middleware"
)

// CreateRide handles POST /api/v1/rides (role USER). The rider identity
// comes from the verified token, not the request body.
func (h *Handlers) CreateRide(c *gin.Context) {
	var req dto.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	riderID, _ := middleware.CallerIdentity(c)

	rd, err := h.Rides.Create(c.Request.Context(), riderID, req.PickupLocation, req.DropLocation)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Monitor.RecordRideCreated(rd.ID)

	c.JSON(http.StatusOK, rd)
}

// ListPendingRides handles GET /api/v1/driver/rides/requests (role DRIVER)
func (h *Handlers) ListPendingRides(c *gin.Context) {
	list, err := h.Rides.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// AcceptRide handles POST /api/v1/driver/rides/:rideId/accept (role DRIVER)
func (h *Handlers) AcceptRide(c *gin.Context) {
	rideID := c.Param("rideId")
	driverID, _ := middleware.CallerIdentity(c)

	rd, err := h.Rides.Accept(c.Request.Context(), rideID, driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Monitor.RecordRideAccepted(rd.ID, driverID)

	c.JSON(http.StatusOK, rd)
}

// CompleteRide handles POST /api/v1/rides/:rideId/complete (role USER or
// DRIVER). The service does not check that the caller belongs to this
// ride; the role guard is the only restriction.
func (h *Handlers) CompleteRide(c *gin.Context) {
	rideID := c.Param("rideId")

	rd, err := h.Rides.Complete(c.Request.Context(), rideID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Monitor.RecordRideCompleted(rd.ID)

	c.JSON(http.StatusOK, rd)
}

// ListUserRides handles GET /api/v1/user/rides (role USER)
func (h *Handlers) ListUserRides(c *gin.Context) {
	riderID, _ := middleware.CallerIdentity(c)

	list, err := h.Rides.ListForRider(c.Request.Context(), riderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
