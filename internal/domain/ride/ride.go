package ride

import (
	"context"
	"errors"
	"time"
)

// Status represents ride status
type Status string

const (
	StatusRequested Status = "REQUESTED"
	StatusAccepted  Status = "ACCEPTED"
	StatusCompleted Status = "COMPLETED"
)

// Ride represents a ride request and its progress through the lifecycle
// REQUESTED -> ACCEPTED -> COMPLETED. DriverID is nil exactly while the
// ride is still REQUESTED. Locations are opaque strings; no geocoding.
type Ride struct {
	ID             string    `json:"id"`
	RiderID        string    `json:"rider_id"`
	DriverID       *string   `json:"driver_id,omitempty"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Repository defines the interface for ride persistence
type Repository interface {
	// Create persists a new ride and assigns its ID
	Create(ctx context.Context, r *Ride) error

	// GetByID retrieves a ride by ID
	GetByID(ctx context.Context, id string) (*Ride, error)

	// Update overwrites the stored ride
	Update(ctx context.Context, r *Ride) error

	// ListByStatus retrieves all rides with the given status, store order
	ListByStatus(ctx context.Context, status Status) ([]*Ride, error)

	// ListByRider retrieves all rides requested by the given rider
	ListByRider(ctx context.Context, riderID string) ([]*Ride, error)
}

// Errors
var (
	ErrRideNotFound = errors.New("ride not found")
)

// CanAccept checks if a driver can accept this ride
func (r *Ride) CanAccept() bool {
	return r.Status == StatusRequested
}

// CanComplete checks if this ride can be completed
func (r *Ride) CanComplete() bool {
	return r.Status == StatusAccepted
}
