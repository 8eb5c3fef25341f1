package rides

import (
	"context"
	"errors"

	"github.com/rideshare/backend/internal/domain/ride"
	"github.com/rideshare/backend/pkg/apperrors"
	"github.com/rideshare/backend/pkg/logger"
)

// Service implements the ride lifecycle REQUESTED -> ACCEPTED -> COMPLETED.
//
// Accept and Complete are a plain read followed by an unconditional write
// with no lock, transaction, or conditional update between them. Two
// concurrent accepts on the same ride can both pass the status check and
// both succeed, last write wins. Complete also does not verify the caller
// is the ride's own rider or driver; only the route-level role guard
// applies.
type Service struct {
	rides  ride.Repository
	logger *logger.Logger
}

// NewService creates a new ride service.
func NewService(rides ride.Repository, log *logger.Logger) *Service {
	return &Service{
		rides:  rides,
		logger: log,
	}
}

// Create opens a new ride for the rider, status REQUESTED, no driver yet.
func (s *Service) Create(ctx context.Context, riderID, pickup, drop string) (*ride.Ride, error) {
	rd := &ride.Ride{
		RiderID:        riderID,
		PickupLocation: pickup,
		DropLocation:   drop,
		Status:         ride.StatusRequested,
	}

	if err := s.rides.Create(ctx, rd); err != nil {
		return nil, apperrors.Internal("Failed to create ride", err)
	}

	s.logger.Info("Ride requested",
		logger.String("ride_id", rd.ID),
		logger.String("rider_id", rd.RiderID),
	)

	return rd, nil
}

// ListPending returns all rides still waiting for a driver.
func (s *Service) ListPending(ctx context.Context) ([]*ride.Ride, error) {
	list, err := s.rides.ListByStatus(ctx, ride.StatusRequested)
	if err != nil {
		return nil, apperrors.Internal("Failed to list pending rides", err)
	}
	return list, nil
}

// Accept assigns the driver to a REQUESTED ride and moves it to ACCEPTED.
func (s *Service) Accept(ctx context.Context, rideID, driverID string) (*ride.Ride, error) {
	rd, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, ride.ErrRideNotFound) {
			return nil, apperrors.NotFound("Ride not found", err)
		}
		return nil, apperrors.Internal("Failed to load ride", err)
	}

	if !rd.CanAccept() {
		return nil, apperrors.InvalidState("Ride is already accepted or completed", nil)
	}

	rd.DriverID = &driverID
	rd.Status = ride.StatusAccepted

	if err := s.rides.Update(ctx, rd); err != nil {
		return nil, apperrors.Internal("Failed to update ride", err)
	}

	s.logger.Info("Ride accepted",
		logger.String("ride_id", rd.ID),
		logger.String("driver_id", driverID),
	)

	return rd, nil
}

// Complete moves an ACCEPTED ride to COMPLETED.
func (s *Service) Complete(ctx context.Context, rideID string) (*ride.Ride, error) {
	rd, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, ride.ErrRideNotFound) {
			return nil, apperrors.NotFound("Ride not found", err)
		}
		return nil, apperrors.Internal("Failed to load ride", err)
	}

	if !rd.CanComplete() {
		return nil, apperrors.InvalidState("Ride must be ACCEPTED before completing", nil)
	}

	rd.Status = ride.StatusCompleted

	if err := s.rides.Update(ctx, rd); err != nil {
		return nil, apperrors.Internal("Failed to update ride", err)
	}

	s.logger.Info("Ride completed", logger.String("ride_id", rd.ID))

	return rd, nil
}

// ListForRider returns every ride the rider has requested, any status.
func (s *Service) ListForRider(ctx context.Context, riderID string) ([]*ride.Ride, error) {
	list, err := s.rides.ListByRider(ctx, riderID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rides", err)
	}
	return list, nil
}
