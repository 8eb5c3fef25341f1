package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rideshare/backend/internal/domain/ride"
)

// RideRepository is a PostgreSQL implementation of ride.Repository.
//
// Updates are plain overwrites with no conditional WHERE on status; the
// read-check-write sequence in the ride service is therefore not atomic
// and concurrent writers race, last write wins.
type RideRepository struct {
	db *sql.DB
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{db: db}
}

var _ ride.Repository = (*RideRepository)(nil)

// Create persists a new ride, assigning its ID.
func (r *RideRepository) Create(ctx context.Context, rd *ride.Ride) error {
	if rd.ID == "" {
		rd.ID = uuid.NewString()
	}

	query := `
		INSERT INTO rides (id, rider_id, driver_id, pickup_location, drop_location, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	var driverID sql.NullString
	if rd.DriverID != nil {
		driverID = sql.NullString{String: *rd.DriverID, Valid: true}
	}

	return r.db.QueryRowContext(ctx, query,
		rd.ID,
		rd.RiderID,
		driverID,
		rd.PickupLocation,
		rd.DropLocation,
		string(rd.Status),
	).Scan(&rd.CreatedAt, &rd.UpdatedAt)
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*ride.Ride, error) {
	query := `
		SELECT id, rider_id, driver_id, pickup_location, drop_location, status, created_at, updated_at
		FROM rides WHERE id = $1
	`

	rd, err := scanRide(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ride.ErrRideNotFound
		}
		return nil, err
	}

	return rd, nil
}

// Update overwrites the stored ride.
func (r *RideRepository) Update(ctx context.Context, rd *ride.Ride) error {
	query := `
		UPDATE rides
		SET driver_id = $2, pickup_location = $3, drop_location = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	var driverID sql.NullString
	if rd.DriverID != nil {
		driverID = sql.NullString{String: *rd.DriverID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		rd.ID,
		driverID,
		rd.PickupLocation,
		rd.DropLocation,
		string(rd.Status),
	).Scan(&rd.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ride.ErrRideNotFound
		}
		return err
	}

	return nil
}

// ListByStatus retrieves all rides with the given status. No explicit
// ordering is imposed; callers treat the result as unordered.
func (r *RideRepository) ListByStatus(ctx context.Context, status ride.Status) ([]*ride.Ride, error) {
	query := `
		SELECT id, rider_id, driver_id, pickup_location, drop_location, status, created_at, updated_at
		FROM rides WHERE status = $1
	`

	return r.queryRides(ctx, query, string(status))
}

// ListByRider retrieves all rides requested by the given rider, any status.
func (r *RideRepository) ListByRider(ctx context.Context, riderID string) ([]*ride.Ride, error) {
	query := `
		SELECT id, rider_id, driver_id, pickup_location, drop_location, status, created_at, updated_at
		FROM rides WHERE rider_id = $1
	`

	return r.queryRides(ctx, query, riderID)
}

func (r *RideRepository) queryRides(ctx context.Context, query string, arg any) ([]*ride.Ride, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]*ride.Ride, 0)
	for rows.Next() {
		rd, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, rd)
	}

	return rides, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRide maps one row onto a ride, column by column. driver_id is NULL
// exactly while the ride is still REQUESTED.
func scanRide(row rowScanner) (*ride.Ride, error) {
	var rd ride.Ride
	var driverID sql.NullString
	var status string

	err := row.Scan(
		&rd.ID,
		&rd.RiderID,
		&driverID,
		&rd.PickupLocation,
		&rd.DropLocation,
		&status,
		&rd.CreatedAt,
		&rd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		rd.DriverID = &driverID.String
	}
	rd.Status = ride.Status(status)

	return &rd, nil
}
