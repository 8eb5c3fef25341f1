package rides

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideshare/backend/internal/domain/ride"
	"github.com/rideshare/backend/pkg/apperrors"
	"github.com/rideshare/backend/pkg/logger"
)

// memRideRepo is an in-memory ride.Repository for tests.
type memRideRepo struct {
	byID map[string]*ride.Ride
}

func newMemRideRepo() *memRideRepo {
	return &memRideRepo{byID: make(map[string]*ride.Ride)}
}

func (m *memRideRepo) Create(_ context.Context, r *ride.Ride) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memRideRepo) GetByID(_ context.Context, id string) (*ride.Ride, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, ride.ErrRideNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRideRepo) Update(_ context.Context, r *ride.Ride) error {
	if _, ok := m.byID[r.ID]; !ok {
		return ride.ErrRideNotFound
	}
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memRideRepo) ListByStatus(_ context.Context, status ride.Status) ([]*ride.Ride, error) {
	var out []*ride.Ride
	for _, r := range m.byID {
		if r.Status == status {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRideRepo) ListByRider(_ context.Context, riderID string) ([]*ride.Ride, error) {
	var out []*ride.Ride
	for _, r := range m.byID {
		if r.RiderID == riderID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)
	return NewService(newMemRideRepo(), log)
}

func TestCreate_StartsRequestedWithoutDriver(t *testing.T) {
	svc := newTestService(t)

	rd, err := svc.Create(context.Background(), "alice", "A", "B")
	require.NoError(t, err)

	assert.NotEmpty(t, rd.ID)
	assert.Equal(t, "alice", rd.RiderID)
	assert.Equal(t, ride.StatusRequested, rd.Status)
	assert.Nil(t, rd.DriverID)
	assert.Equal(t, "A", rd.PickupLocation)
	assert.Equal(t, "B", rd.DropLocation)
}

func TestAccept_TransitionsToAccepted(t *testing.T) {
	svc := newTestService(t)

	rd, err := svc.Create(context.Background(), "alice", "A", "B")
	require.NoError(t, err)

	accepted, err := svc.Accept(context.Background(), rd.ID, "bob")
	require.NoError(t, err)

	assert.Equal(t, ride.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.DriverID)
	assert.Equal(t, "bob", *accepted.DriverID)
}

func TestAccept_SecondAcceptFailsWithInvalidState(t *testing.T) {
	svc := newTestService(t)

	rd, err := svc.Create(context.Background(), "alice", "A", "B")
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), rd.ID, "bob")
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), rd.ID, "carol")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INVALID_STATE"))

	// First driver keeps the ride.
	current, err := svc.rides.GetByID(context.Background(), rd.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", *current.DriverID)
}

func TestAccept_UnknownRideNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Accept(context.Background(), "missing", "bob")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestComplete_Lifecycle(t *testing.T) {
	svc := newTestService(t)

	rd, err := svc.Create(context.Background(), "alice", "A", "B")
	require.NoError(t, err)

	// Completing a REQUESTED ride is an illegal transition.
	_, err = svc.Complete(context.Background(), rd.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INVALID_STATE"))

	_, err = svc.Accept(context.Background(), rd.ID, "bob")
	require.NoError(t, err)

	done, err := svc.Complete(context.Background(), rd.ID)
	require.NoError(t, err)
	assert.Equal(t, ride.StatusCompleted, done.Status)

	// No reverse or repeated transitions.
	_, err = svc.Complete(context.Background(), rd.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INVALID_STATE"))
}

func TestComplete_UnknownRideNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Complete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestListPending_ReturnsOnlyRequested(t *testing.T) {
	svc := newTestService(t)

	r1, err := svc.Create(context.Background(), "alice", "A", "B")
	require.NoError(t, err)
	r2, err := svc.Create(context.Background(), "carol", "C", "D")
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), r2.ID, "bob")
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, r1.ID, pending[0].ID)
}

func TestListForRider_FiltersByRider(t *testing.T) {
	svc := newTestService(t)

	r1, err := svc.Create(context.Background(), "alice", "A", "B")
	require.NoError(t, err)
	r2, err := svc.Create(context.Background(), "alice", "C", "D")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "carol", "E", "F")
	require.NoError(t, err)

	// Status does not affect membership.
	_, err = svc.Accept(context.Background(), r2.ID, "bob")
	require.NoError(t, err)

	mine, err := svc.ListForRider(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	ids := []string{mine[0].ID, mine[1].ID}
	assert.ElementsMatch(t, []string{r1.ID, r2.ID}, ids)
}
