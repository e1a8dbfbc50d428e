package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/repo"
	"github.com/pkordes/fleet-analytics/testutil"
)

func newTestTruckRepo(t *testing.T) repo.TruckRepo {
	t.Helper()
	return repo.NewTruckRepo(testutil.NewTx(t))
}

func truckFixture(id int64) domain.Truck {
	return domain.Truck{
		TruckID:       id,
		LicensePlate:  "AB-123",
		ChassisNumber: "CH-0001",
		Capacity:      18.5,
	}
}

func ptr[T any](v T) *T { return &v }

func TestTruckRepo_Create(t *testing.T) {
	r := newTestTruckRepo(t)
	input := truckFixture(1)
	input.AssignedTruckerID = ptr(int64(42))

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TruckID)
	assert.Equal(t, "AB-123", got.LicensePlate)
	assert.Equal(t, "CH-0001", got.ChassisNumber)
	assert.Equal(t, 18.5, got.Capacity)
	require.NotNil(t, got.AssignedTruckerID)
	assert.Equal(t, int64(42), *got.AssignedTruckerID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTruckRepo_Create_Unassigned(t *testing.T) {
	r := newTestTruckRepo(t)

	got, err := r.Create(context.Background(), truckFixture(1))

	require.NoError(t, err)
	assert.Nil(t, got.AssignedTruckerID)
}

func TestTruckRepo_Create_DuplicateIDConflicts(t *testing.T) {
	r := newTestTruckRepo(t)
	ctx := context.Background()
	_, err := r.Create(ctx, truckFixture(7))
	require.NoError(t, err)

	_, err = r.Create(ctx, truckFixture(7))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTruckRepo_MaxID(t *testing.T) {
	r := newTestTruckRepo(t)
	ctx := context.Background()

	empty, err := r.MaxID(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty, "MaxID on an empty table should be nil")

	for _, id := range []int64{3, 9, 4} {
		_, err := r.Create(ctx, truckFixture(id))
		require.NoError(t, err)
	}

	got, err := r.MaxID(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), *got)
}

func TestTruckRepo_List(t *testing.T) {
	r := newTestTruckRepo(t)
	ctx := context.Background()
	for _, id := range []int64{2, 1} {
		_, err := r.Create(ctx, truckFixture(id))
		require.NoError(t, err)
	}

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].TruckID)
	assert.Equal(t, int64(2), got[1].TruckID)
}

func TestTruckRepo_GetByTruckerID(t *testing.T) {
	r := newTestTruckRepo(t)
	ctx := context.Background()
	assigned := truckFixture(5)
	assigned.AssignedTruckerID = ptr(int64(11))
	_, err := r.Create(ctx, truckFixture(4))
	require.NoError(t, err)
	_, err = r.Create(ctx, assigned)
	require.NoError(t, err)

	got, err := r.GetByTruckerID(ctx, 11)

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.TruckID)
}

func TestTruckRepo_GetByTruckerID_NotFound(t *testing.T) {
	r := newTestTruckRepo(t)

	_, err := r.GetByTruckerID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
