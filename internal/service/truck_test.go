package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/service"
)

func validDraft() domain.TruckDraft {
	return domain.TruckDraft{
		LicensePlate:  "AB-123",
		ChassisNumber: "C1",
		Capacity:      ptr(10.0),
	}
}

// echoTruckRepo reports currentMax as the table maximum and echoes creates back.
func echoTruckRepo(currentMax *int64) *mockTruckRepo {
	return &mockTruckRepo{
		maxID:  func(_ context.Context) (*int64, error) { return currentMax, nil },
		create: func(_ context.Context, t domain.Truck) (domain.Truck, error) { return t, nil },
	}
}

// ---- NextTruckID -----------------------------------------------------------

func TestNextTruckID(t *testing.T) {
	assert.Equal(t, int64(1), service.NextTruckID(nil))
	assert.Equal(t, int64(1), service.NextTruckID(ptr(int64(0))))
	assert.Equal(t, int64(8), service.NextTruckID(ptr(int64(7))))
}

// ---- ValidateTruckDraft ----------------------------------------------------

func TestValidateTruckDraft_Valid(t *testing.T) {
	assert.NoError(t, service.ValidateTruckDraft(validDraft()))
}

func TestValidateTruckDraft_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *domain.TruckDraft)
	}{
		{"empty license plate", func(d *domain.TruckDraft) { d.LicensePlate = "" }},
		{"whitespace license plate", func(d *domain.TruckDraft) { d.LicensePlate = "  " }},
		{"empty chassis number", func(d *domain.TruckDraft) { d.ChassisNumber = "" }},
		{"missing capacity", func(d *domain.TruckDraft) { d.Capacity = nil }},
		{"zero capacity", func(d *domain.TruckDraft) { d.Capacity = ptr(0.0) }},
		{"negative capacity", func(d *domain.TruckDraft) { d.Capacity = ptr(-3.0) }},
		{"string trucker id", func(d *domain.TruckDraft) { d.AssignedTruckerID = "12" }},
		{"true trucker id", func(d *domain.TruckDraft) { d.AssignedTruckerID = true }},
		{"fractional trucker id", func(d *domain.TruckDraft) { d.AssignedTruckerID = 1.5 }},
		{"object trucker id", func(d *domain.TruckDraft) { d.AssignedTruckerID = map[string]any{"id": 1} }},
		{"bad json number", func(d *domain.TruckDraft) { d.AssignedTruckerID = json.Number("x") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := service.ValidateTruckDraft(d)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestValidateTruckDraft_ListsEveryMissingField(t *testing.T) {
	err := service.ValidateTruckDraft(domain.TruckDraft{})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "license_plate, chassis_number, capacity")
}

func TestValidateTruckDraft_FalsyTruckerIDIsAbsent(t *testing.T) {
	for _, v := range []any{nil, 0.0, "", false, json.Number("0")} {
		d := validDraft()
		d.AssignedTruckerID = v
		assert.NoError(t, service.ValidateTruckDraft(d), "value %#v", v)
	}
}

// ---- Create ----------------------------------------------------------------

func TestTruckService_Create_FirstTruckGetsIDOne(t *testing.T) {
	created := &countingCounter{}
	svc := service.NewTruckService(echoTruckRepo(nil), created)

	got, err := svc.Create(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TruckID)
	assert.Equal(t, "AB-123", got.LicensePlate)
	assert.Equal(t, 10.0, got.Capacity)
	assert.Nil(t, got.AssignedTruckerID)
	assert.Equal(t, 1, created.n)
}

func TestTruckService_Create_IncrementsMax(t *testing.T) {
	svc := service.NewTruckService(echoTruckRepo(ptr(int64(41))), nil)
	d := validDraft()
	d.AssignedTruckerID = 7.0

	got, err := svc.Create(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.TruckID)
	require.NotNil(t, got.AssignedTruckerID)
	assert.Equal(t, int64(7), *got.AssignedTruckerID)
}

func TestTruckService_Create_ZeroTruckerIDStoredAsUnassigned(t *testing.T) {
	svc := service.NewTruckService(echoTruckRepo(nil), nil)
	d := validDraft()
	d.AssignedTruckerID = 0.0

	got, err := svc.Create(context.Background(), d)

	require.NoError(t, err)
	assert.Nil(t, got.AssignedTruckerID)
}

func TestTruckService_Create_ValidationSkipsRepo(t *testing.T) {
	// Nil function fields panic if called, so reaching the repo fails the test.
	svc := service.NewTruckService(&mockTruckRepo{}, nil)
	d := validDraft()
	d.LicensePlate = ""

	_, err := svc.Create(context.Background(), d)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTruckService_Create_ConflictPropagates(t *testing.T) {
	r := echoTruckRepo(ptr(int64(3)))
	r.create = func(_ context.Context, _ domain.Truck) (domain.Truck, error) {
		return domain.Truck{}, domain.ErrConflict
	}
	svc := service.NewTruckService(r, nil)

	_, err := svc.Create(context.Background(), validDraft())

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTruckService_Create_MaxIDError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTruckRepo{
		maxID: func(_ context.Context) (*int64, error) { return nil, repoErr },
	}
	svc := service.NewTruckService(r, nil)

	_, err := svc.Create(context.Background(), validDraft())

	assert.ErrorIs(t, err, repoErr)
}

// ---- lookups ---------------------------------------------------------------

func TestTruckService_List_Empty(t *testing.T) {
	r := &mockTruckRepo{
		list: func(_ context.Context) ([]domain.Truck, error) { return nil, nil },
	}
	svc := service.NewTruckService(r, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTruckService_GetByTruckerID_NotFound(t *testing.T) {
	r := &mockTruckRepo{
		getByTruckerID: func(_ context.Context, _ int64) (domain.Truck, error) {
			return domain.Truck{}, domain.ErrNotFound
		},
	}
	svc := service.NewTruckService(r, nil)

	_, err := svc.GetByTruckerID(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
