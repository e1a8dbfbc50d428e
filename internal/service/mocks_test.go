package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

type mockTripRepo struct {
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context) ([]domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}

type mockTruckRepo struct {
	create         func(ctx context.Context, truck domain.Truck) (domain.Truck, error)
	maxID          func(ctx context.Context) (*int64, error)
	list           func(ctx context.Context) ([]domain.Truck, error)
	getByTruckerID func(ctx context.Context, truckerID int64) (domain.Truck, error)
}

func (m *mockTruckRepo) Create(ctx context.Context, truck domain.Truck) (domain.Truck, error) {
	return m.create(ctx, truck)
}
func (m *mockTruckRepo) MaxID(ctx context.Context) (*int64, error) {
	return m.maxID(ctx)
}
func (m *mockTruckRepo) List(ctx context.Context) ([]domain.Truck, error) {
	return m.list(ctx)
}
func (m *mockTruckRepo) GetByTruckerID(ctx context.Context, truckerID int64) (domain.Truck, error) {
	return m.getByTruckerID(ctx, truckerID)
}

type mockTruckerRepo struct {
	list func(ctx context.Context) ([]domain.Trucker, error)
}

func (m *mockTruckerRepo) List(ctx context.Context) ([]domain.Trucker, error) {
	return m.list(ctx)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo    = (*mockTripRepo)(nil)
	_ repo.TruckRepo   = (*mockTruckRepo)(nil)
	_ repo.TruckerRepo = (*mockTruckerRepo)(nil)
)

func ptr[T any](v T) *T { return &v }
