// Package handler implements the HTTP handlers for the fleet analytics API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=gen/oapi-codegen.yaml ../../spec/openapi.yaml

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/fleet-analytics/internal/domain"
)

// TripServicer defines the trip read operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

// AnalyticsServicer computes dashboard aggregates. None of its methods fail:
// a false boolean (or TripAnalytics.Degraded) marks an empty fallback result.
type AnalyticsServicer interface {
	TripAnalytics(ctx context.Context, f domain.AnalyticsFilter) domain.TripAnalytics
	RouteFrequencies(ctx context.Context, f domain.AnalyticsFilter) ([]domain.RouteCount, bool)
	StatusDistribution(ctx context.Context) ([]domain.StatusCount, bool)
	MonthlyAverageDistance(ctx context.Context) (domain.MonthlySeries, bool)
	TopRoutesByDistance(ctx context.Context, f domain.AnalyticsFilter) ([]domain.Trip, bool)
}

// TruckServicer defines the truck operations the handlers depend on.
type TruckServicer interface {
	Create(ctx context.Context, draft domain.TruckDraft) (domain.Truck, error)
	List(ctx context.Context) ([]domain.Truck, error)
	GetByTruckerID(ctx context.Context, truckerID int64) (domain.Truck, error)
}

// TruckerServicer defines the trucker operations the handlers depend on.
type TruckerServicer interface {
	List(ctx context.Context) ([]domain.Trucker, error)
	ListUnassigned(ctx context.Context) ([]domain.Trucker, error)
	ListAssignments(ctx context.Context) ([]domain.Assignment, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, ...).
type Server struct {
	trips     TripServicer
	analytics AnalyticsServicer
	trucks    TruckServicer
	truckers  TruckerServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, analytics AnalyticsServicer, trucks TruckServicer, truckers TruckerServicer) *Server {
	return &Server{trips: trips, analytics: analytics, trucks: trucks, truckers: truckers}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}
