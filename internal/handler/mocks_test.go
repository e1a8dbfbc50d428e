package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/handler"
	"github.com/pkordes/fleet-analytics/internal/handler/gen"
)

// Each mock is a test double for one handler servicer interface.
// Set only the method fields your test needs.

type mockTripServicer struct {
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}

type mockAnalyticsServicer struct {
	tripAnalytics    func(ctx context.Context, f domain.AnalyticsFilter) domain.TripAnalytics
	routeFrequencies func(ctx context.Context, f domain.AnalyticsFilter) ([]domain.RouteCount, bool)
	statuses         func(ctx context.Context) ([]domain.StatusCount, bool)
	monthly          func(ctx context.Context) (domain.MonthlySeries, bool)
	topRoutes        func(ctx context.Context, f domain.AnalyticsFilter) ([]domain.Trip, bool)
}

func (m *mockAnalyticsServicer) TripAnalytics(ctx context.Context, f domain.AnalyticsFilter) domain.TripAnalytics {
	return m.tripAnalytics(ctx, f)
}
func (m *mockAnalyticsServicer) RouteFrequencies(ctx context.Context, f domain.AnalyticsFilter) ([]domain.RouteCount, bool) {
	return m.routeFrequencies(ctx, f)
}
func (m *mockAnalyticsServicer) StatusDistribution(ctx context.Context) ([]domain.StatusCount, bool) {
	return m.statuses(ctx)
}
func (m *mockAnalyticsServicer) MonthlyAverageDistance(ctx context.Context) (domain.MonthlySeries, bool) {
	return m.monthly(ctx)
}
func (m *mockAnalyticsServicer) TopRoutesByDistance(ctx context.Context, f domain.AnalyticsFilter) ([]domain.Trip, bool) {
	return m.topRoutes(ctx, f)
}

type mockTruckServicer struct {
	create         func(ctx context.Context, draft domain.TruckDraft) (domain.Truck, error)
	list           func(ctx context.Context) ([]domain.Truck, error)
	getByTruckerID func(ctx context.Context, truckerID int64) (domain.Truck, error)
}

func (m *mockTruckServicer) Create(ctx context.Context, d domain.TruckDraft) (domain.Truck, error) {
	return m.create(ctx, d)
}
func (m *mockTruckServicer) List(ctx context.Context) ([]domain.Truck, error) {
	return m.list(ctx)
}
func (m *mockTruckServicer) GetByTruckerID(ctx context.Context, truckerID int64) (domain.Truck, error) {
	return m.getByTruckerID(ctx, truckerID)
}

type mockTruckerServicer struct {
	list            func(ctx context.Context) ([]domain.Trucker, error)
	listUnassigned  func(ctx context.Context) ([]domain.Trucker, error)
	listAssignments func(ctx context.Context) ([]domain.Assignment, error)
}

func (m *mockTruckerServicer) List(ctx context.Context) ([]domain.Trucker, error) {
	return m.list(ctx)
}
func (m *mockTruckerServicer) ListUnassigned(ctx context.Context) ([]domain.Trucker, error) {
	return m.listUnassigned(ctx)
}
func (m *mockTruckerServicer) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	return m.listAssignments(ctx)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.TripServicer      = (*mockTripServicer)(nil)
	_ handler.AnalyticsServicer = (*mockAnalyticsServicer)(nil)
	_ handler.TruckServicer     = (*mockTruckServicer)(nil)
	_ handler.TruckerServicer   = (*mockTruckerServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server into the generated chi router with the same
// error handlers main.go installs.
func newHTTPHandler(srv *handler.Server) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler,
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

func ptr[T any](v T) *T { return &v }
