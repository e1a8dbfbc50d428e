package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/service"
)

type countingCounter struct{ n int }

func (c *countingCounter) Inc() { c.n++ }

var defaults = service.AnalyticsDefaults{MinCount: "2", TopN: "3"}

func dashboardTrips() []domain.Trip {
	at := func(m time.Month) time.Time { return time.Date(2024, m, 5, 0, 0, 0, 0, time.UTC) }
	return []domain.Trip{
		{StartLocation: "A", EndLocation: "B", Distance: 5, StartTime: at(time.January), Status: domain.TripCompleted},
		{StartLocation: "A", EndLocation: "B", Distance: 7, StartTime: at(time.February), Status: domain.TripScheduled},
		{StartLocation: "C", EndLocation: "D", Distance: 3, StartTime: at(time.January), Status: domain.TripCompleted},
	}
}

func newAnalytics(list func(context.Context) ([]domain.Trip, error)) (*service.AnalyticsService, *countingCounter, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &countingCounter{}
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	svc := service.NewAnalyticsService(&mockTripRepo{list: list}, defaults, logger, c)
	return svc, c, &buf
}

func okTrips(_ context.Context) ([]domain.Trip, error) { return dashboardTrips(), nil }

func failTrips(_ context.Context) ([]domain.Trip, error) {
	return nil, errors.New("connection refused")
}

func TestAnalyticsService_TripAnalytics_UsesDefaults(t *testing.T) {
	svc, c, _ := newAnalytics(okTrips)

	got := svc.TripAnalytics(context.Background(), domain.AnalyticsFilter{})

	assert.False(t, got.Degraded)
	assert.Equal(t, 3, got.TripCount)
	assert.Equal(t, []domain.RouteCount{{Route: "A → B", Count: 2}}, got.Routes)
	assert.Equal(t, 2, got.Statuses[0].Count)
	assert.Equal(t, 1, got.Statuses[1].Count)
	assert.Equal(t, []string{"1/24", "2/24"}, got.Monthly.Labels)
	assert.Equal(t, []float64{4, 7}, got.Monthly.Averages)
	assert.Len(t, got.LongestTrips, 3)
	assert.Zero(t, c.n)
}

func TestAnalyticsService_TripAnalytics_LenientFilters(t *testing.T) {
	svc, _, _ := newAnalytics(okTrips)

	got := svc.TripAnalytics(context.Background(), domain.AnalyticsFilter{
		MinCount: ptr("lots"), // non-numeric → 0 → every route
		TopN:     ptr(""),     // cleared box → 0 → no trips
	})

	assert.Len(t, got.Routes, 2)
	assert.Empty(t, got.LongestTrips)
}

func TestAnalyticsService_TripAnalytics_FetchFailureDegrades(t *testing.T) {
	svc, c, logs := newAnalytics(failTrips)

	got := svc.TripAnalytics(context.Background(), domain.AnalyticsFilter{})

	assert.True(t, got.Degraded)
	assert.Empty(t, got.Routes)
	assert.Empty(t, got.Statuses)
	assert.Empty(t, got.Monthly.Labels)
	assert.Empty(t, got.LongestTrips)
	assert.Equal(t, 1, c.n)
	assert.Contains(t, logs.String(), "connection refused")
	assert.Contains(t, logs.String(), `"level":"WARN"`)
}

func TestAnalyticsService_TripAnalytics_NonFiniteDistanceDegrades(t *testing.T) {
	for _, km := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		svc, c, logs := newAnalytics(func(_ context.Context) ([]domain.Trip, error) {
			trips := dashboardTrips()
			trips[2].Distance = km
			return trips, nil
		})

		got := svc.TripAnalytics(context.Background(), domain.AnalyticsFilter{})

		assert.True(t, got.Degraded, "distance %v", km)
		assert.Empty(t, got.Monthly.Averages, "distance %v", km)
		assert.Empty(t, got.LongestTrips, "distance %v", km)
		assert.Equal(t, 1, c.n, "distance %v", km)
		assert.Contains(t, logs.String(), "malformed input", "distance %v", km)
	}
}

func TestAnalyticsService_MalformedRowFromRepoDegrades(t *testing.T) {
	svc, c, logs := newAnalytics(func(_ context.Context) ([]domain.Trip, error) {
		return nil, fmt.Errorf("repo.TripRepo.List: scan: %w: trip distance +Inf", domain.ErrMalformedInput)
	})

	monthly, ok := svc.MonthlyAverageDistance(context.Background())

	assert.False(t, ok)
	assert.Empty(t, monthly.Averages)
	assert.Equal(t, 1, c.n)
	assert.Contains(t, logs.String(), "trip distance +Inf")
}

func TestAnalyticsService_IndividualAggregates(t *testing.T) {
	svc, _, _ := newAnalytics(okTrips)
	ctx := context.Background()

	routes, ok := svc.RouteFrequencies(ctx, domain.AnalyticsFilter{MinCount: ptr("1")})
	require.True(t, ok)
	assert.Len(t, routes, 2)

	statuses, ok := svc.StatusDistribution(ctx)
	require.True(t, ok)
	assert.Len(t, statuses, 2)

	monthly, ok := svc.MonthlyAverageDistance(ctx)
	require.True(t, ok)
	assert.Equal(t, []float64{4, 7}, monthly.Averages)

	top, ok := svc.TopRoutesByDistance(ctx, domain.AnalyticsFilter{TopN: ptr("1")})
	require.True(t, ok)
	require.Len(t, top, 1)
	assert.Equal(t, 7.0, top[0].Distance)
}

func TestAnalyticsService_IndividualAggregates_FetchFailure(t *testing.T) {
	svc, c, _ := newAnalytics(failTrips)
	ctx := context.Background()

	routes, ok := svc.RouteFrequencies(ctx, domain.AnalyticsFilter{})
	assert.False(t, ok)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)

	statuses, ok := svc.StatusDistribution(ctx)
	assert.False(t, ok)
	assert.Empty(t, statuses)

	monthly, ok := svc.MonthlyAverageDistance(ctx)
	assert.False(t, ok)
	assert.Empty(t, monthly.Labels)

	top, ok := svc.TopRoutesByDistance(ctx, domain.AnalyticsFilter{})
	assert.False(t, ok)
	assert.Empty(t, top)

	assert.Equal(t, 4, c.n)
}

func TestAnalyticsService_NilLoggerAndCounter(t *testing.T) {
	svc := service.NewAnalyticsService(&mockTripRepo{list: failTrips}, defaults, nil, nil)

	got := svc.TripAnalytics(context.Background(), domain.AnalyticsFilter{})

	assert.True(t, got.Degraded)
}
