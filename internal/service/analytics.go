package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/pkordes/fleet-analytics/internal/analytics"
	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/repo"
)

// Counter is the slice of a metrics counter the analytics service needs.
// prometheus.Counter satisfies it.
type Counter interface {
	Inc()
}

// AnalyticsDefaults are the filter values used when a caller omits them.
type AnalyticsDefaults struct {
	MinCount string
	TopN     string
}

// AnalyticsService fetches the full trip set and derives dashboard aggregates.
//
// A failed fetch never surfaces as an error: it is logged, counted, and every
// aggregate is reset to empty with the result marked degraded.
type AnalyticsService struct {
	trips     repo.TripRepo
	defaults  AnalyticsDefaults
	log       *slog.Logger
	fallbacks Counter
}

// NewAnalyticsService constructs an AnalyticsService. log and fallbacks may be nil.
func NewAnalyticsService(trips repo.TripRepo, defaults AnalyticsDefaults, log *slog.Logger, fallbacks Counter) *AnalyticsService {
	if log == nil {
		log = slog.Default()
	}
	return &AnalyticsService{trips: trips, defaults: defaults, log: log, fallbacks: fallbacks}
}

// TripAnalytics computes every dashboard aggregate from one snapshot.
func (s *AnalyticsService) TripAnalytics(ctx context.Context, f domain.AnalyticsFilter) domain.TripAnalytics {
	trips, ok := s.snapshot(ctx)
	if !ok {
		return analytics.Empty()
	}
	return analytics.Summarize(trips, s.minCount(f), s.topN(f))
}

// RouteFrequencies returns route counts filtered by the minimum count.
// The boolean is false when the trip set could not be fetched.
func (s *AnalyticsService) RouteFrequencies(ctx context.Context, f domain.AnalyticsFilter) ([]domain.RouteCount, bool) {
	trips, ok := s.snapshot(ctx)
	if !ok {
		return []domain.RouteCount{}, false
	}
	return analytics.RouteFrequencies(trips, s.minCount(f)), true
}

// StatusDistribution returns the completed/scheduled tally, or an empty
// slice when the trip set could not be fetched.
func (s *AnalyticsService) StatusDistribution(ctx context.Context) ([]domain.StatusCount, bool) {
	trips, ok := s.snapshot(ctx)
	if !ok {
		return []domain.StatusCount{}, false
	}
	return analytics.StatusDistribution(trips), true
}

// MonthlyAverageDistance returns the per-month average distance series.
func (s *AnalyticsService) MonthlyAverageDistance(ctx context.Context) (domain.MonthlySeries, bool) {
	trips, ok := s.snapshot(ctx)
	if !ok {
		return analytics.Empty().Monthly, false
	}
	return analytics.MonthlyAverageDistance(trips), true
}

// TopRoutesByDistance returns the longest trips.
func (s *AnalyticsService) TopRoutesByDistance(ctx context.Context, f domain.AnalyticsFilter) ([]domain.Trip, bool) {
	trips, ok := s.snapshot(ctx)
	if !ok {
		return []domain.Trip{}, false
	}
	return analytics.TopRoutesByDistance(trips, s.topN(f)), true
}

// snapshot fetches all trips. On failure it logs, counts the fallback, and
// reports ok=false so callers can serve empty aggregates.
func (s *AnalyticsService) snapshot(ctx context.Context) ([]domain.Trip, bool) {
	trips, err := s.trips.List(ctx)
	if err == nil {
		err = checkDistances(trips)
	}
	if err != nil {
		s.log.WarnContext(ctx, "trip fetch failed; serving empty analytics", "error", err)
		if s.fallbacks != nil {
			s.fallbacks.Inc()
		}
		return nil, false
	}
	return trips, true
}

// checkDistances rejects a snapshot holding a NaN or infinite distance.
// Such a value cannot be encoded as JSON, so the whole snapshot is treated
// as malformed rather than producing a broken response.
func checkDistances(trips []domain.Trip) error {
	i := slices.IndexFunc(trips, func(t domain.Trip) bool {
		return math.IsNaN(t.Distance) || math.IsInf(t.Distance, 0)
	})
	if i < 0 {
		return nil
	}
	return fmt.Errorf("%w: trip %s has distance %v", domain.ErrMalformedInput, trips[i].ID, trips[i].Distance)
}

func (s *AnalyticsService) minCount(f domain.AnalyticsFilter) int {
	return analytics.ParseCount(valueOr(f.MinCount, s.defaults.MinCount))
}

func (s *AnalyticsService) topN(f domain.AnalyticsFilter) int {
	return analytics.ParseCount(valueOr(f.TopN, s.defaults.TopN))
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
