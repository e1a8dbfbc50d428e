package analytics

import "github.com/pkordes/fleet-analytics/internal/domain"

// Summarize runs every aggregate over the same snapshot of trips.
func Summarize(trips []domain.Trip, minCount, topN int) domain.TripAnalytics {
	return domain.TripAnalytics{
		Routes:       RouteFrequencies(trips, minCount),
		Statuses:     StatusDistribution(trips),
		Monthly:      MonthlyAverageDistance(trips),
		LongestTrips: TopRoutesByDistance(trips, topN),
		TripCount:    len(trips),
	}
}

// Empty is the result served when the trip set could not be fetched:
// every aggregate is reset rather than showing stale or partial data.
func Empty() domain.TripAnalytics {
	return domain.TripAnalytics{
		Routes:       []domain.RouteCount{},
		Statuses:     []domain.StatusCount{},
		Monthly:      domain.MonthlySeries{Labels: []string{}, Averages: []float64{}},
		LongestTrips: []domain.Trip{},
		Degraded:     true,
	}
}
