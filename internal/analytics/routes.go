// Package analytics turns an in-memory snapshot of trips into the aggregates
// shown on the trip analytics dashboard.
//
// Every function is pure: it reads the slice it is given, never modifies it,
// and returns freshly allocated results. Empty input always yields empty
// (non-nil) output rather than an error.
package analytics

import (
	"cmp"
	"slices"

	"github.com/pkordes/fleet-analytics/internal/domain"
)

// RouteFrequencies counts trips per directional route and returns the routes
// ordered by count descending. Routes with equal counts keep the order in
// which they were first seen. Routes seen fewer than minCount times are dropped.
func RouteFrequencies(trips []domain.Trip, minCount int) []domain.RouteCount {
	index := make(map[string]int, len(trips))
	counts := make([]domain.RouteCount, 0)

	for _, t := range trips {
		route := t.Route()
		i, ok := index[route]
		if !ok {
			i = len(counts)
			index[route] = i
			counts = append(counts, domain.RouteCount{Route: route})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b domain.RouteCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	out := make([]domain.RouteCount, 0, len(counts))
	for _, rc := range counts {
		if rc.Count >= minCount {
			out = append(out, rc)
		}
	}
	return out
}

// TopRoutesByDistance returns the n longest trips, longest first.
// Trips are not deduplicated by route, so one route can appear several times.
// The input slice is left in its original order.
func TopRoutesByDistance(trips []domain.Trip, n int) []domain.Trip {
	if n <= 0 {
		return []domain.Trip{}
	}
	sorted := slices.Clone(trips)
	slices.SortStableFunc(sorted, func(a, b domain.Trip) int {
		return cmp.Compare(b.Distance, a.Distance)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return slices.Clip(sorted[:n])
}
