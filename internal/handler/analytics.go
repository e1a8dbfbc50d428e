package handler

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/handler/gen"
)

// GetTripAnalytics implements GET /analytics/trips.
// Like every /analytics endpoint it never returns an error status: when trips
// cannot be fetched the body carries empty aggregates and degraded=true.
// Use ?format=msgpack to receive a MessagePack body with the same keys as the
// JSON one; any other format value selects JSON.
func (s *Server) GetTripAnalytics(ctx context.Context, req gen.GetTripAnalyticsRequestObject) (gen.GetTripAnalyticsResponseObject, error) {
	result := s.analytics.TripAnalytics(ctx, domain.AnalyticsFilter{
		MinCount: req.Params.MinCount,
		TopN:     req.Params.TopN,
	})
	body := analyticsToResponse(result)

	if req.Params.Format != nil && *req.Params.Format == gen.Msgpack {
		return buildMsgpackResponse(body)
	}
	return gen.GetTripAnalytics200JSONResponse(body), nil
}

// GetRouteFrequencies implements GET /analytics/routes.
func (s *Server) GetRouteFrequencies(ctx context.Context, req gen.GetRouteFrequenciesRequestObject) (gen.GetRouteFrequenciesResponseObject, error) {
	routes, ok := s.analytics.RouteFrequencies(ctx, domain.AnalyticsFilter{MinCount: req.Params.MinCount})
	return gen.GetRouteFrequencies200JSONResponse{
		Routes:   routesToResponse(routes),
		Degraded: !ok,
	}, nil
}

// GetStatusDistribution implements GET /analytics/status.
func (s *Server) GetStatusDistribution(ctx context.Context, _ gen.GetStatusDistributionRequestObject) (gen.GetStatusDistributionResponseObject, error) {
	statuses, ok := s.analytics.StatusDistribution(ctx)
	return gen.GetStatusDistribution200JSONResponse{
		Statuses: statusesToResponse(statuses),
		Degraded: !ok,
	}, nil
}

// GetMonthlyDistance implements GET /analytics/monthly-distance.
func (s *Server) GetMonthlyDistance(ctx context.Context, _ gen.GetMonthlyDistanceRequestObject) (gen.GetMonthlyDistanceResponseObject, error) {
	series, ok := s.analytics.MonthlyAverageDistance(ctx)
	monthly := monthlyToResponse(series)
	return gen.GetMonthlyDistance200JSONResponse{
		Labels:   monthly.Labels,
		Averages: monthly.Averages,
		Degraded: !ok,
	}, nil
}

// GetTopRoutes implements GET /analytics/top-routes.
func (s *Server) GetTopRoutes(ctx context.Context, req gen.GetTopRoutesRequestObject) (gen.GetTopRoutesResponseObject, error) {
	trips, ok := s.analytics.TopRoutesByDistance(ctx, domain.AnalyticsFilter{TopN: req.Params.N})
	return gen.GetTopRoutes200JSONResponse{
		Trips:    tripsToResponse(trips),
		Degraded: !ok,
	}, nil
}

// buildMsgpackResponse encodes the dashboard body and wraps it in the
// streaming response type. Keys follow the json struct tags.
func buildMsgpackResponse(body gen.TripAnalytics) (gen.GetTripAnalytics200ApplicationmsgpackResponse, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(body); err != nil {
		return gen.GetTripAnalytics200ApplicationmsgpackResponse{}, fmt.Errorf("handler.buildMsgpackResponse: %w", err)
	}

	return gen.GetTripAnalytics200ApplicationmsgpackResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}, nil
}

func analyticsToResponse(a domain.TripAnalytics) gen.TripAnalytics {
	return gen.TripAnalytics{
		Routes:       routesToResponse(a.Routes),
		Statuses:     statusesToResponse(a.Statuses),
		Monthly:      monthlyToResponse(a.Monthly),
		LongestTrips: tripsToResponse(a.LongestTrips),
		TripCount:    a.TripCount,
		Degraded:     a.Degraded,
	}
}

func routesToResponse(routes []domain.RouteCount) []gen.RouteCount {
	out := make([]gen.RouteCount, len(routes))
	for i, r := range routes {
		out[i] = gen.RouteCount{Route: r.Route, Count: r.Count}
	}
	return out
}

func statusesToResponse(statuses []domain.StatusCount) []gen.StatusCount {
	out := make([]gen.StatusCount, len(statuses))
	for i, st := range statuses {
		out[i] = gen.StatusCount{Name: st.Name, Count: st.Count, Color: st.Color}
	}
	return out
}

// monthlyToResponse copies the series so empty months encode as [] not null.
func monthlyToResponse(m domain.MonthlySeries) gen.MonthlySeries {
	return gen.MonthlySeries{
		Labels:   append(make([]string, 0, len(m.Labels)), m.Labels...),
		Averages: append(make([]float64, 0, len(m.Averages)), m.Averages...),
	}
}
