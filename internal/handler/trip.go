package handler

import (
	"context"
	"errors"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/handler/gen"
)

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total, err := s.trips.ListPaged(ctx, params)
	if err != nil {
		return nil, err
	}

	return gen.ListTrips200JSONResponse{
		Data: tripsToResponse(trips),
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:            t.ID,
		StartLocation: t.StartLocation,
		EndLocation:   t.EndLocation,
		StartTime:     t.StartTime,
		Distance:      t.Distance,
		Status:        string(t.Status),
	}
}

func tripsToResponse(trips []domain.Trip) []gen.Trip {
	out := make([]gen.Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}
