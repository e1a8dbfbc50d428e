package handler

import (
	"context"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/handler/gen"
)

// ListTruckers handles GET /truckers.
func (s *Server) ListTruckers(ctx context.Context, _ gen.ListTruckersRequestObject) (gen.ListTruckersResponseObject, error) {
	truckers, err := s.truckers.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListTruckers200JSONResponse(truckersToResponse(truckers)), nil
}

// ListUnassignedTruckers handles GET /truckers/unassigned.
// An empty fleet of free truckers is a 200 with [], not a 404.
func (s *Server) ListUnassignedTruckers(ctx context.Context, _ gen.ListUnassignedTruckersRequestObject) (gen.ListUnassignedTruckersResponseObject, error) {
	truckers, err := s.truckers.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListUnassignedTruckers200JSONResponse(truckersToResponse(truckers)), nil
}

// ListTruckerAssignments handles GET /truckers/assignments.
func (s *Server) ListTruckerAssignments(ctx context.Context, _ gen.ListTruckerAssignmentsRequestObject) (gen.ListTruckerAssignmentsResponseObject, error) {
	assignments, err := s.truckers.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListTruckerAssignments200JSONResponse, 0, len(assignments))
	for _, a := range assignments {
		item := gen.Assignment{
			Truck:    truckToResponse(a.Truck),
			Orphaned: a.Orphaned(),
		}
		if a.Trucker != nil {
			tr := truckerToResponse(*a.Trucker)
			item.Trucker = &tr
		}
		out = append(out, item)
	}
	return out, nil
}

func truckerToResponse(t domain.Trucker) gen.Trucker {
	return gen.Trucker{TruckerId: t.TruckerID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func truckersToResponse(truckers []domain.Trucker) []gen.Trucker {
	out := make([]gen.Trucker, len(truckers))
	for i, t := range truckers {
		out[i] = truckerToResponse(t)
	}
	return out
}
