package handler

import (
	"context"
	"errors"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/handler/gen"
)

// ListTrucks handles GET /trucks.
func (s *Server) ListTrucks(ctx context.Context, _ gen.ListTrucksRequestObject) (gen.ListTrucksResponseObject, error) {
	trucks, err := s.trucks.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListTrucks200JSONResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, truckToResponse(t))
	}
	return out, nil
}

// CreateTruck handles POST /trucks.
// The truck_id is assigned by the service; 409 means a concurrent request
// claimed the same ID and the client may retry.
func (s *Server) CreateTruck(ctx context.Context, req gen.CreateTruckRequestObject) (gen.CreateTruckResponseObject, error) {
	created, err := s.trucks.Create(ctx, requestToTruckDraft(req.Body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateTruck422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.CreateTruck409JSONResponse(conflictBody("truck_id already taken, retry the request")), nil
		}
		return nil, err
	}

	return gen.CreateTruck201JSONResponse(truckToResponse(created)), nil
}

// GetTruckByTrucker handles GET /trucks/by-trucker/{truckerId}.
func (s *Server) GetTruckByTrucker(ctx context.Context, req gen.GetTruckByTruckerRequestObject) (gen.GetTruckByTruckerResponseObject, error) {
	truck, err := s.trucks.GetByTruckerID(ctx, req.TruckerId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTruckByTrucker404JSONResponse(notFoundBody("no truck assigned to this trucker")), nil
		}
		return nil, err
	}

	return gen.GetTruckByTrucker200JSONResponse(truckToResponse(truck)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToTruckDraft copies the request body into an unvalidated draft.
// Absent fields stay zero so the service can report them together.
func requestToTruckDraft(body *gen.CreateTruckRequest) domain.TruckDraft {
	var d domain.TruckDraft
	if body == nil {
		return d
	}
	if body.LicensePlate != nil {
		d.LicensePlate = *body.LicensePlate
	}
	if body.ChassisNumber != nil {
		d.ChassisNumber = *body.ChassisNumber
	}
	d.Capacity = body.Capacity
	if body.AssignedTruckerId != nil {
		d.AssignedTruckerID = *body.AssignedTruckerId
	}
	return d
}

// truckToResponse converts a domain.Truck into the generated gen.Truck type.
func truckToResponse(t domain.Truck) gen.Truck {
	return gen.Truck{
		TruckId:           t.TruckID,
		LicensePlate:      t.LicensePlate,
		ChassisNumber:     t.ChassisNumber,
		Capacity:          t.Capacity,
		AssignedTruckerId: t.AssignedTruckerID,
		CreatedAt:         t.CreatedAt,
	}
}
