package service

import (
	"context"
	"fmt"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/repo"
)

// TruckerService answers questions about truckers and the trucks pointing at them.
type TruckerService struct {
	truckers repo.TruckerRepo
	trucks   repo.TruckRepo
}

// NewTruckerService constructs a TruckerService backed by the provided repos.
func NewTruckerService(truckers repo.TruckerRepo, trucks repo.TruckRepo) *TruckerService {
	return &TruckerService{truckers: truckers, trucks: trucks}
}

// List returns every trucker ordered by trucker_id.
func (s *TruckerService) List(ctx context.Context) ([]domain.Trucker, error) {
	truckers, err := s.truckers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TruckerService.List: %w", err)
	}
	if truckers == nil {
		return []domain.Trucker{}, nil
	}
	return truckers, nil
}

// ListUnassigned returns the truckers no truck is assigned to.
func (s *TruckerService) ListUnassigned(ctx context.Context) ([]domain.Trucker, error) {
	truckers, trucks, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TruckerService.ListUnassigned: %w", err)
	}
	return UnassignedTruckers(truckers, trucks), nil
}

// ListAssignments returns every truck joined with its assigned trucker.
func (s *TruckerService) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	truckers, trucks, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TruckerService.ListAssignments: %w", err)
	}
	return JoinAssignments(trucks, truckers), nil
}

func (s *TruckerService) snapshot(ctx context.Context) ([]domain.Trucker, []domain.Truck, error) {
	truckers, err := s.truckers.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	trucks, err := s.trucks.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return truckers, trucks, nil
}

// JoinAssignments pairs each truck with the trucker whose TruckerID equals the
// truck's AssignedTruckerID. The join is best-effort: a reference to a trucker
// that does not exist yields an Assignment with a nil Trucker, never an error.
// Output order follows trucks.
func JoinAssignments(trucks []domain.Truck, truckers []domain.Trucker) []domain.Assignment {
	byID := make(map[int64]domain.Trucker, len(truckers))
	for _, tr := range truckers {
		if _, dup := byID[tr.TruckerID]; !dup {
			byID[tr.TruckerID] = tr
		}
	}

	out := make([]domain.Assignment, 0, len(trucks))
	for _, truck := range trucks {
		a := domain.Assignment{Truck: truck}
		if truck.AssignedTruckerID != nil {
			if tr, ok := byID[*truck.AssignedTruckerID]; ok {
				a.Trucker = &tr
			}
		}
		out = append(out, a)
	}
	return out
}

// UnassignedTruckers returns, in input order, the truckers that no truck
// references through AssignedTruckerID.
func UnassignedTruckers(truckers []domain.Trucker, trucks []domain.Truck) []domain.Trucker {
	assigned := make(map[int64]struct{}, len(trucks))
	for _, truck := range trucks {
		if truck.AssignedTruckerID != nil {
			assigned[*truck.AssignedTruckerID] = struct{}{}
		}
	}

	out := make([]domain.Trucker, 0, len(truckers))
	for _, tr := range truckers {
		if _, ok := assigned[tr.TruckerID]; !ok {
			out = append(out, tr)
		}
	}
	return out
}
