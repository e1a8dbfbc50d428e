package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/fleet-analytics/internal/domain"
	"github.com/pkordes/fleet-analytics/internal/repo"
)

// TruckService implements truck creation and lookup.
type TruckService struct {
	repo    repo.TruckRepo
	created Counter
}

// NewTruckService constructs a TruckService backed by the provided TruckRepo.
// created, if non-nil, is incremented for every persisted truck.
func NewTruckService(r repo.TruckRepo, created Counter) *TruckService {
	return &TruckService{repo: r, created: created}
}

// NextTruckID returns the identifier for a new truck given the current
// maximum: 1 for an empty collection, otherwise currentMax+1.
//
// The result is only guaranteed unique against the maximum that was read.
// Two creations racing between the read and the insert compute the same ID;
// the truck_id primary key rejects the second insert with domain.ErrConflict.
func NextTruckID(currentMax *int64) int64 {
	if currentMax == nil {
		return 1
	}
	return *currentMax + 1
}

// ValidateTruckDraft checks the fields required to create a truck.
// It returns an error wrapping domain.ErrValidation when license plate,
// chassis number or capacity is missing, when capacity is negative, or when
// an assigned trucker ID is present but not a whole number.
//
// Capacity 0 counts as missing. An assigned trucker ID of 0, "", false or
// null counts as absent.
func ValidateTruckDraft(d domain.TruckDraft) error {
	var missing []string
	if strings.TrimSpace(d.LicensePlate) == "" {
		missing = append(missing, "license_plate")
	}
	if strings.TrimSpace(d.ChassisNumber) == "" {
		missing = append(missing, "chassis_number")
	}
	if d.Capacity == nil || *d.Capacity == 0 {
		missing = append(missing, "capacity")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if *d.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if _, err := truckerRef(d.AssignedTruckerID); err != nil {
		return err
	}
	return nil
}

// truckerRef normalises a decoded assigned_trucker_id value.
// Falsy values mean "not assigned" and yield nil.
func truckerRef(v any) (*int64, error) {
	notNumber := fmt.Errorf("%w: assigned_trucker_id must be a number", domain.ErrValidation)

	var f float64
	switch n := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if !n {
			return nil, nil
		}
		return nil, notNumber
	case string:
		if n == "" {
			return nil, nil
		}
		return nil, notNumber
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil, notNumber
		}
		f = parsed
	default:
		return nil, notNumber
	}

	if f == 0 {
		return nil, nil
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return nil, fmt.Errorf("%w: assigned_trucker_id must be a whole number", domain.ErrValidation)
	}
	id := int64(f)
	return &id, nil
}

// Create validates the draft, assigns the next truck_id, and persists the truck.
// Returns domain.ErrValidation for invalid input and domain.ErrConflict when a
// concurrent creation took the same ID first.
func (s *TruckService) Create(ctx context.Context, draft domain.TruckDraft) (domain.Truck, error) {
	if err := ValidateTruckDraft(draft); err != nil {
		return domain.Truck{}, err
	}
	assigned, _ := truckerRef(draft.AssignedTruckerID)

	currentMax, err := s.repo.MaxID(ctx)
	if err != nil {
		return domain.Truck{}, fmt.Errorf("service.TruckService.Create: %w", err)
	}

	truck := domain.Truck{
		TruckID:           NextTruckID(currentMax),
		LicensePlate:      strings.TrimSpace(draft.LicensePlate),
		ChassisNumber:     strings.TrimSpace(draft.ChassisNumber),
		Capacity:          *draft.Capacity,
		AssignedTruckerID: assigned,
	}
	result, err := s.repo.Create(ctx, truck)
	if err != nil {
		return domain.Truck{}, fmt.Errorf("service.TruckService.Create: %w", err)
	}
	if s.created != nil {
		s.created.Inc()
	}
	return result, nil
}

// List returns every truck ordered by truck_id.
func (s *TruckService) List(ctx context.Context) ([]domain.Truck, error) {
	trucks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TruckService.List: %w", err)
	}
	if trucks == nil {
		return []domain.Truck{}, nil
	}
	return trucks, nil
}

// GetByTruckerID returns the truck assigned to truckerID.
// Returns domain.ErrNotFound when no truck references that trucker.
func (s *TruckService) GetByTruckerID(ctx context.Context, truckerID int64) (domain.Truck, error) {
	truck, err := s.repo.GetByTruckerID(ctx, truckerID)
	if err != nil {
		return domain.Truck{}, fmt.Errorf("service.TruckService.GetByTruckerID: %w", err)
	}
	return truck, nil
}
