package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fleet-analytics/internal/domain"
)

// TruckRepo defines the persistence operations for Trucks.
type TruckRepo interface {
	// Create inserts a truck whose TruckID has already been assigned.
	// Returns domain.ErrConflict if the truck_id is taken.
	Create(ctx context.Context, truck domain.Truck) (domain.Truck, error)

	// MaxID returns the highest truck_id in the table, or nil when it is empty.
	MaxID(ctx context.Context) (*int64, error)

	// List returns all trucks ordered by truck_id.
	List(ctx context.Context) ([]domain.Truck, error)

	// GetByTruckerID returns the first truck (lowest truck_id) assigned to
	// truckerID. Returns domain.ErrNotFound if none is.
	GetByTruckerID(ctx context.Context, truckerID int64) (domain.Truck, error)
}

// pgTruckRepo is the Postgres implementation of TruckRepo.
type pgTruckRepo struct {
	db db
}

// NewTruckRepo constructs a TruckRepo backed by the provided db connection.
func NewTruckRepo(db db) TruckRepo {
	return &pgTruckRepo{db: db}
}

const truckColumns = `truck_id, license_plate, chassis_number, capacity, assigned_trucker_id, created_at`

// Create inserts a new truck row and returns the persisted record.
func (r *pgTruckRepo) Create(ctx context.Context, truck domain.Truck) (domain.Truck, error) {
	q := `
		INSERT INTO trucks (truck_id, license_plate, chassis_number, capacity, assigned_trucker_id)
		VALUES (@truck_id, @license_plate, @chassis_number, @capacity, @assigned_trucker_id)
		RETURNING ` + truckColumns

	args := pgx.NamedArgs{
		"truck_id":            truck.TruckID,
		"license_plate":       truck.LicensePlate,
		"chassis_number":      truck.ChassisNumber,
		"capacity":            truck.Capacity,
		"assigned_trucker_id": truck.AssignedTruckerID, // nil becomes NULL
	}

	result, err := scanTruck(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Truck{}, fmt.Errorf("repo.TruckRepo.Create: %w", writeErr(err))
	}
	return result, nil
}

// MaxID reads the current maximum truck_id. MAX over an empty table is NULL.
func (r *pgTruckRepo) MaxID(ctx context.Context) (*int64, error) {
	var maxID *int64
	if err := r.db.QueryRow(ctx, `SELECT MAX(truck_id) FROM trucks`).Scan(&maxID); err != nil {
		return nil, fmt.Errorf("repo.TruckRepo.MaxID: %w", err)
	}
	return maxID, nil
}

// List returns every truck ordered by truck_id.
func (r *pgTruckRepo) List(ctx context.Context) ([]domain.Truck, error) {
	rows, err := r.db.Query(ctx, `SELECT `+truckColumns+` FROM trucks ORDER BY truck_id`)
	if err != nil {
		return nil, fmt.Errorf("repo.TruckRepo.List: %w", err)
	}
	defer rows.Close()

	trucks := []domain.Truck{}
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TruckRepo.List: scan: %w", err)
		}
		trucks = append(trucks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TruckRepo.List: rows: %w", err)
	}
	return trucks, nil
}

// GetByTruckerID looks a truck up by its assigned trucker.
func (r *pgTruckRepo) GetByTruckerID(ctx context.Context, truckerID int64) (domain.Truck, error) {
	q := `SELECT ` + truckColumns + ` FROM trucks
		WHERE assigned_trucker_id = @trucker_id
		ORDER BY truck_id
		LIMIT 1`

	result, err := scanTruck(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trucker_id": truckerID}))
	if err != nil {
		return domain.Truck{}, fmt.Errorf("repo.TruckRepo.GetByTruckerID: %w", err)
	}
	return result, nil
}

// scanTruck maps a single database row into a domain.Truck.
// A NULL assigned_trucker_id scans into a nil pointer.
func scanTruck(s scanner) (domain.Truck, error) {
	var t domain.Truck
	err := s.Scan(&t.TruckID, &t.LicensePlate, &t.ChassisNumber, &t.Capacity, &t.AssignedTruckerID, &t.CreatedAt)
	if err != nil {
		return domain.Truck{}, scanErr(err)
	}
	return t, nil
}
