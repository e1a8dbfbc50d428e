package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fleet-analytics/internal/domain"
)

// TruckerRepo defines the persistence operations for Truckers.
// Truckers are provisioned outside this service, so the repo is read-only.
type TruckerRepo interface {
	// List returns all truckers ordered by trucker_id.
	List(ctx context.Context) ([]domain.Trucker, error)
}

type pgTruckerRepo struct {
	db db
}

// NewTruckerRepo constructs a TruckerRepo backed by the provided db connection.
func NewTruckerRepo(db db) TruckerRepo {
	return &pgTruckerRepo{db: db}
}

func (r *pgTruckerRepo) List(ctx context.Context) ([]domain.Trucker, error) {
	rows, err := r.db.Query(ctx, `SELECT trucker_id, name, created_at FROM truckers ORDER BY trucker_id`)
	if err != nil {
		return nil, fmt.Errorf("repo.TruckerRepo.List: %w", err)
	}
	truckers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Trucker, error) {
		var t domain.Trucker
		if err := row.Scan(&t.TruckerID, &t.Name, &t.CreatedAt); err != nil {
			return domain.Trucker{}, scanErr(err)
		}
		return t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TruckerRepo.List: %w", err)
	}
	return truckers, nil
}
