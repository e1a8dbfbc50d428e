package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

// InsertTrucker seeds a trucker row. The service only reads truckers, so
// tests that need them write the rows directly.
func InsertTrucker(t *testing.T, tx pgx.Tx, truckerID int64, name string) {
	t.Helper()
	_, err := tx.Exec(context.Background(),
		`INSERT INTO truckers (trucker_id, name) VALUES (@trucker_id, @name)`,
		pgx.NamedArgs{"trucker_id": truckerID, "name": name})
	if err != nil {
		t.Fatalf("testutil.InsertTrucker: %v", err)
	}
}
