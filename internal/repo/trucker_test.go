package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fleet-analytics/internal/repo"
	"github.com/pkordes/fleet-analytics/testutil"
)

func TestTruckerRepo_List_OrderedByTruckerID(t *testing.T) {
	tx := testutil.NewTx(t)
	testutil.InsertTrucker(t, tx, 20, "Ana")
	testutil.InsertTrucker(t, tx, 10, "Bo")
	r := repo.NewTruckerRepo(tx)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].TruckerID)
	assert.Equal(t, "Bo", got[0].Name)
	assert.Equal(t, int64(20), got[1].TruckerID)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestTruckerRepo_List_Empty(t *testing.T) {
	r := repo.NewTruckerRepo(testutil.NewTx(t))

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}
