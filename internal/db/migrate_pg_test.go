package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/farm-backend/internal/db"
	"github.com/baharkarakas/farm-backend/internal/testutil"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	pool := testutil.NewTestPool(t) // already migrated once
	ctx := context.Background()

	require.NoError(t, db.RunMigrations(ctx, pool))

	var applied int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)

	for _, table := range []string{"farms", "plans", "messages", "audit_logs"} {
		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, "public."+table).Scan(&exists))
		assert.True(t, exists, table)
	}
}
