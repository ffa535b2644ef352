package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockworks/stockworks-api/internal/testutil"
)

// SetupTestDB already migrates, so a second run must see every version in
// the ledger and apply nothing.
func TestRunMigrationsIsIdempotent(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()

		var before int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM schema_migrations`).Scan(&before))
		require.Positive(t, before)

		require.NoError(t, RunMigrations(ctx, db))

		var after int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM schema_migrations`).Scan(&after))
		assert.Equal(t, before, after)

		// The schema the repos depend on is in place.
		var materials int
		assert.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM materials`).Scan(&materials))
	})
}
