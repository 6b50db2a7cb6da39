package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every data table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolSettings{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))

	_, err = db.Exec(ctx, `TRUNCATE TABLE daily_reports, reports, absence_reasons, employees, refresh_tokens, user_roles, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return db
}
