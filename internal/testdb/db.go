//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/exercise-tracker/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and EXERCISE_TEST_DB_URL in that order.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("EXERCISE_TEST_DB_URL")
}

// SkipIfNoDatabase skips t when no test database is configured.
func SkipIfNoDatabase(t *testing.T) {
	t.Helper()
	if GetTestDatabaseURL() == "" {
		t.Skip("DATABASE_URL not set; skipping database test")
	}
}

// OpenTestDB connects to the test database and applies the embedded
// migrations. The connection is closed when the test finishes.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()
	SkipIfNoDatabase(t)

	db, err := sql.Open("pgx", GetTestDatabaseURL())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgres.Migrate(context.Background(), db, postgres.MigrateUp, quiet),
		"failed to apply migrations")

	return db
}

// WithTx executes fn within a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already ended the transaction.
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
