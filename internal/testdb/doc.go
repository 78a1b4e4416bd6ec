//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests are isolated by transaction: WithTx hands each test a *sql.Tx that
// is rolled back when the test finishes, so tests never see each other's
// rows. The Postgres stores accept a store.DBTX, which *sql.Tx satisfies.
//
// Tests skip when no database URL is configured. Set DATABASE_URL or
// EXERCISE_TEST_DB_URL and run with -tags=integration.
package testdb
