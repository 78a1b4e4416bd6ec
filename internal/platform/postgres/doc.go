// Package postgres provides PostgreSQL-specific implementations of the
// storage interfaces defined in internal/store, together with the embedded
// goose migrations that create the schema they rely on.
package postgres
