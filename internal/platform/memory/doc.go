// Package memory provides in-process implementations of the store
// interfaces. It backs the "memory" database driver for running the API
// without PostgreSQL, and serves as the fake for handler and service tests.
package memory
