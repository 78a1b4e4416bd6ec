// Package mocks provides function-field test doubles for the store
// interfaces. Each mock falls back to a small in-memory default when the
// corresponding Fn field is nil, so tests only override what they exercise.
package mocks
