package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
)

// ExerciseStore defines the interface for exercise entry persistence.
// Entries are returned in the order they were stored; no other sort is applied.
type ExerciseStore interface {
	// Create saves a new exercise entry.
	// Returns validation errors from the domain Exercise if data is invalid,
	// and ErrUserNotFound if the owning user does not exist.
	Create(ctx context.Context, exercise *domain.Exercise) error

	// ListByUser returns every entry recorded for userID.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error)

	// ListByUserInRange returns the entries for userID whose date satisfies
	// from <= date < to. A positive limit caps the number of entries returned;
	// zero means no cap.
	ListByUserInRange(
		ctx context.Context,
		userID uuid.UUID,
		from, to time.Time,
		limit int,
	) ([]domain.Exercise, error)
}
