package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns validation errors from the domain User if data is invalid.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by exact, case-sensitive username match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns every user. Callers must not rely on the order.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.User, error)
}
