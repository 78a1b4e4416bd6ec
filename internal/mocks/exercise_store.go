package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/store"
)

// RangeCall records the arguments of one ListByUserInRange call.
type RangeCall struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
	Limit  int
}

// MockExerciseStore implements store.ExerciseStore for testing
type MockExerciseStore struct {
	CreateFn            func(ctx context.Context, exercise *domain.Exercise) error
	ListByUserFn        func(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error)
	ListByUserInRangeFn func(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Exercise, error)

	// RangeCalls records every ListByUserInRange call, including overridden ones.
	RangeCalls []RangeCall

	mu        sync.Mutex
	exercises []domain.Exercise
}

var _ store.ExerciseStore = (*MockExerciseStore)(nil)

// NewMockExerciseStore creates a new mock store with initialized defaults
func NewMockExerciseStore() *MockExerciseStore {
	return &MockExerciseStore{}
}

// Create implements the ExerciseStore interface
func (m *MockExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, exercise)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.exercises = append(m.exercises, *exercise)
	return nil
}

// ListByUser implements the ExerciseStore interface
func (m *MockExerciseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.filter(userID, func(domain.Exercise) bool { return true }, 0), nil
}

// ListByUserInRange implements the ExerciseStore interface
func (m *MockExerciseStore) ListByUserInRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
	limit int,
) ([]domain.Exercise, error) {
	m.mu.Lock()
	m.RangeCalls = append(m.RangeCalls, RangeCall{UserID: userID, From: from, To: to, Limit: limit})
	m.mu.Unlock()

	if m.ListByUserInRangeFn != nil {
		return m.ListByUserInRangeFn(ctx, userID, from, to, limit)
	}
	inRange := func(e domain.Exercise) bool {
		return !e.Date.Before(from) && e.Date.Before(to)
	}
	return m.filter(userID, inRange, limit), nil
}

func (m *MockExerciseStore) filter(userID uuid.UUID, keep func(domain.Exercise) bool, limit int) []domain.Exercise {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Exercise, 0)
	for _, e := range m.exercises {
		if e.UserID != userID || !keep(e) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
