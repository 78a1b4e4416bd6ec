package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/store"
)

// Store holds users and exercises in memory. It implements both
// store.UserStore (via Users) and store.ExerciseStore (via Exercises).
// All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	users      []domain.User
	byID       map[uuid.UUID]int
	byUsername map[string]int

	// exercises keeps insertion order, which is the order log queries return.
	exercises []domain.Exercise
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		byID:       make(map[uuid.UUID]int),
		byUsername: make(map[string]int),
	}
}

// Users returns the store.UserStore view of s.
func (s *Store) Users() *UserStore {
	return &UserStore{s: s}
}

// Exercises returns the store.ExerciseStore view of s.
func (s *Store) Exercises() *ExerciseStore {
	return &ExerciseStore{s: s}
}

// UserStore is the user half of Store.
type UserStore struct {
	s *Store
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create. The existence check and the
// insert happen under one lock, so usernames stay unique under concurrency.
func (u *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, taken := u.s.byUsername[user.Username]; taken {
		return store.ErrUsernameExists
	}
	if _, taken := u.s.byID[user.ID]; taken {
		return store.ErrDuplicate
	}

	u.s.users = append(u.s.users, *user)
	idx := len(u.s.users) - 1
	u.s.byID[user.ID] = idx
	u.s.byUsername[user.Username] = idx
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (u *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	idx, ok := u.s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := u.s.users[idx]
	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (u *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	idx, ok := u.s.byUsername[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := u.s.users[idx]
	return &user, nil
}

// List implements store.UserStore.List.
func (u *UserStore) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	users := make([]domain.User, len(u.s.users))
	copy(users, u.s.users)
	return users, nil
}

// ExerciseStore is the exercise half of Store.
type ExerciseStore struct {
	s *Store
}

var _ store.ExerciseStore = (*ExerciseStore)(nil)

// Create implements store.ExerciseStore.Create.
func (e *ExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	if err := exercise.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if _, ok := e.s.byID[exercise.UserID]; !ok {
		return store.NewStoreError("exercise", "create", "unknown user", store.ErrUserNotFound)
	}

	e.s.exercises = append(e.s.exercises, *exercise)
	return nil
}

// ListByUser implements store.ExerciseStore.ListByUser.
func (e *ExerciseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error) {
	return e.filter(ctx, userID, func(domain.Exercise) bool { return true }, 0)
}

// ListByUserInRange implements store.ExerciseStore.ListByUserInRange.
func (e *ExerciseStore) ListByUserInRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
	limit int,
) ([]domain.Exercise, error) {
	inRange := func(ex domain.Exercise) bool {
		return !ex.Date.Before(from) && ex.Date.Before(to)
	}
	return e.filter(ctx, userID, inRange, limit)
}

func (e *ExerciseStore) filter(
	ctx context.Context,
	userID uuid.UUID,
	keep func(domain.Exercise) bool,
	limit int,
) ([]domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	out := make([]domain.Exercise, 0)
	for _, ex := range e.s.exercises {
		if ex.UserID != userID || !keep(ex) {
			continue
		}
		out = append(out, ex)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
