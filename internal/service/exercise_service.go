package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/platform/logger"
	"github.com/phrazzld/exercise-tracker/internal/store"
)

// AddExerciseInput is the data needed to record an exercise entry, kept as
// the caller sent it. A malformed UserID is treated as an unknown user.
// Duration and Date are only parsed once the user and the description
// length have been checked.
type AddExerciseInput struct {
	UserID      string
	Description string
	// Duration is a number of minutes, e.g. "30" or "12.5".
	Duration string
	// Date is optional (YYYY-MM-DD); empty means "now".
	Date string
}

// LogQuery selects part of a user's exercise log. The range filter and the
// limit only apply when both From and To are set.
type LogQuery struct {
	UserID string
	From   *time.Time
	To     *time.Time
	// Limit caps the number of ranged entries; zero means no cap.
	Limit int
}

// AddedExercise is the value of a successful AddExercise call.
type AddedExercise struct {
	User     *domain.User
	Exercise *domain.Exercise
}

// ExerciseLog is the value of a successful ExerciseLog call.
type ExerciseLog struct {
	User    *domain.User
	Entries []domain.Exercise
}

// ExerciseService provides the exercise tracker's operations.
type ExerciseService interface {
	// CreateUser registers username. A taken username is a rejection.
	CreateUser(ctx context.Context, username string) (Result[*domain.User], error)

	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// AddExercise records an entry for an existing user. An unknown user is
	// reported as store.ErrUserNotFound; an over-long description is a rejection.
	AddExercise(ctx context.Context, in AddExerciseInput) (Result[*AddedExercise], error)

	// ExerciseLog returns a user's entries. An unknown user is a rejection.
	ExerciseLog(ctx context.Context, q LogQuery) (Result[*ExerciseLog], error)
}

// exerciseServiceImpl implements the ExerciseService interface
type exerciseServiceImpl struct {
	users     store.UserStore
	exercises store.ExerciseStore
	logger    *slog.Logger
}

// NewExerciseService creates a new ExerciseService.
// It returns an error if any of the required stores are nil.
func NewExerciseService(
	users store.UserStore,
	exercises store.ExerciseStore,
	logger *slog.Logger,
) (ExerciseService, error) {
	if users == nil {
		return nil, &ExerciseServiceError{
			Operation: "create_service",
			Message:   "users store cannot be nil",
		}
	}
	if exercises == nil {
		return nil, &ExerciseServiceError{
			Operation: "create_service",
			Message:   "exercises store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &exerciseServiceImpl{
		users:     users,
		exercises: exercises,
		logger:    logger.With("component", "exercise_service"),
	}, nil
}

// CreateUser implements ExerciseService.CreateUser.
func (s *exerciseServiceImpl) CreateUser(ctx context.Context, username string) (Result[*domain.User], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username)
	if err != nil {
		return Result[*domain.User]{}, err
	}

	existing, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil && existing != nil:
		log.Debug("username already taken", "username", username)
		return Reject[*domain.User](MsgUsernameTaken), nil
	case err != nil && !store.IsNotFoundError(err):
		return Result[*domain.User]{}, NewExerciseServiceError("create_user", "failed to look up username", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent request for the same name.
		if errors.Is(err, store.ErrUsernameExists) {
			log.Info("username claimed concurrently", "username", username)
			return Reject[*domain.User](MsgUsernameTaken), nil
		}
		return Result[*domain.User]{}, NewExerciseServiceError("create_user", "failed to save user", err)
	}

	log.Info("user created", "user_id", user.ID)
	return Ok(user), nil
}

// ListUsers implements ExerciseService.ListUsers.
func (s *exerciseServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, NewExerciseServiceError("list_users", "failed to list users", err)
	}
	return users, nil
}

// AddExercise implements ExerciseService.AddExercise.
func (s *exerciseServiceImpl) AddExercise(
	ctx context.Context,
	in AddExerciseInput,
) (Result[*AddedExercise], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.lookupUser(ctx, in.UserID)
	if err != nil {
		return Result[*AddedExercise]{}, NewExerciseServiceError("add_exercise", "failed to look up user", err)
	}

	if domain.DescriptionTooLong(in.Description) {
		return Reject[*AddedExercise](MsgDescriptionTooLong), nil
	}

	duration, date, err := parseExerciseFields(in)
	if err != nil {
		return Result[*AddedExercise]{}, err
	}

	exercise, err := domain.NewExercise(user.ID, in.Description, duration, date)
	if err != nil {
		return Result[*AddedExercise]{}, err
	}

	if err := s.exercises.Create(ctx, exercise); err != nil {
		log.Error("failed to save exercise",
			"error", err,
			"user_id", user.ID)
		return Result[*AddedExercise]{}, NewExerciseServiceError("add_exercise", "failed to save exercise", err)
	}

	return Ok(&AddedExercise{User: user, Exercise: exercise}), nil
}

// ExerciseLog implements ExerciseService.ExerciseLog.
func (s *exerciseServiceImpl) ExerciseLog(ctx context.Context, q LogQuery) (Result[*ExerciseLog], error) {
	if q.Limit < 0 {
		return Result[*ExerciseLog]{}, domain.NewValidationError("limit", "must not be negative", domain.ErrValidation)
	}

	user, err := s.lookupUser(ctx, q.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return Reject[*ExerciseLog](MsgUserNotFound), nil
		}
		return Result[*ExerciseLog]{}, NewExerciseServiceError("exercise_log", "failed to look up user", err)
	}

	var entries []domain.Exercise
	if q.From != nil && q.To != nil {
		entries, err = s.exercises.ListByUserInRange(ctx, user.ID, *q.From, *q.To, q.Limit)
	} else {
		entries, err = s.exercises.ListByUser(ctx, user.ID)
	}
	if err != nil {
		return Result[*ExerciseLog]{}, NewExerciseServiceError("exercise_log", "failed to list exercises", err)
	}

	return Ok(&ExerciseLog{User: user, Entries: entries}), nil
}

// parseExerciseFields converts the textual duration and date of in.
func parseExerciseFields(in AddExerciseInput) (float64, *time.Time, error) {
	if in.Duration == "" {
		return 0, nil, domain.NewValidationError("duration", "is required", domain.ErrValidation)
	}
	duration, err := domain.ParseDuration(in.Duration)
	if err != nil {
		return 0, nil, domain.NewValidationError("duration", "must be a number", err)
	}

	if in.Date == "" {
		return duration, nil, nil
	}
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return 0, nil, domain.NewValidationError("date", "must be a date in YYYY-MM-DD format", err)
	}
	return duration, &date, nil
}

// lookupUser resolves a caller-supplied user ID. A malformed ID cannot name
// any user, so it is reported as store.ErrUserNotFound.
func (s *exerciseServiceImpl) lookupUser(ctx context.Context, rawID string) (*domain.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, store.ErrUserNotFound
	}
	return s.users.GetByID(ctx, id)
}
