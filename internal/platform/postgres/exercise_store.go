package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/platform/logger"
	"github.com/phrazzld/exercise-tracker/internal/store"
)

// PostgresExerciseStore implements the store.ExerciseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresExerciseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExerciseStore creates a new PostgreSQL implementation of the ExerciseStore interface.
// If logger is nil, the default logger is used.
func NewPostgresExerciseStore(db store.DBTX, logger *slog.Logger) *PostgresExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresExerciseStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_store")),
	}
}

// Ensure PostgresExerciseStore implements store.ExerciseStore interface
var _ store.ExerciseStore = (*PostgresExerciseStore)(nil)

// Create implements store.ExerciseStore.Create.
func (s *PostgresExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := exercise.Validate(); err != nil {
		log.Warn("exercise validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", exercise.UserID.String()))
		return err
	}

	query := `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("exercise references a missing user",
				slog.String("user_id", exercise.UserID.String()))
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		log.Error("failed to create exercise",
			slog.String("error", err.Error()),
			slog.String("exercise_id", exercise.ID.String()),
			slog.String("user_id", exercise.UserID.String()))
		return store.NewStoreError("exercise", "create", "insert failed", MapError(err))
	}

	log.Debug("exercise created",
		slog.String("exercise_id", exercise.ID.String()),
		slog.String("user_id", exercise.UserID.String()))
	return nil
}

// ListByUser implements store.ExerciseStore.ListByUser.
func (s *PostgresExerciseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration, date
		FROM exercises
		WHERE user_id = $1
		ORDER BY seq
	`
	return s.list(ctx, query, userID)
}

// ListByUserInRange implements store.ExerciseStore.ListByUserInRange.
func (s *PostgresExerciseStore) ListByUserInRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
	limit int,
) ([]domain.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration, date
		FROM exercises
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY seq
	`
	args := []any{userID, from, to}
	if limit > 0 {
		query += ` LIMIT $4`
		args = append(args, limit)
	}
	return s.list(ctx, query, args...)
}

func (s *PostgresExerciseStore) list(ctx context.Context, query string, args ...any) ([]domain.Exercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query exercises", slog.String("error", err.Error()))
		return nil, store.NewStoreError("exercise", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExercises(rows)
}

func scanExercises(rows *sql.Rows) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, store.NewStoreError("exercise", "list", "scan failed", err)
		}
		e.Date = e.Date.UTC()
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("exercise", "list", "row iteration failed", err)
	}
	return exercises, nil
}
