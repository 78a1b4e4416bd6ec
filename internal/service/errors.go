package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/exercise-tracker/internal/store"
)

// Rejection reasons returned in Result.Rejected. The wording is part of the
// public API and must not change.
const (
	MsgUsernameTaken      = "User with such name already exists/This username already taken"
	MsgDescriptionTooLong = "Description is too long"
	MsgUserNotFound       = "Wrong userId/User is not found"
)

// ExerciseServiceError wraps errors from the exercise service with context.
type ExerciseServiceError struct {
	// Operation is the operation that failed (e.g., "create_user", "add_exercise")
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ExerciseServiceError.
func (e *ExerciseServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exercise service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("exercise service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ExerciseServiceError) Unwrap() error {
	return e.Err
}

// NewExerciseServiceError creates a new ExerciseServiceError.
// store.ErrUserNotFound is returned directly without wrapping.
func NewExerciseServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrUserNotFound) {
		return store.ErrUserNotFound
	}

	return &ExerciseServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
