package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/exercise-tracker/internal/api/shared"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Bad request errors
	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation failures report the offending field;
// everything else gets a fixed message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal Server Error"
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()

	case domain.IsValidationError(err):
		return "Validation error"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	default:
		return "Internal Server Error"
	}
}

// HandleAPIError writes the error response for err: a mapped status code, a
// safe message and the trace ID. The full error is only logged, redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
