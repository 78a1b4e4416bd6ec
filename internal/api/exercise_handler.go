package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/phrazzld/exercise-tracker/internal/api/shared"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/service"
)

// ExerciseHandler handles exercise-related HTTP requests
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// AddExercise handles POST /api/exercise/add requests.
// The service checks the user before any field of the body.
func (h *ExerciseHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	var req AddExerciseRequest
	if err := shared.Bind(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	res, err := h.exerciseService.AddExercise(r.Context(), service.AddExerciseInput{
		UserID:      req.UserID,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if res.IsRejected() {
		shared.RespondWithText(w, r, http.StatusOK, res.Rejected)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, addedExerciseToResponse(res.Value))
}

// GetLog handles GET /api/exercise/log requests.
// An unknown user is answered with 200 and a plain-text reason.
func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	var req LogRequest
	if err := shared.Bind(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	query := service.LogQuery{UserID: req.UserID}

	var err error
	if query.From, err = optionalDate("from", req.From); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if query.To, err = optionalDate("to", req.To); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if req.Limit != "" {
		if query.Limit, err = strconv.Atoi(req.Limit); err != nil {
			HandleAPIError(w, r, domain.NewValidationError("limit", "must be a non-negative integer", domain.ErrInvalidFormat))
			return
		}
	}

	res, err := h.exerciseService.ExerciseLog(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if res.IsRejected() {
		shared.RespondWithText(w, r, http.StatusOK, res.Rejected)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, logToResponse(res.Value))
}

// optionalDate parses a date parameter, returning nil when it is empty.
func optionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(value)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format", domain.ErrInvalidFormat)
	}
	return &t, nil
}
