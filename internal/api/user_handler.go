package api

import (
	"net/http"

	"github.com/phrazzld/exercise-tracker/internal/api/shared"
	"github.com/phrazzld/exercise-tracker/internal/platform/logger"
	"github.com/phrazzld/exercise-tracker/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	exerciseService service.ExerciseService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(exerciseService service.ExerciseService) *UserHandler {
	return &UserHandler{exerciseService: exerciseService}
}

// CreateUser handles POST /api/exercise/new-user requests.
// A taken username is answered with 200 and a plain-text reason.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.Bind(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	res, err := h.exerciseService.CreateUser(r.Context(), req.Username)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if res.IsRejected() {
		shared.RespondWithText(w, r, http.StatusOK, res.Rejected)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(res.Value))
}

// ListUsers handles GET /api/exercise/users requests.
// A store failure is reported in a 200 JSON body, which existing clients
// depend on.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.exerciseService.ListUsers(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list users", "error", err)
		shared.RespondWithJSON(w, r, http.StatusOK, listUsersFailure{Error: "Something went wrong"})
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userToResponse(&users[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
