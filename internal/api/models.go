package api

import (
	"time"

	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/service"
)

// Request fields are bound from JSON, form bodies or the query string by
// shared.Bind, matched on their `form` tag. Numbers and dates are kept as
// text and converted once validation has passed.

// CreateUserRequest is the input of POST /api/exercise/new-user.
type CreateUserRequest struct {
	Username string `form:"username" validate:"required"`
}

// AddExerciseRequest is the input of POST /api/exercise/add.
// It carries no validation tags: an unknown user and an over-long
// description take precedence over malformed fields, so the service
// validates after looking the user up.
type AddExerciseRequest struct {
	UserID      string `form:"userId"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
	Date        string `form:"date"`
}

// LogRequest is the query of GET /api/exercise/log.
type LogRequest struct {
	UserID string `form:"userId"`
	From   string `form:"from"   validate:"omitempty,exercisedate"`
	To     string `form:"to"     validate:"omitempty,exercisedate"`
	Limit  string `form:"limit"  validate:"omitempty,number"`
}

// UserResponse is the JSON shape of a user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AddExerciseResponse is returned after an exercise is recorded.
type AddExerciseResponse struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	// Date is rendered without its time of day, e.g. "Mon Jan 01 2024".
	Date string `json:"date"`
}

// LogEntryResponse is one entry of a user's exercise log.
type LogEntryResponse struct {
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
}

// LogResponse is the JSON shape of a user's exercise log.
type LogResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

// listUsersFailure is the body sent when listing users fails.
type listUsersFailure struct {
	Error string `json:"error"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
	}
}

func addedExerciseToResponse(added *service.AddedExercise) AddExerciseResponse {
	return AddExerciseResponse{
		Username:    added.User.Username,
		Description: added.Exercise.Description,
		Duration:    added.Exercise.Duration,
		Date:        domain.FormatDate(added.Exercise.Date),
	}
}

func logToResponse(l *service.ExerciseLog) LogResponse {
	entries := make([]LogEntryResponse, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	return LogResponse{
		ID:       l.User.ID.String(),
		Username: l.User.Username,
		Count:    len(entries),
		Log:      entries,
	}
}
