package domain

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxDescriptionLength is the longest description, in characters, that an
// exercise entry may carry.
const MaxDescriptionLength = 15

// DateLayout is the calendar date format accepted for exercise dates and
// log range bounds.
const DateLayout = "2006-01-02"

// DisplayDateLayout renders a date without its time of day, e.g. "Mon Jan 01 2024".
const DisplayDateLayout = "Mon Jan 02 2006"

// Exercise is a single dated record of activity attributed to one user.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
}

// NewExercise creates an Exercise for userID. When date is nil the entry is
// dated to the moment of creation.
func NewExercise(userID uuid.UUID, description string, duration float64, date *time.Time) (*Exercise, error) {
	exercise := &Exercise{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        time.Now().UTC(),
	}
	if date != nil {
		exercise.Date = date.UTC()
	}

	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	return exercise, nil
}

// Validate checks if the Exercise has valid data.
func (e *Exercise) Validate() error {
	if e.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrInvalidID)
	}

	if e.UserID == uuid.Nil {
		return NewValidationError("userId", "is required", ErrInvalidID)
	}

	if e.Description == "" {
		return NewValidationError("description", "is required", ErrValidation)
	}

	if DescriptionTooLong(e.Description) {
		return NewValidationError("description", "is too long", ErrValidation)
	}

	if e.Duration <= 0 {
		return NewValidationError("duration", "must be greater than zero", ErrValidation)
	}

	if e.Date.IsZero() {
		return NewValidationError("date", "is required", ErrValidation)
	}

	return nil
}

// DescriptionTooLong reports whether description exceeds MaxDescriptionLength
// characters. Length is counted in runes, not bytes.
func DescriptionTooLong(description string) bool {
	return utf8.RuneCountInString(description) > MaxDescriptionLength
}

// FormatDate renders t as a calendar date in UTC with no time-of-day component.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}

// ParseDate parses a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
// Calendar dates are interpreted as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return t.UTC(), nil
}

// ParseDuration parses a duration in minutes. Any finite decimal or
// exponent form is accepted, e.g. "30", "12.5" or "1e2".
func ParseDuration(value string) (float64, error) {
	d, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ErrInvalidFormat
	}
	return d, nil
}
