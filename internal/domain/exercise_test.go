package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExercise(t *testing.T) {
	userID := uuid.New()

	t.Run("defaults date to now", func(t *testing.T) {
		before := time.Now().UTC()
		ex, err := NewExercise(userID, "running", 30, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, ex.ID)
		assert.Equal(t, userID, ex.UserID)
		assert.False(t, ex.Date.Before(before))
		assert.Equal(t, time.UTC, ex.Date.Location())
	})

	t.Run("keeps supplied date", func(t *testing.T) {
		date := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
		ex, err := NewExercise(userID, "swim", 45.5, &date)
		require.NoError(t, err)
		assert.True(t, ex.Date.Equal(date))
		assert.Equal(t, 45.5, ex.Duration)
	})
}

func TestExerciseValidate(t *testing.T) {
	valid := Exercise{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Description: "pushups",
		Duration:    10,
		Date:        time.Now(),
	}

	tests := []struct {
		name      string
		mutate    func(e *Exercise)
		wantField string
	}{
		{"valid", func(e *Exercise) {}, ""},
		{"missing id", func(e *Exercise) { e.ID = uuid.Nil }, "id"},
		{"missing user", func(e *Exercise) { e.UserID = uuid.Nil }, "userId"},
		{"empty description", func(e *Exercise) { e.Description = "" }, "description"},
		{"fifteen characters", func(e *Exercise) { e.Description = strings.Repeat("a", 15) }, ""},
		{"sixteen characters", func(e *Exercise) { e.Description = strings.Repeat("a", 16) }, "description"},
		{"zero duration", func(e *Exercise) { e.Duration = 0 }, "duration"},
		{"negative duration", func(e *Exercise) { e.Duration = -1 }, "duration"},
		{"zero date", func(e *Exercise) { e.Date = time.Time{} }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := valid
			tt.mutate(&ex)
			err := ex.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestDescriptionTooLong(t *testing.T) {
	assert.False(t, DescriptionTooLong(strings.Repeat("x", 15)))
	assert.True(t, DescriptionTooLong(strings.Repeat("x", 16)))
	// Multi-byte characters count once each.
	assert.False(t, DescriptionTooLong(strings.Repeat("é", 15)))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Mon Jan 01 2024", FormatDate(d))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-01-05T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 8, 30, 0, 0, time.UTC), got)

	_, err = ParseDate("05/01/2024")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{input: "30", expected: 30},
		{input: "12.5", expected: 12.5},
		{input: "1e2", expected: 100},
		{input: "-4", expected: -4},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "Inf", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
