package mocks_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/exercise-tracker/internal/domain"
	"github.com/phrazzld/exercise-tracker/internal/mocks"
	"github.com/phrazzld/exercise-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUserStoreDefaults(t *testing.T) {
	ctx := context.Background()
	m := mocks.NewMockUserStore()

	user, err := domain.NewUser("alice")
	require.NoError(t, err)
	require.NoError(t, m.Create(ctx, user))

	dup, err := domain.NewUser("alice")
	require.NoError(t, err)
	assert.ErrorIs(t, m.Create(ctx, dup), store.ErrUsernameExists)

	got, err := m.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = m.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	users, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMockExerciseStoreRecordsRangeCalls(t *testing.T) {
	ctx := context.Background()
	m := mocks.NewMockExerciseStore()
	userID := uuid.New()

	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		date, err := domain.ParseDate(d)
		require.NoError(t, err)
		ex, err := domain.NewExercise(userID, "run", 1, &date)
		require.NoError(t, err)
		require.NoError(t, m.Create(ctx, ex))
	}

	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	got, err := m.ListByUserInRange(ctx, userID, from, to, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Date.Equal(from))

	require.Len(t, m.RangeCalls, 1)
	assert.Equal(t, mocks.RangeCall{UserID: userID, From: from, To: to, Limit: 1}, m.RangeCalls[0])

	all, err := m.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
