package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestPromoteNextSeatsLongestWaiting(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	userStorage := NewUserStorage(db)
	eventStorage := NewEventStorage(db)
	waitlistStorage := NewEventWaitingListStorage(db)

	event, err := eventStorage.Create(ctx, &entity.Event{
		ID:             uuid.NewString(),
		Title:          "Chill Session",
		StartTime:      timeAt(t, "2026-09-02T18:00:00Z"),
		EndTime:        timeAt(t, "2026-09-02T19:00:00Z"),
		MaxAttendees:   1,
		EnableWaitlist: true,
	})
	require.NoError(t, err)

	base := timeAt(t, "2026-08-26T12:00:00Z")
	var userIDs []string
	for i := 0; i < 2; i++ {
		user, userErr := userStorage.Create(ctx, &entity.User{
			ID:           uuid.NewString(),
			Email:        uuid.NewString() + "@example.com",
			FirstName:    "Waiting",
			LastName:     "Member",
			PasswordHash: "x",
		})
		require.NoError(t, userErr)
		userIDs = append(userIDs, user.ID)

		_, userErr = waitlistStorage.Create(ctx, &entity.EventWaitingList{
			ID:       uuid.NewString(),
			EventID:  event.ID,
			UserID:   user.ID,
			JoinedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, userErr)
	}

	promoted, err := waitlistStorage.PromoteNext(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	require.Equal(t, userIDs[0], promoted.UserID)
	require.True(t, promoted.IsAttending)

	remaining, err := waitlistStorage.CountByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, remaining)
}

func TestPromoteNextEmptyQueue(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	promoted, err := NewEventWaitingListStorage(db).PromoteNext(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, promoted)
}
