package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func timeAt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestEnsureTableIdempotent(t *testing.T) {
	db := openTestDB(t)

	existed, err := EnsureTable(db, "things", "id TEXT PRIMARY KEY, name TEXT")
	require.NoError(t, err)
	require.False(t, existed)

	existed, err = EnsureTable(db, "things", "id TEXT PRIMARY KEY, name TEXT")
	require.NoError(t, err)
	require.True(t, existed)
}

func TestEnsureTablePropagatesEngineErrors(t *testing.T) {
	db := openTestDB(t)

	_, err := EnsureTable(db, "broken", "id TEXT PRIMARY KEY,,")
	require.Error(t, err)
}

func TestMigrateTwiceProducesSameSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	for _, table := range Tables {
		require.True(t, db.Migrator().HasTable(table.Name), "missing table %s", table.Name)
	}
}

func TestActiveAttendeeUniqueness(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	userStorage := NewUserStorage(db)
	eventStorage := NewEventStorage(db)
	attendeeStorage := NewEventAttendeeStorage(db)

	user, err := userStorage.Create(ctx, &entity.User{
		ID:           uuid.NewString(),
		Email:        "member@example.com",
		FirstName:    "Test",
		LastName:     "Member",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	event, err := eventStorage.Create(ctx, &entity.Event{
		ID:        uuid.NewString(),
		Title:     "Pool Session",
		StartTime: timeAt(t, "2026-09-01T19:00:00Z"),
		EndTime:   timeAt(t, "2026-09-01T20:00:00Z"),
	})
	require.NoError(t, err)

	_, err = attendeeStorage.Create(ctx, &entity.EventAttendee{
		ID:          uuid.NewString(),
		EventID:     event.ID,
		UserID:      user.ID,
		IsAttending: true,
	})
	require.NoError(t, err)

	// A second active row for the same pair must hit the partial index.
	_, err = attendeeStorage.Create(ctx, &entity.EventAttendee{
		ID:          uuid.NewString(),
		EventID:     event.ID,
		UserID:      user.ID,
		IsAttending: true,
	})
	require.Error(t, err)

	// A withdrawn row alongside the active one is fine.
	_, err = attendeeStorage.Create(ctx, &entity.EventAttendee{
		ID:          uuid.NewString(),
		EventID:     event.ID,
		UserID:      user.ID,
		IsAttending: false,
	})
	require.NoError(t, err)
}
