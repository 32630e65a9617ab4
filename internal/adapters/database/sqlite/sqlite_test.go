package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestOpenEnforcesForeignKeysOnEveryConnection(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	// With no idle connections each query runs on a freshly opened one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		var enabled int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
		require.Equal(t, 1, enabled, "connection %d has foreign keys off", i)
	}

	// An attendee row pointing at a nonexistent event and user must be
	// rejected regardless of which pooled connection serves the insert.
	err = db.WithContext(context.Background()).Create(&entity.EventAttendee{
		ID:          uuid.NewString(),
		EventID:     uuid.NewString(),
		UserID:      uuid.NewString(),
		IsAttending: true,
	}).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "FOREIGN KEY")
}
