package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestTagUpsertKeepsExistingRow(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	storage := NewTagStorage(db)

	first, err := storage.Upsert(ctx, &entity.Tag{ID: uuid.NewString(), Name: "social"})
	require.NoError(t, err)

	// A later caller always generates a fresh ID. The name match must win
	// so the unique index on name is never hit.
	second, err := storage.Upsert(ctx, &entity.Tag{ID: uuid.NewString(), Name: "social"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Tag{}).Where("name = ?", "social").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestPermissionUpsertKeepsExistingRow(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	storage := NewPermissionStorage(db)

	first, err := storage.Upsert(ctx, &entity.Permission{
		ID:          uuid.NewString(),
		Slug:        "events.manage",
		Description: "Create and edit events",
	})
	require.NoError(t, err)

	second, err := storage.Upsert(ctx, &entity.Permission{
		ID:          uuid.NewString(),
		Slug:        "events.manage",
		Description: "Create and edit events",
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Permission{}).Where("slug = ?", "events.manage").Count(&count).Error)
	require.EqualValues(t, 1, count)
}
