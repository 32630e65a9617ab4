package seed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/pkg/logger/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func testLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	return db
}

type failingSessions struct{}

func (failingSessions) ClearAll(context.Context) error {
	return errors.New("redis is down")
}

func TestEssentialSeederIdempotent(t *testing.T) {
	db := openSeedDB(t)
	seeder := NewEssentialSeeder(db, nil, testLogger())

	ctx := context.Background()
	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	var collegeCount int64
	require.NoError(t, db.Model(&entity.College{}).Count(&collegeCount).Error)
	require.EqualValues(t, len(colleges), collegeCount)

	var adminCount int64
	require.NoError(t, db.Model(&entity.User{}).Where("email = ?", AdminEmail).Count(&adminCount).Error)
	require.EqualValues(t, 1, adminCount)

	var permissionCount int64
	require.NoError(t, db.Model(&entity.Permission{}).Count(&permissionCount).Error)
	require.EqualValues(t, len(permissionCatalog), permissionCount)
}

func TestEssentialSeederToleratesSessionFailure(t *testing.T) {
	db := openSeedDB(t)
	seeder := NewEssentialSeeder(db, failingSessions{}, testLogger())

	require.NoError(t, seeder.Run(context.Background()))
}

func TestEssentialSeedingAloneLeavesNoSyntheticData(t *testing.T) {
	db := openSeedDB(t)
	require.NoError(t, NewEssentialSeeder(db, nil, testLogger()).Run(context.Background()))

	var userCount, eventCount, transactionCount int64
	require.NoError(t, db.Model(&entity.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&entity.Event{}).Count(&eventCount).Error)
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&transactionCount).Error)

	require.EqualValues(t, 1, userCount, "only the admin account")
	require.EqualValues(t, 0, eventCount)
	require.EqualValues(t, 0, transactionCount)
}
