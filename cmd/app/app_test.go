package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lakesidedc/club-server/internal/adapters/config"
	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/internal/seed"
	"github.com/lakesidedc/club-server/pkg/logger/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func seedTestConfig(t *testing.T, env string) *config.Config {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "app.db"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	return &config.Config{
		Database: db,
		Settings: config.Settings{Env: env},
	}
}

func TestSeedDatabaseProductionSkipsSyntheticData(t *testing.T) {
	cfg := seedTestConfig(t, config.EnvProduction)
	seedLogger := &types.Logger{SugaredLogger: zap.NewNop().Sugar()}

	require.NoError(t, seedDatabase(context.Background(), cfg, seedLogger))

	var userCount, eventCount int64
	require.NoError(t, cfg.Database.Model(&entity.User{}).Count(&userCount).Error)
	require.NoError(t, cfg.Database.Model(&entity.Event{}).Count(&eventCount).Error)
	require.EqualValues(t, 1, userCount, "only the admin account")
	require.EqualValues(t, 0, eventCount)

	var admin entity.User
	require.NoError(t, cfg.Database.Where("email = ?", seed.AdminEmail).First(&admin).Error)
	require.True(t, admin.IsAdmin)
}

func TestSeedDatabaseDevelopmentBuildsFixtures(t *testing.T) {
	cfg := seedTestConfig(t, config.EnvDevelopment)
	seedLogger := &types.Logger{SugaredLogger: zap.NewNop().Sugar()}

	require.NoError(t, seedDatabase(context.Background(), cfg, seedLogger))

	var userCount, eventCount int64
	require.NoError(t, cfg.Database.Model(&entity.User{}).Where("is_admin = ?", false).Count(&userCount).Error)
	require.NoError(t, cfg.Database.Model(&entity.Event{}).Count(&eventCount).Error)
	require.NotZero(t, userCount)
	require.NotZero(t, eventCount)
}
