package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lakesidedc/club-server/internal/adapters/database/redis"
	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/pkg/logger"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Settings struct {
	Env       string
	Debug     bool
	SlidesDir string
	HTTPHost  string
	HTTPPort  int
}

type Config struct {
	Database *gorm.DB
	Redis    *redis.Client
	Settings Settings
}

// IsDevelopment reports whether synthetic seeding should run.
func (c *Config) IsDevelopment() bool {
	return c.Settings.Env == EnvDevelopment
}

func initConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("settings.env", EnvProduction)
	viper.SetDefault("settings.slides-dir", "data/slides")
	viper.SetDefault("service.database.path", "data/club.db")
	viper.SetDefault("service.http.host", "0.0.0.0")
	viper.SetDefault("service.http.port", 8080)

	return viper.ReadInConfig()
}

// Get loads config.yaml, initializes logging and opens the database and the
// session store. Any database failure is returned to the caller; a dead
// session store only degrades session invalidation and is logged instead.
func Get() (*Config, error) {
	if err := initConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		gormConfig = &gorm.Config{
			Logger: newLogger,
		}
	} else {
		gormConfig = &gorm.Config{}
	}

	database, err := sqlite.Open(viper.GetString("service.database.path"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}
	logger.Log.Info("Successfully opened the database")

	redisClient, err := redis.New(redis.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Warnf("Session store unavailable, session invalidation disabled: %v", err)
		redisClient = nil
	} else {
		logger.Log.Info("Successfully connected to the session store")
	}

	return &Config{
		Database: database,
		Redis:    redisClient,
		Settings: Settings{
			Env:       viper.GetString("settings.env"),
			Debug:     viper.GetBool("settings.debug"),
			SlidesDir: viper.GetString("settings.slides-dir"),
			HTTPHost:  viper.GetString("service.http.host"),
			HTTPPort:  viper.GetInt("service.http.port"),
		},
	}, nil
}
