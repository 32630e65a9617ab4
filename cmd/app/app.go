package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/lakesidedc/club-server/internal/adapters/config"
	httpController "github.com/lakesidedc/club-server/internal/adapters/controller/http"
	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/internal/domain/service"
	"github.com/lakesidedc/club-server/internal/seed"
	"github.com/lakesidedc/club-server/pkg/logger"
	"github.com/lakesidedc/club-server/pkg/logger/types"
)

// App wires storage, seeding, services and the HTTP server together.
type App struct {
	Config *config.Config
	Logger *types.Logger

	Slides *service.SlideService
	Server *httpController.Server
}

// New builds the application: schema first, essential seeding always,
// development seeding only in development mode.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}

	if err = sqlite.Migrate(cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	seedLogger, err := logger.Named("seed")
	if err != nil {
		return nil, err
	}
	if err = seedDatabase(context.Background(), cfg, seedLogger); err != nil {
		return nil, err
	}

	slidesLogger, err := logger.Named("slides")
	if err != nil {
		return nil, err
	}
	slides := service.NewSlideService(slidesLogger, cfg.Settings.SlidesDir)

	events := service.NewEventService(sqlite.NewEventStorage(cfg.Database))
	attendees := service.NewEventAttendeeService(
		appLogger,
		sqlite.NewEventAttendeeStorage(cfg.Database),
		sqlite.NewEventWaitingListStorage(cfg.Database),
		sqlite.NewEventStorage(cfg.Database),
	)
	members := service.NewMemberService(
		sqlite.NewUserStorage(cfg.Database),
		sqlite.NewCollegeStorage(cfg.Database),
		sqlite.NewRoleStorage(cfg.Database),
		sqlite.NewTransactionStorage(cfg.Database),
		sqlite.NewSwimHistoryStorage(cfg.Database),
	)
	directory := service.NewDirectoryService(
		sqlite.NewCollegeStorage(cfg.Database),
		sqlite.NewTagStorage(cfg.Database),
		sqlite.NewRoleStorage(cfg.Database),
		sqlite.NewPermissionStorage(cfg.Database),
	)

	users := service.NewUserService(sqlite.NewUserStorage(cfg.Database))

	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}
	server := httpController.New(httpLogger, slides, events, attendees, members, directory, users, httpSessions(cfg))

	return &App{
		Config: cfg,
		Logger: appLogger,
		Slides: slides,
		Server: server,
	}, nil
}

// Run serves HTTP until the listener stops.
func (a *App) Run() error {
	a.Logger.Infof("listening on %s:%d", a.Config.Settings.HTTPHost, a.Config.Settings.HTTPPort)
	return a.Server.Serve(a.Config.Settings.HTTPHost, a.Config.Settings.HTTPPort)
}

// Close stops the slide watcher and the HTTP server.
func (a *App) Close() {
	a.Slides.Close()
	if err := a.Server.Shutdown(); err != nil {
		a.Logger.Errorf("failed to shut down server: %v", err)
	}
}

// seedDatabase runs the essential seeder and, in development mode only,
// the synthetic one.
func seedDatabase(ctx context.Context, cfg *config.Config, seedLogger *types.Logger) error {
	essential := seed.NewEssentialSeeder(cfg.Database, sessionStore(cfg), seedLogger)
	if err := essential.Run(ctx); err != nil {
		return fmt.Errorf("essential seeding failed: %w", err)
	}

	if cfg.IsDevelopment() {
		dev := seed.NewDevSeeder(cfg.Database, seedLogger, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err := dev.Run(ctx); err != nil {
			return fmt.Errorf("development seeding failed: %w", err)
		}
	}
	return nil
}

// sessionStore avoids handing the seeder a nil pointer dereference when the
// session store is down.
func sessionStore(cfg *config.Config) seed.SessionStore {
	if cfg.Redis == nil {
		return nil
	}
	return cfg.Redis.Sessions
}

// httpSessions keeps the server's session store a plain nil interface when
// the session store is down.
func httpSessions(cfg *config.Config) httpController.SessionStore {
	if cfg.Redis == nil {
		return nil
	}
	return cfg.Redis.Sessions
}
