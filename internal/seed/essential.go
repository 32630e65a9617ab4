package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/internal/domain/service"
	"github.com/lakesidedc/club-server/pkg/generator"
	"github.com/lakesidedc/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

// AdminEmail is the well-known identifier of the bootstrap account.
const AdminEmail = "admin@lakesidedc.club"

// colleges is the fixed reference list inserted into an empty database.
var colleges = []string{
	"Ashworth",
	"Brandon Hill",
	"Claremont",
	"Fenwick",
	"Hartley",
	"Kingsmead",
	"Oakfield",
	"St Aldhelm's",
	"Waverley",
	"Wynstone",
}

// permissionCatalog is the invariant set of permission slugs roles are built
// from. Inserted once, matched by slug afterwards.
var permissionCatalog = []entity.Permission{
	{Slug: "events.manage", Description: "Create, edit and cancel events"},
	{Slug: "events.view-attendees", Description: "View event sign-up lists"},
	{Slug: "users.manage", Description: "Edit member accounts and roles"},
	{Slug: "transactions.manage", Description: "Record and adjust ledger entries"},
	{Slug: "swim-history.record", Description: "Sign off swim-test lengths"},
	{Slug: "media.manage", Description: "Manage the file and slide library"},
}

// SessionStore is the slice of the session layer the seeder needs: bootstrap
// only ever invalidates everything.
type SessionStore interface {
	ClearAll(ctx context.Context) error
}

// EssentialSeeder inserts the reference data every environment needs:
// colleges, the permission catalog and the bootstrap admin account. It runs
// unconditionally on every startup and never touches rows that already exist.
type EssentialSeeder struct {
	sessions SessionStore
	logger   *types.Logger

	colleges    *sqlite.CollegeStorage
	permissions *sqlite.PermissionStorage
	users       *service.UserService
}

func NewEssentialSeeder(db *gorm.DB, sessions SessionStore, logger *types.Logger) *EssentialSeeder {
	return &EssentialSeeder{
		sessions: sessions,
		logger:   logger,

		colleges:    sqlite.NewCollegeStorage(db),
		permissions: sqlite.NewPermissionStorage(db),
		users:       service.NewUserService(sqlite.NewUserStorage(db)),
	}
}

func (s *EssentialSeeder) Run(ctx context.Context) error {
	if err := s.seedColleges(ctx); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}
	if err := s.seedPermissions(ctx); err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Session invalidation is best-effort cleanup: a dead redis must not
	// stop the server from starting.
	if s.sessions != nil {
		if err := s.sessions.ClearAll(ctx); err != nil {
			s.logger.Warnf("failed to clear sessions, continuing: %v", err)
		}
	}
	return nil
}

// seedColleges populates the college table all-or-nothing: rows are only
// inserted when the table is completely empty, in a single batch.
func (s *EssentialSeeder) seedColleges(ctx context.Context) error {
	count, err := s.colleges.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	list := make([]entity.College, 0, len(colleges))
	for _, name := range colleges {
		list = append(list, entity.College{
			ID:   uuid.NewString(),
			Name: name,
		})
	}
	if err = s.colleges.CreateMany(ctx, list); err != nil {
		return err
	}
	s.logger.Infof("inserted %d colleges", len(list))
	return nil
}

func (s *EssentialSeeder) seedPermissions(ctx context.Context) error {
	for _, p := range permissionCatalog {
		_, err := s.permissions.Upsert(ctx, &entity.Permission{
			ID:          uuid.NewString(),
			Slug:        p.Slug,
			Description: p.Description,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin creates the bootstrap account if no user carries AdminEmail. The
// generated password is logged once and never persisted in plaintext; losing
// it means resetting it by hand, not recovering it.
func (s *EssentialSeeder) seedAdmin(ctx context.Context) error {
	_, err := s.users.GetByEmail(ctx, AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password, err := generator.Password(16)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, entity.User{
		Email:     AdminEmail,
		FirstName: "Club",
		LastName:  "Admin",
		IsAdmin:   true,
	}, password)
	if err != nil {
		return err
	}

	s.logger.Warnf("created admin account %s with one-time password: %s", AdminEmail, password)
	return nil
}
