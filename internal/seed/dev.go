package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/adapters/database/sqlite"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/pkg/logger/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// userThreshold: below this many users the synthetic pool is regenerated.
	userThreshold = 5
	// userCount is the size of the synthetic user pool.
	userCount = 50
	// devPassword is the shared login for every synthetic user.
	devPassword = "password"
)

var firstNames = []string{
	"Alice", "Ben", "Chloe", "Daniel", "Eleanor", "Felix", "Grace", "Harry",
	"Isla", "Jack", "Katie", "Liam", "Megan", "Noah", "Olivia", "Patrick",
	"Rosie", "Sam", "Tara", "Victor",
}

var lastNames = []string{
	"Armstrong", "Bennett", "Clarke", "Davies", "Edwards", "Fletcher",
	"Griffiths", "Hughes", "Irving", "Jennings", "Knowles", "Lawson",
	"Mitchell", "Norris", "Osborne", "Price", "Reynolds", "Sutton",
	"Thompson", "Walsh",
}

// tagCatalog is upserted by name on every development seeding run.
var tagCatalog = []entity.Tag{
	{Name: "social", JoinPolicy: entity.TagPolicyOpen, ViewPolicy: entity.TagPolicyOpen},
	{Name: "chill", JoinPolicy: entity.TagPolicyOpen, ViewPolicy: entity.TagPolicyOpen},
	{Name: "training", JoinPolicy: entity.TagPolicyOpen, ViewPolicy: entity.TagPolicyOpen},
	{Name: "competition", JoinPolicy: entity.TagPolicyRole, ViewPolicy: entity.TagPolicyOpen},
	{Name: "trip", JoinPolicy: entity.TagPolicyWhitelist, ViewPolicy: entity.TagPolicyOpen},
	{Name: "committee", JoinPolicy: entity.TagPolicyRole, ViewPolicy: entity.TagPolicyRole},
}

// roleSpec wires a role to permission slugs and the tags it may manage.
// Slugs or tag names that cannot be resolved are skipped one by one.
type roleSpec struct {
	name        string
	permissions []string
	managedTags []string
}

var roleCatalog = []roleSpec{
	{
		name: "Committee",
		permissions: []string{
			"events.manage", "events.view-attendees", "users.manage",
			"transactions.manage", "swim-history.record", "media.manage",
		},
	},
	{
		name:        "Training Officer",
		permissions: []string{"events.manage", "events.view-attendees", "swim-history.record"},
		managedTags: []string{"training", "chill"},
	},
	{
		name:        "Trip Organiser",
		permissions: []string{"events.manage", "events.view-attendees"},
		managedTags: []string{"trip"},
	},
	{
		name:        "Treasurer",
		permissions: []string{"transactions.manage"},
	},
}

// DevSeeder fills a development database with disposable synthetic data:
// a user pool, tag and role catalogs, and an 18-week event calendar. Re-runs
// keep the user pool and rebuild the calendar from scratch.
type DevSeeder struct {
	db     *gorm.DB
	logger *types.Logger
	rng    *rand.Rand

	tags        *sqlite.TagStorage
	roles       *sqlite.RoleStorage
	permissions *sqlite.PermissionStorage

	// Quiet suppresses progress logging; it never changes what is seeded.
	Quiet bool
	// Now anchors the event calendar; zero means time.Now().
	Now time.Time
}

func NewDevSeeder(db *gorm.DB, logger *types.Logger, rng *rand.Rand) *DevSeeder {
	return &DevSeeder{
		db:     db,
		logger: logger,
		rng:    rng,

		tags:        sqlite.NewTagStorage(db),
		roles:       sqlite.NewRoleStorage(db),
		permissions: sqlite.NewPermissionStorage(db),
	}
}

func (s *DevSeeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedTags(ctx); err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}
	if err := s.seedRoles(ctx); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	if err := s.seedEvents(ctx); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}
	return nil
}

func (s *DevSeeder) progress(format string, args ...interface{}) {
	if s.Quiet {
		return
	}
	s.logger.Infof(format, args...)
}

func (s *DevSeeder) now() time.Time {
	if s.Now.IsZero() {
		return time.Now()
	}
	return s.Now
}

// seedUsers generates the synthetic pool when fewer than userThreshold
// non-admin users exist. Every synthetic user shares one password, hashed a
// single time at MinCost.
func (s *DevSeeder) seedUsers(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&entity.User{}).Where("is_admin = ?", false).Count(&count).Error; err != nil {
		return err
	}
	if count >= userThreshold {
		s.progress("user pool already populated (%d users)", count)
		return nil
	}

	var collegeList []entity.College
	if err := s.db.WithContext(ctx).Find(&collegeList).Error; err != nil {
		return err
	}
	if len(collegeList) == 0 {
		return errors.New("no colleges present, essential seeding must run first")
	}

	var admin entity.User
	if err := s.db.WithContext(ctx).Where("email = ?", AdminEmail).First(&admin).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	now := s.now()
	return sqlite.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		for i := 0; i < userCount; i++ {
			first := firstNames[s.rng.Intn(len(firstNames))]
			last := lastNames[s.rng.Intn(len(lastNames))]
			college := collegeList[s.rng.Intn(len(collegeList))]

			user := entity.User{
				ID:           uuid.NewString(),
				Email:        fmt.Sprintf("%s.%s.%d@example.com", first, last, i),
				FirstName:    first,
				LastName:     last,
				PasswordHash: string(hash),
				CollegeID:    &college.ID,
				JoinedAt:     now.AddDate(0, 0, -s.rng.Intn(730)),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			if err := s.seedUserTransactions(tx, &user, now); err != nil {
				return err
			}
			if err := s.seedUserSwimHistory(tx, &user, admin.ID, now); err != nil {
				return err
			}
		}
		s.progress("created %d synthetic users", userCount)
		return nil
	})
}

func (s *DevSeeder) seedUserTransactions(tx *gorm.DB, user *entity.User, now time.Time) error {
	descriptions := []string{"Membership fee", "Session payment", "Kit hire", "Trip deposit", "Account top-up"}
	for i := 0; i < s.rng.Intn(6); i++ {
		amount := (s.rng.Intn(100) + 1) * 50
		if s.rng.Intn(2) == 0 {
			amount = -amount
		}
		transaction := entity.Transaction{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Amount:      amount,
			Description: descriptions[s.rng.Intn(len(descriptions))],
			CreatedAt:   now.AddDate(0, 0, -s.rng.Intn(365)),
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *DevSeeder) seedUserSwimHistory(tx *gorm.DB, user *entity.User, recordedBy string, now time.Time) error {
	for i := 0; i < s.rng.Intn(4); i++ {
		lengths := s.rng.Intn(20) + 1
		record := entity.SwimHistory{
			ID:      uuid.NewString(),
			UserID:  user.ID,
			Lengths: lengths,
			// The underwater count can never exceed the total swum.
			LengthsUnderwater: s.rng.Intn(lengths + 1),
			RecordedByID:      recordedBy,
			CreatedAt:         now.AddDate(0, 0, -s.rng.Intn(365)),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *DevSeeder) seedTags(ctx context.Context) error {
	for _, t := range tagCatalog {
		_, err := s.tags.Upsert(ctx, &entity.Tag{
			ID:         uuid.NewString(),
			Name:       t.Name,
			JoinPolicy: t.JoinPolicy,
			ViewPolicy: t.ViewPolicy,
		})
		if err != nil {
			return err
		}
	}
	s.progress("ensured %d tags", len(tagCatalog))
	return nil
}

// seedRoles ensures the role catalog, resolving permission slugs and tag
// names already in the database. A grant that cannot be resolved is logged
// and skipped; the rest of the role still goes in.
func (s *DevSeeder) seedRoles(ctx context.Context) error {
	for _, spec := range roleCatalog {
		role, err := s.roles.GetByName(ctx, spec.name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role, err = s.roles.Create(ctx, &entity.Role{
				ID:   uuid.NewString(),
				Name: spec.name,
			})
		}
		if err != nil {
			return err
		}

		var permissions []entity.Permission
		for _, slug := range spec.permissions {
			permission, permErr := s.permissions.GetBySlug(ctx, slug)
			if errors.Is(permErr, gorm.ErrRecordNotFound) {
				s.logger.Warnf("role %s: unknown permission slug %q, skipping grant", spec.name, slug)
				continue
			}
			if permErr != nil {
				return permErr
			}
			permissions = append(permissions, *permission)
		}

		var managedTags []entity.Tag
		for _, name := range spec.managedTags {
			tag, tagErr := s.tags.GetByName(ctx, name)
			if errors.Is(tagErr, gorm.ErrRecordNotFound) {
				s.logger.Warnf("role %s: unknown tag %q, skipping scope", spec.name, name)
				continue
			}
			if tagErr != nil {
				return tagErr
			}
			managedTags = append(managedTags, *tag)
		}

		if err = s.db.WithContext(ctx).Model(role).Association("Permissions").Replace(permissions); err != nil {
			return err
		}
		if err = s.db.WithContext(ctx).Model(role).Association("ManagedTags").Replace(managedTags); err != nil {
			return err
		}

		if err = s.assignRoleHolder(ctx, role); err != nil {
			return err
		}
	}
	s.progress("ensured %d roles", len(roleCatalog))
	return nil
}

// assignRoleHolder gives the role to one synthetic user so permission checks
// have someone to exercise them against.
func (s *DevSeeder) assignRoleHolder(ctx context.Context, role *entity.Role) error {
	var holder int64
	err := s.db.WithContext(ctx).Model(&entity.User{}).Where("role_id = ?", role.ID).Count(&holder).Error
	if err != nil || holder > 0 {
		return err
	}

	var user entity.User
	err = s.db.WithContext(ctx).
		Where("role_id IS NULL AND is_admin = ?", false).
		Order("email").
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&user).Update("role_id", role.ID).Error
}
