package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type RoleStorage struct {
	db *gorm.DB
}

func NewRoleStorage(db *gorm.DB) *RoleStorage {
	return &RoleStorage{
		db: db,
	}
}

// Create is a function that creates a role with its permission and tag
// associations in the database.
func (s *RoleStorage) Create(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	err := s.db.WithContext(ctx).Create(&role).Error
	return role, err
}

// Get is a function that gets a role from the database by id.
func (s *RoleStorage) Get(ctx context.Context, id string) (*entity.Role, error) {
	var role entity.Role
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	return &role, err
}

// GetByName is a function that gets a role from the database by name,
// preloading its permissions and managed tags.
func (s *RoleStorage) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := s.db.WithContext(ctx).
		Preload("Permissions").
		Preload("ManagedTags").
		Where("name = ?", name).
		First(&role).Error
	return &role, err
}

// GetAll is a function that gets all roles from the database.
func (s *RoleStorage) GetAll(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	err := s.db.WithContext(ctx).Preload("Permissions").Preload("ManagedTags").Find(&roles).Error
	return roles, err
}
