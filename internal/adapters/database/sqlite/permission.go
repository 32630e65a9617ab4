package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type PermissionStorage struct {
	db *gorm.DB
}

func NewPermissionStorage(db *gorm.DB) *PermissionStorage {
	return &PermissionStorage{
		db: db,
	}
}

// Upsert is a function that creates the permission unless one with the same
// slug already exists, in which case the existing permission is returned. The
// lookup runs against a zero destination so the caller's generated ID never
// narrows it.
func (s *PermissionStorage) Upsert(ctx context.Context, permission *entity.Permission) (*entity.Permission, error) {
	var existing entity.Permission
	err := s.db.WithContext(ctx).Where("slug = ?", permission.Slug).Attrs(*permission).FirstOrCreate(&existing).Error
	return &existing, err
}

// GetBySlug is a function that gets a permission from the database by slug.
func (s *PermissionStorage) GetBySlug(ctx context.Context, slug string) (*entity.Permission, error) {
	var permission entity.Permission
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&permission).Error
	return &permission, err
}

// GetAll is a function that gets all permissions from the database.
func (s *PermissionStorage) GetAll(ctx context.Context) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := s.db.WithContext(ctx).Order("slug").Find(&permissions).Error
	return permissions, err
}
