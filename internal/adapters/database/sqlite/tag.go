package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type TagStorage struct {
	db *gorm.DB
}

func NewTagStorage(db *gorm.DB) *TagStorage {
	return &TagStorage{
		db: db,
	}
}

// Upsert is a function that creates the tag unless one with the same name
// already exists, in which case the existing tag is returned. The lookup runs
// against a zero destination so the caller's generated ID never narrows it.
func (s *TagStorage) Upsert(ctx context.Context, tag *entity.Tag) (*entity.Tag, error) {
	var existing entity.Tag
	err := s.db.WithContext(ctx).Where("name = ?", tag.Name).Attrs(*tag).FirstOrCreate(&existing).Error
	return &existing, err
}

// GetByName is a function that gets a tag from the database by name.
func (s *TagStorage) GetByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tag entity.Tag
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	return &tag, err
}

// GetAll is a function that gets all tags from the database.
func (s *TagStorage) GetAll(ctx context.Context) ([]entity.Tag, error) {
	var tags []entity.Tag
	err := s.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, err
}
