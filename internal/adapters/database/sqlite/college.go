package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type CollegeStorage struct {
	db *gorm.DB
}

func NewCollegeStorage(db *gorm.DB) *CollegeStorage {
	return &CollegeStorage{
		db: db,
	}
}

// CreateMany is a function that creates colleges in the database in one batch.
func (s *CollegeStorage) CreateMany(ctx context.Context, colleges []entity.College) error {
	return s.db.WithContext(ctx).Create(&colleges).Error
}

// GetAll is a function that gets all colleges from the database.
func (s *CollegeStorage) GetAll(ctx context.Context) ([]entity.College, error) {
	var colleges []entity.College
	err := s.db.WithContext(ctx).Order("name").Find(&colleges).Error
	return colleges, err
}

// Get is a function that gets a college from the database by id.
func (s *CollegeStorage) Get(ctx context.Context, id string) (*entity.College, error) {
	var college entity.College
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&college).Error
	return &college, err
}

// Count is a function that gets the count of colleges from the database.
func (s *CollegeStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.College{}).Count(&count).Error
	return count, err
}
