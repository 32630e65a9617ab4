package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type SwimHistoryStorage struct {
	db *gorm.DB
}

func NewSwimHistoryStorage(db *gorm.DB) *SwimHistoryStorage {
	return &SwimHistoryStorage{
		db: db,
	}
}

// Create is a function that creates a new swim-history record in the database.
func (s *SwimHistoryStorage) Create(ctx context.Context, record *entity.SwimHistory) (*entity.SwimHistory, error) {
	err := s.db.WithContext(ctx).Create(&record).Error
	return record, err
}

// GetByUserID is a function that gets a user's swim-history records in
// chronological order.
func (s *SwimHistoryStorage) GetByUserID(ctx context.Context, userID string) ([]entity.SwimHistory, error) {
	var records []entity.SwimHistory
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&records).Error
	return records, err
}

// TotalsByUserID is a function that sums a user's swim-test lengths.
func (s *SwimHistoryStorage) TotalsByUserID(ctx context.Context, userID string) (lengths, underwater int64, err error) {
	row := s.db.WithContext(ctx).Model(&entity.SwimHistory{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(lengths), 0), COALESCE(SUM(lengths_underwater), 0)").
		Row()
	err = row.Scan(&lengths, &underwater)
	return lengths, underwater, err
}
