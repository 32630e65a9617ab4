package sqlite

import (
	"context"
	"time"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create is a function that creates a new event in the database.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// Get is a function that gets an event from the database by id.
func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, err
}

// GetUpcoming is a function that gets all non-cancelled events starting
// between now and before, ordered by start time.
func (s *EventStorage) GetUpcoming(ctx context.Context, before time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("start_time > ? AND start_time < ? AND cancelled = ?", time.Now(), before, false).
		Order("start_time").
		Find(&events).Error
	return events, err
}
