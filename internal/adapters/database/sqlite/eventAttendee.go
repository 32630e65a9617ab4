package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type EventAttendeeStorage struct {
	db *gorm.DB
}

func NewEventAttendeeStorage(db *gorm.DB) *EventAttendeeStorage {
	return &EventAttendeeStorage{
		db: db,
	}
}

// Create is a function that creates a new attendee row in the database.
func (s *EventAttendeeStorage) Create(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error) {
	err := s.db.WithContext(ctx).Create(&attendee).Error
	return attendee, err
}

// GetActive is a function that gets the attending row for an event and user.
func (s *EventAttendeeStorage) GetActive(ctx context.Context, eventID, userID string) (*entity.EventAttendee, error) {
	var attendee entity.EventAttendee
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ? AND is_attending = ?", eventID, userID, true).
		First(&attendee).Error
	return &attendee, err
}

// Update is a function that updates an attendee row in the database.
func (s *EventAttendeeStorage) Update(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error) {
	err := s.db.WithContext(ctx).Save(&attendee).Error
	return attendee, err
}

// GetByEventID is a function that gets all attendee rows for an event.
func (s *EventAttendeeStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	var attendees []entity.EventAttendee
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&attendees).Error
	return attendees, err
}

// CountAttending is a function that counts active attendees for an event.
func (s *EventAttendeeStorage) CountAttending(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.EventAttendee{}).
		Where("event_id = ? AND is_attending = ?", eventID, true).
		Count(&count).Error
	return count, err
}
