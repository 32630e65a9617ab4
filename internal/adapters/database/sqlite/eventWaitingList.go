package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type EventWaitingListStorage struct {
	db *gorm.DB
}

func NewEventWaitingListStorage(db *gorm.DB) *EventWaitingListStorage {
	return &EventWaitingListStorage{
		db: db,
	}
}

// Create is a function that appends a user to an event's waiting list.
func (s *EventWaitingListStorage) Create(ctx context.Context, entry *entity.EventWaitingList) (*entity.EventWaitingList, error) {
	err := s.db.WithContext(ctx).Create(&entry).Error
	return entry, err
}

// GetByEventID is a function that gets an event's waiting list in join order.
func (s *EventWaitingListStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.EventWaitingList, error) {
	var entries []entity.EventWaitingList
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("joined_at").Find(&entries).Error
	return entries, err
}

// CountByEventID is a function that counts waiting users for an event.
func (s *EventWaitingListStorage) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.EventWaitingList{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

// Delete is a function that removes a user from an event's waiting list.
func (s *EventWaitingListStorage) Delete(ctx context.Context, eventID, userID string) error {
	return s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entity.EventWaitingList{}).Error
}

// PromoteNext pops the longest-waiting user for the event and seats them as
// an active attendee. Both steps run in one transaction so the queue entry
// is never lost without the seat being taken. Returns the seated attendee,
// or nil when the waiting list is empty.
func (s *EventWaitingListStorage) PromoteNext(ctx context.Context, eventID string) (*entity.EventAttendee, error) {
	var promoted *entity.EventAttendee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var head entity.EventWaitingList
		err := tx.Where("event_id = ?", eventID).Order("joined_at").First(&head).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		attendee := entity.EventAttendee{
			ID:          uuid.NewString(),
			EventID:     eventID,
			UserID:      head.UserID,
			IsAttending: true,
			CreatedAt:   time.Now(),
		}
		if err = tx.Create(&attendee).Error; err != nil {
			return err
		}
		if err = tx.Delete(&entity.EventWaitingList{}, "id = ?", head.ID).Error; err != nil {
			return err
		}
		promoted = &attendee
		return nil
	})
	return promoted, err
}
