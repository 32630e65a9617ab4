package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/common/errorz"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/pkg/logger/types"
	"gorm.io/gorm"
)

type EventAttendeeStorage interface {
	Create(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error)
	GetActive(ctx context.Context, eventID, userID string) (*entity.EventAttendee, error)
	Update(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventAttendee, error)
	CountAttending(ctx context.Context, eventID string) (int64, error)
}

type EventWaitingListStorage interface {
	Create(ctx context.Context, entry *entity.EventWaitingList) (*entity.EventWaitingList, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventWaitingList, error)
	CountByEventID(ctx context.Context, eventID string) (int64, error)
	Delete(ctx context.Context, eventID, userID string) error
	PromoteNext(ctx context.Context, eventID string) (*entity.EventAttendee, error)
}

type attendeeEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type EventAttendeeService struct {
	logger *types.Logger

	storage         EventAttendeeStorage
	waitlistStorage EventWaitingListStorage
	eventStorage    attendeeEventStorage
}

func NewEventAttendeeService(
	logger *types.Logger,
	storage EventAttendeeStorage,
	waitlistStorage EventWaitingListStorage,
	eventStorage attendeeEventStorage,
) *EventAttendeeService {
	return &EventAttendeeService{
		logger: logger,

		storage:         storage,
		waitlistStorage: waitlistStorage,
		eventStorage:    eventStorage,
	}
}

// Signup seats the user on the event if capacity remains. When the event is
// full the user is queued on the waiting list if the event allows one,
// otherwise errorz.EventFull is returned. waitlisted reports which of the
// two happened.
func (s *EventAttendeeService) Signup(ctx context.Context, eventID, userID string) (attendee *entity.EventAttendee, waitlisted bool, err error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, false, err
	}
	if event.Cancelled {
		return nil, false, errorz.EventCancelled
	}

	if _, err = s.storage.GetActive(ctx, eventID, userID); err == nil {
		return nil, false, errorz.AlreadyAttending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if !event.Unlimited() {
		count, countErr := s.storage.CountAttending(ctx, eventID)
		if countErr != nil {
			return nil, false, countErr
		}
		if count >= int64(event.MaxAttendees) {
			if !event.EnableWaitlist {
				return nil, false, errorz.EventFull
			}
			_, err = s.waitlistStorage.Create(ctx, &entity.EventWaitingList{
				ID:       uuid.NewString(),
				EventID:  eventID,
				UserID:   userID,
				JoinedAt: time.Now(),
			})
			if err != nil {
				return nil, false, err
			}
			return nil, true, nil
		}
	}

	attendee, err = s.storage.Create(ctx, &entity.EventAttendee{
		ID:          uuid.NewString(),
		EventID:     eventID,
		UserID:      userID,
		IsAttending: true,
	})
	return attendee, false, err
}

// Withdraw marks the user's sign-up inactive and seats the longest-waiting
// user from the waiting list, if any.
func (s *EventAttendeeService) Withdraw(ctx context.Context, eventID, userID string) error {
	attendee, err := s.storage.GetActive(ctx, eventID, userID)
	if err != nil {
		return err
	}
	attendee.IsAttending = false
	if _, err = s.storage.Update(ctx, attendee); err != nil {
		return err
	}

	promoted, err := s.waitlistStorage.PromoteNext(ctx, eventID)
	if err != nil {
		return err
	}
	if promoted != nil {
		s.logger.Infof("promoted user %s from waiting list of event %s", promoted.UserID, eventID)
	}
	return nil
}

func (s *EventAttendeeService) Attendees(ctx context.Context, eventID string) ([]entity.EventAttendee, error) {
	return s.storage.GetByEventID(ctx, eventID)
}

func (s *EventAttendeeService) WaitingList(ctx context.Context, eventID string) ([]entity.EventWaitingList, error) {
	return s.waitlistStorage.GetByEventID(ctx, eventID)
}

func (s *EventAttendeeService) CountAttending(ctx context.Context, eventID string) (int, error) {
	count, err := s.storage.CountAttending(ctx, eventID)
	return int(count), err
}
