package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/internal/domain/utils/validator"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetUpcoming(ctx context.Context, before time.Time) ([]entity.Event, error)
}

type EventService struct {
	eventStorage EventStorage
}

func NewEventService(storage EventStorage) *EventService {
	return &EventService{
		eventStorage: storage,
	}
}

func (s *EventService) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if !validator.EventTitle(event.Title) {
		return nil, fmt.Errorf("invalid event title %q", event.Title)
	}
	if !validator.EventWindow(event.StartTime, event.EndTime) {
		return nil, fmt.Errorf("event %q must end after it starts", event.Title)
	}
	if !validator.MaxAttendees(event.MaxAttendees) {
		return nil, fmt.Errorf("event %q has negative capacity", event.Title)
	}
	if !validator.RefundCutoff(event.UpfrontRefundCutoff, event.StartTime) {
		return nil, fmt.Errorf("event %q refund cutoff must precede the start", event.Title)
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return s.eventStorage.Create(ctx, event)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.eventStorage.Get(ctx, id)
}

func (s *EventService) GetUpcoming(ctx context.Context, before time.Time) ([]entity.Event, error) {
	return s.eventStorage.GetUpcoming(ctx, before)
}
