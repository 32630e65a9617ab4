package dto

import (
	"time"

	"github.com/lakesidedc/club-server/internal/domain/entity"
)

type EventSummary struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Location       string     `json:"location"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	MaxAttendees   int        `json:"max_attendees"`
	Cost           int        `json:"cost"`
	RefundCutoff   *time.Time `json:"upfront_refund_cutoff,omitempty"`
	Cancelled      bool       `json:"cancelled"`
	EnableWaitlist bool       `json:"enable_waitlist"`
	Attending      int        `json:"attending"`
}

func NewEventSummaryFromEntity(event entity.Event, attending int) EventSummary {
	return EventSummary{
		ID:             event.ID,
		Title:          event.Title,
		Location:       event.Location,
		StartTime:      event.StartTime,
		EndTime:        event.EndTime,
		MaxAttendees:   event.MaxAttendees,
		Cost:           event.Cost,
		RefundCutoff:   event.UpfrontRefundCutoff,
		Cancelled:      event.Cancelled,
		EnableWaitlist: event.EnableWaitlist,
		Attending:      attending,
	}
}
