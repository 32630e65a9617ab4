package entity

import (
	"time"
)

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `gorm:"not null"`
	Description string
	Location    string
	StartTime   time.Time `gorm:"not null"`
	EndTime     time.Time `gorm:"not null"`
	// MaxAttendees of 0 means unlimited capacity.
	MaxAttendees        int `gorm:"not null;default:0"`
	Cost                int `gorm:"not null;default:0"`
	UpfrontRefundCutoff *time.Time
	Cancelled           bool  `gorm:"not null;default:false"`
	EnableWaitlist      bool  `gorm:"not null;default:false"`
	Tags                []Tag `gorm:"many2many:event_tags"`
}

// Unlimited reports whether the event has no capacity cap.
func (e *Event) Unlimited() bool {
	return e.MaxAttendees == 0
}

// IsOver checks if the event is over, considering the additional time.
func (e *Event) IsOver(additionalTime time.Duration) bool {
	return e.StartTime.Before(time.Now().Add(-additionalTime))
}
