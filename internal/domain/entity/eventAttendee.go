package entity

import "time"

// EventAttendee joins a user to an event. A row with IsAttending false is a
// withdrawn sign-up and does not count against capacity; the schema enforces
// at most one attending row per (event, user).
type EventAttendee struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	EventID     string `gorm:"not null;type:uuid;index"`
	Event       Event
	UserID      string `gorm:"not null;type:uuid;index"`
	User        User
	IsAttending bool `gorm:"not null;default:true"`
}
