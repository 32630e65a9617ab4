package entity

import "time"

// EventWaitingList queues users for a full event, ordered by JoinedAt.
type EventWaitingList struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	EventID  string `gorm:"not null;type:uuid;index"`
	Event    Event
	UserID   string `gorm:"not null;type:uuid;index"`
	User     User
	JoinedAt time.Time `gorm:"not null"`
}
