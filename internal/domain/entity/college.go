package entity

import "time"

type College struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	Name      string `gorm:"not null;uniqueIndex"`
}
