package entity

import "time"

// SwimHistory records a swim-test sign-off: how many lengths a member swam
// and how many of them underwater. LengthsUnderwater never exceeds Lengths.
type SwimHistory struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	CreatedAt         time.Time
	UserID            string `gorm:"not null;type:uuid;index"`
	User              User
	Lengths           int    `gorm:"not null;default:0"`
	LengthsUnderwater int    `gorm:"not null;default:0"`
	RecordedByID      string `gorm:"not null;type:uuid"`
	RecordedBy        User   `gorm:"foreignKey:RecordedByID"`
}
