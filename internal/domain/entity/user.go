package entity

import (
	"time"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string  `gorm:"not null;uniqueIndex"`
	FirstName    string  `gorm:"not null"`
	LastName     string  `gorm:"not null"`
	PasswordHash string  `gorm:"not null"`
	CollegeID    *string `gorm:"type:uuid"`
	College      *College
	RoleID       *string `gorm:"type:uuid"`
	Role         *Role
	IsAdmin      bool `gorm:"not null;default:false"`
	JoinedAt     time.Time
}

// FullName is used anywhere the UI shows a member.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
