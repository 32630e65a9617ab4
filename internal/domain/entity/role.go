package entity

import "time"

// Role groups permissions. A role may be scoped so its event-management
// permissions apply only to events carrying the listed tags.
type Role struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	Name        string       `gorm:"not null;uniqueIndex"`
	Permissions []Permission `gorm:"many2many:role_permissions"`
	ManagedTags []Tag        `gorm:"many2many:role_managed_tags"`
}

type Permission struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Slug        string `gorm:"not null;uniqueIndex"`
	Description string
}
