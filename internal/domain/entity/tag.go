package entity

import "time"

type TagPolicy string

const (
	TagPolicyOpen      TagPolicy = "open"
	TagPolicyWhitelist TagPolicy = "whitelist"
	TagPolicyRole      TagPolicy = "role"
)

// Tag labels events and gates who may see or self-enrol in them.
type Tag struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	CreatedAt  time.Time
	Name       string    `gorm:"not null;uniqueIndex"`
	JoinPolicy TagPolicy `gorm:"not null;default:open"`
	ViewPolicy TagPolicy `gorm:"not null;default:open"`
}
