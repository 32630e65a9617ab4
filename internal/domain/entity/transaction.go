package entity

import "time"

// Transaction is a signed ledger entry in pence. Positive amounts are credits
// to the member's account, negative amounts are charges.
type Transaction struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UserID      string `gorm:"not null;type:uuid;index"`
	User        User
	EventID     *string `gorm:"type:uuid"`
	Event       *Event
	Amount      int    `gorm:"not null"`
	Description string `gorm:"not null"`
}
