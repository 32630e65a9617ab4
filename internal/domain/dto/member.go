package dto

import (
	"time"

	"github.com/lakesidedc/club-server/internal/domain/entity"
)

type MemberProfile struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	College           *string   `json:"college,omitempty"`
	Role              *string   `json:"role,omitempty"`
	IsAdmin           bool      `json:"is_admin"`
	JoinedAt          time.Time `json:"joined_at"`
	Balance           int64     `json:"balance"`
	Lengths           int64     `json:"lengths"`
	LengthsUnderwater int64     `json:"lengths_underwater"`
}

type TransactionEntry struct {
	ID          string    `json:"id"`
	EventID     *string   `json:"event_id,omitempty"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTransactionEntryFromEntity(transaction entity.Transaction) TransactionEntry {
	return TransactionEntry{
		ID:          transaction.ID,
		EventID:     transaction.EventID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

type SwimHistoryEntry struct {
	ID                string    `json:"id"`
	Lengths           int       `json:"lengths"`
	LengthsUnderwater int       `json:"lengths_underwater"`
	RecordedAt        time.Time `json:"recorded_at"`
}

func NewSwimHistoryEntryFromEntity(record entity.SwimHistory) SwimHistoryEntry {
	return SwimHistoryEntry{
		ID:                record.ID,
		Lengths:           record.Lengths,
		LengthsUnderwater: record.LengthsUnderwater,
		RecordedAt:        record.CreatedAt,
	}
}
