package sqlite

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

type TransactionStorage struct {
	db *gorm.DB
}

func NewTransactionStorage(db *gorm.DB) *TransactionStorage {
	return &TransactionStorage{
		db: db,
	}
}

// Create is a function that creates a new ledger entry in the database.
func (s *TransactionStorage) Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	err := s.db.WithContext(ctx).Create(&transaction).Error
	return transaction, err
}

// GetByUserID is a function that gets a user's ledger entries, newest first.
func (s *TransactionStorage) GetByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

// BalanceByUserID is a function that sums a user's signed ledger entries.
func (s *TransactionStorage) BalanceByUserID(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := s.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	return balance, err
}
