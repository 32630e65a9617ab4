package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/dto"
	"github.com/lakesidedc/club-server/internal/domain/entity"
)

type TransactionStorage interface {
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	BalanceByUserID(ctx context.Context, userID string) (int64, error)
}

type SwimHistoryStorage interface {
	Create(ctx context.Context, record *entity.SwimHistory) (*entity.SwimHistory, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.SwimHistory, error)
	TotalsByUserID(ctx context.Context, userID string) (lengths, underwater int64, err error)
}

type memberCollegeStorage interface {
	Get(ctx context.Context, id string) (*entity.College, error)
}

type memberRoleStorage interface {
	Get(ctx context.Context, id string) (*entity.Role, error)
}

// MemberService assembles the member-facing view of a user: account fields,
// college and role names, ledger balance and swim-test totals.
type MemberService struct {
	userStorage        UserStorage
	collegeStorage     memberCollegeStorage
	roleStorage        memberRoleStorage
	transactionStorage TransactionStorage
	swimStorage        SwimHistoryStorage
}

func NewMemberService(
	userStorage UserStorage,
	collegeStorage memberCollegeStorage,
	roleStorage memberRoleStorage,
	transactionStorage TransactionStorage,
	swimStorage SwimHistoryStorage,
) *MemberService {
	return &MemberService{
		userStorage:        userStorage,
		collegeStorage:     collegeStorage,
		roleStorage:        roleStorage,
		transactionStorage: transactionStorage,
		swimStorage:        swimStorage,
	}
}

// Profile returns the member profile for a user id.
func (s *MemberService) Profile(ctx context.Context, userID string) (*dto.MemberProfile, error) {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.MemberProfile{
		ID:       user.ID,
		FullName: user.FullName(),
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		JoinedAt: user.JoinedAt,
	}

	if user.CollegeID != nil {
		college, collegeErr := s.collegeStorage.Get(ctx, *user.CollegeID)
		if collegeErr != nil {
			return nil, collegeErr
		}
		profile.College = &college.Name
	}
	if user.RoleID != nil {
		role, roleErr := s.roleStorage.Get(ctx, *user.RoleID)
		if roleErr != nil {
			return nil, roleErr
		}
		profile.Role = &role.Name
	}

	profile.Balance, err = s.transactionStorage.BalanceByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Lengths, profile.LengthsUnderwater, err = s.swimStorage.TotalsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Transactions returns the user's ledger entries, newest first.
func (s *MemberService) Transactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	if _, err := s.userStorage.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.transactionStorage.GetByUserID(ctx, userID)
}

// SwimHistory returns the user's swim-test records in chronological order.
func (s *MemberService) SwimHistory(ctx context.Context, userID string) ([]entity.SwimHistory, error) {
	if _, err := s.userStorage.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.swimStorage.GetByUserID(ctx, userID)
}

// RecordSwim appends a swim-test record for a user, attributed to the
// member who recorded it.
func (s *MemberService) RecordSwim(ctx context.Context, userID, recordedByID string, lengths, underwater int) (*entity.SwimHistory, error) {
	if lengths < 0 || underwater < 0 {
		return nil, fmt.Errorf("swim record cannot have negative lengths")
	}
	if underwater > lengths {
		return nil, fmt.Errorf("underwater lengths %d exceed total lengths %d", underwater, lengths)
	}
	if _, err := s.userStorage.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.swimStorage.Create(ctx, &entity.SwimHistory{
		ID:                uuid.NewString(),
		UserID:            userID,
		Lengths:           lengths,
		LengthsUnderwater: underwater,
		RecordedByID:      recordedByID,
	})
}

// RecordTransaction appends a signed ledger entry for a user.
func (s *MemberService) RecordTransaction(ctx context.Context, userID string, amount int, description string) (*entity.Transaction, error) {
	if description == "" {
		return nil, fmt.Errorf("transaction needs a description")
	}
	if _, err := s.userStorage.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.transactionStorage.Create(ctx, &entity.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
	})
}
