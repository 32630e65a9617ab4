package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/internal/domain/utils/validator"
	"golang.org/x/crypto/bcrypt"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

// Create hashes the given plaintext password and stores the user.
func (s *UserService) Create(ctx context.Context, user entity.User, password string) (*entity.User, error) {
	if !validator.Email(user.Email) {
		return nil, fmt.Errorf("invalid email %q", user.Email)
	}
	if !validator.Name(user.FirstName) || !validator.Name(user.LastName) {
		return nil, fmt.Errorf("invalid name %q", user.FullName())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now()
	}

	return s.userStorage.Create(ctx, &user)
}

func (s *UserService) Get(ctx context.Context, userID string) (*entity.User, error) {
	return s.userStorage.Get(ctx, userID)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.userStorage.GetByEmail(ctx, email)
}

// Authenticate checks the email/password pair and returns the user on match.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.userStorage.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}
	return user, nil
}
