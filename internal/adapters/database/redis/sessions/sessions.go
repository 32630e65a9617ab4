package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage keeps session tokens mapped to user IDs. Tokens expire on their
// own; ClearAll exists so bootstrap code can invalidate every live session.
type Storage struct {
	redis *redis.Client
}

func NewStorage(redisClient *redis.Client) *Storage {
	return &Storage{
		redis: redisClient,
	}
}

// Set stores a session token for the user with the given lifetime.
func (s *Storage) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.redis.Set(ctx, token, userID, ttl).Err()
}

// Get returns the user ID for a session token, or empty string if the token
// is unknown or expired.
func (s *Storage) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.redis.Get(ctx, token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return userID, err
}

// Delete removes a single session token.
func (s *Storage) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, token).Err()
}

// ClearAll drops every session in the store.
func (s *Storage) ClearAll(ctx context.Context) error {
	return s.redis.FlushDB(ctx).Err()
}
