package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrRefreshNotFound is returned when no live refresh token exists for
	// a subject.
	ErrRefreshNotFound = errors.New("refresh token not found")
	// ErrRedisUnavailable wraps transport-level Redis failures.
	ErrRedisUnavailable = errors.New("redis unavailable")
)

// RefreshStore maps a subject identifier to its single currently-valid
// refresh token. Writes are unconditional overwrites, so issuing a new
// refresh token implicitly invalidates the previous one; last writer wins
// under concurrent logins.
type RefreshStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRefreshStore creates a RefreshStore using the given key prefix
// ("refresh_token" when empty).
func NewRefreshStore(redisClient redis.UniversalClient, prefix string) *RefreshStore {
	if prefix == "" {
		prefix = "refresh_token"
	}
	return &RefreshStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *RefreshStore) key(subject string) string {
	return s.prefix + ":" + subject
}

// Put records token as the subject's current refresh token. The TTL equals
// the token's remaining validity so the entry expires with the token.
func (s *RefreshStore) Put(ctx context.Context, subject, token string, ttl time.Duration) error {
	if err := s.redis.Set(ctx, s.key(subject), token, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Get returns the subject's current refresh token, or ErrRefreshNotFound.
func (s *RefreshStore) Get(ctx context.Context, subject string) (string, error) {
	val, err := s.redis.Get(ctx, s.key(subject)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrRefreshNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return val, nil
}

// Delete removes the subject's refresh entry. Used for logout-everywhere
// and token compromise response; deleting a missing entry is not an error.
func (s *RefreshStore) Delete(ctx context.Context, subject string) error {
	if err := s.redis.Del(ctx, s.key(subject)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
