package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedMarker = "revoked"

// RevocationStore is a TTL-backed set of revoked access token identifiers.
// An identifier stays in the set exactly as long as the token it denies
// would otherwise remain valid; after natural expiry the entry is redundant
// and Redis drops it.
type RevocationStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRevocationStore creates a RevocationStore using the given key prefix
// ("blacklist" when empty).
func NewRevocationStore(redisClient redis.UniversalClient, prefix string) *RevocationStore {
	if prefix == "" {
		prefix = "blacklist"
	}
	return &RevocationStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *RevocationStore) key(tokenID string) string {
	return s.prefix + ":" + tokenID
}

// Add records tokenID as revoked for ttl. A non-positive ttl is a silent
// no-op: an already-expired token needs no revocation entry, and clamping
// here keeps Logout idempotent.
func (s *RevocationStore) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.Set(ctx, s.key(tokenID), revokedMarker, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Contains reports whether tokenID is revoked. This is an O(1) membership
// check and must run before any claim in the token is trusted.
func (s *RevocationStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return n > 0, nil
}
