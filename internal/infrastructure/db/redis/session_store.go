package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore persists session blobs in Redis with a TTL. Keys passed in by
// the session manager already carry the "session:" prefix, so blobs expire on
// their own even if a logout never arrives.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session load: %w", err)
	}
	return blob, nil
}

func (s *SessionStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, key, blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
