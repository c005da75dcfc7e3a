package memory

import (
	"context"
	"sync"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// SessionStore keeps session blobs in a map. Used when no Redis is
// configured and by the session manager tests.
type SessionStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{blobs: make(map[string][]byte)}
}

func (s *SessionStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *SessionStore) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored
	return nil
}

func (s *SessionStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
