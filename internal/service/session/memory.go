package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is a process-local store for development and tests. Expired
// entries are dropped lazily on lookup.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID string, ttl time.Duration) (string, error) {
	sid := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = entry{userID: userID, expiresAt: s.now().Add(ttl)}
	return sid, nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sid]
	if !ok {
		return "", ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.sessions, sid)
		return "", ErrNotFound
	}
	return e.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
