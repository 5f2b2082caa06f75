package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in a process-local map. This is the default
// store: abandoned sessions live until overwritten or the process restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]Session),
	}
}

func (s *MemoryStore) Get(_ context.Context, chatID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return nil, nil
	}
	// Copy so callers never mutate the stored value in place.
	return &sess, nil
}

func (s *MemoryStore) Set(_ context.Context, chatID int64, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = *sess
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
	return nil
}

var _ Store = (*MemoryStore)(nil)
