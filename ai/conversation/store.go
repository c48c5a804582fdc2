package conversation

import (
	"context"
	"sync"

	"fleur-api/ai/completion"
)

// SessionStore persists conversation transcripts keyed by session id.
type SessionStore interface {
	// Get returns the transcript for a session, oldest turn first. A
	// session that does not exist yet returns an empty transcript, not an
	// error.
	Get(ctx context.Context, sessionID string) ([]completion.Turn, error)
	// Append adds turns to a session, creating it on first write.
	Append(ctx context.Context, sessionID, userID string, turns ...completion.Turn) error
}

// InMemoryStore is a SessionStore for tests and single-process use.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]completion.Turn
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]completion.Turn)}
}

func (s *InMemoryStore) Get(ctx context.Context, sessionID string) ([]completion.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.sessions[sessionID]
	out := make([]completion.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *InMemoryStore) Append(ctx context.Context, sessionID, userID string, turns ...completion.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], turns...)
	return nil
}
