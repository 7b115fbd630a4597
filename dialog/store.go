package dialog

import (
	"sync"

	"github.com/freshauto/intakebot/types"
)

// Store is the in-memory session repository keyed by conversation id.
// The chat transport serializes messages per conversation, so the mutex only
// guards against concurrent access across conversations.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*types.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*types.Session)}
}

// Get returns the session for the conversation, creating an idle one on
// first contact.
func (s *Store) Get(conversationID string) *types.Session {
	s.mu.RLock()
	session, ok := s.sessions[conversationID]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok = s.sessions[conversationID]; ok {
		return session
	}
	session = &types.Session{Step: types.StepIdle}
	s.sessions[conversationID] = session
	return session
}

// Delete removes the session record entirely.
func (s *Store) Delete(conversationID string) {
	s.mu.Lock()
	delete(s.sessions, conversationID)
	s.mu.Unlock()
}

// Len reports how many conversations currently hold a session.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
