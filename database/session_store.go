package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docchat/docchat-be/types"
)

// Session associates an uploaded document's index with its conversation
// history for the lifetime of the process.
type Session struct {
	ID        string
	Filename  string
	Index     *DocumentIndex
	History   []types.Message
	CreatedAt time.Time
}

// SessionStore is a registry of sessions keyed by generated identifiers.
// It replaces the implicit process-wide slot of earlier designs: every
// upload gets its own id, and all access goes through the mutex.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// snapshot copies the session while the store lock is held, so callers can
// read the result without synchronizing with later Replace/AppendTurn calls.
func (s *Session) snapshot() *Session {
	out := *s
	out.History = append([]types.Message(nil), s.History...)
	return &out
}

// Create registers a freshly built index under a new unique id.
func (s *SessionStore) Create(index *DocumentIndex, filename string) *Session {
	session := &Session{
		ID:        uuid.NewString(),
		Filename:  filename,
		Index:     index,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session.snapshot()
}

// Get returns a snapshot of the session taken under the lock. The index
// pointer and history are consistent with each other; a concurrent Replace
// yields either the old or the new state, never a torn one.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// Replace swaps the session's index wholesale. The old index is discarded,
// never merged, and the conversation history is reset: answers after a
// replacement derive only from the new document.
func (s *SessionStore) Replace(id string, index *DocumentIndex, filename string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	session.Index = index
	session.Filename = filename
	session.History = nil
	return session.snapshot(), nil
}

// AppendTurn records a completed (question, answer) exchange.
func (s *SessionStore) AppendTurn(id, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return types.ErrSessionNotFound
	}
	session.History = append(session.History,
		types.Message{Role: types.RoleUser, Content: question},
		types.Message{Role: types.RoleAssistant, Content: answer},
	)
	return nil
}

// History returns a copy of the session's conversation so callers never
// observe a slice being appended to concurrently.
func (s *SessionStore) History(id string) ([]types.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	history := make([]types.Message, len(session.History))
	copy(history, session.History)
	return history, nil
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
