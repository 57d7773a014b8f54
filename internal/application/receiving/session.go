package receiving

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one user's workspace: a handle to exactly one staging list.
// Sessions are never shared and die with the process; uncommitted rows are
// lost when the client drops its session, matching the workflow's implicit
// cancellation.
type Session struct {
	ID        string
	Staging   *StagingList
	CreatedAt time.Time
}

// SessionStore keeps the live sessions keyed by ID.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get looks up a session by ID.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Create starts a fresh session with an empty staging list.
func (s *SessionStore) Create() *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		Staging:   NewStagingList(),
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// GetOrCreate resolves the given ID, falling back to a new session when the
// ID is empty or unknown (expired process restarts look like new sessions).
func (s *SessionStore) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess
		}
	}
	return s.Create()
}
