package dialogue

import "sync"

// DefaultSessionID is used when the transport supplies no session identity.
const DefaultSessionID = "default"

// Session owns one conversation's state. Turns for the same session are
// serialized by the session mutex; sessions never share mutable state.
type Session struct {
	ID string

	mu    sync.Mutex
	state State
}

// Sessions maps session ids to live sessions, creating them on first use.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*Session)}
}

// Get returns the session for id, creating it if needed. Empty ids map to
// the default session.
func (m *Sessions) Get(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	m.mu.RLock()
	sess, ok := m.byID[id]
	m.mu.RUnlock()
	if ok {
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.byID[id]; ok {
		return sess
	}
	sess = &Session{ID: id}
	m.byID[id] = sess
	return sess
}
