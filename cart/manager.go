package cart

import (
	"sync"

	"github.com/Lounge-Area/fivemshop/nui"
	"github.com/google/uuid"
)

// Manager hands out one cart session per browsing session, created
// lazily. Sessions live in memory only.
type Manager struct {
	bridge nui.Bridge

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session registry.
func NewManager(bridge nui.Bridge) *Manager {
	return &Manager{
		bridge:   bridge,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for the given id, creating it when
// the id is empty or unknown. The session's ID method reports the
// effective id to hand back to the client.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if session, ok := m.sessions[id]; ok {
			return session
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	session := NewSession(id, m.bridge)
	m.sessions[id] = session
	return session
}
