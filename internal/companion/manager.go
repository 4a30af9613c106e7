package companion

import (
	"math/rand"
	"sync"
	"time"
)

// Manager owns the sessions of one process, keyed by session ID. Each session
// has its own memory store, so conversations never leak into each other.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managedSession
	ttl      time.Duration
	newRand  func() *rand.Rand
	now      func() time.Time
}

type managedSession struct {
	session  *Session
	lastSeen time.Time
}

// NewManager creates a session manager. Sessions idle longer than ttl are
// evicted on the next access; ttl <= 0 disables eviction.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*managedSession),
		ttl:      ttl,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

// Get returns the session for id, creating it on first use.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictIdleLocked()

	entry, ok := m.sessions[id]
	if !ok {
		entry = &managedSession{session: NewSession(id, m.newRand())}
		m.sessions[id] = entry
	}
	entry.lastSeen = m.now()
	return entry.session
}

// Remove drops a session entirely, ending its lifetime.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports how many live sessions are held.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) evictIdleLocked() {
	if m.ttl <= 0 {
		return
	}
	cutoff := m.now().Add(-m.ttl)
	for id, entry := range m.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
