package memory

import (
	"sync"
	"time"

	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// sessionEntry pairs a session with its in-flight mark. The busy flag is what
// serializes mutations per session: while it is set, AcquireSession fails
// fast instead of handing the session to a second caller.
type sessionEntry struct {
	session *domain.InterviewSession
	busy    bool
}

// MemorySessionStore struct - Output adapter for in-memory session storage.
// A plain map guarded by a mutex; the mutex only covers map and busy-flag
// bookkeeping, never reasoning-service round trips, so acquisition is always
// fast regardless of how long a holder works with the session.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewMemorySessionStore creates a new in-memory session store. Session expiry
// is carried by the sessions themselves; the store performs lazy cleanup of
// expired entries on access.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*sessionEntry),
	}
}

// CreateSession stores a newly started interview session under its ID.
func (m *MemorySessionStore) CreateSession(session *domain.InterviewSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastAccessTime = time.Now()
	m.sessions[session.ID] = &sessionEntry{session: session}

	return nil
}

// AcquireSession retrieves a session by ID and marks it in-flight.
// Returns domain.ErrSessionNotFound if the session does not exist or has
// expired (expired sessions are deleted - lazy cleanup), and
// domain.ErrSessionBusy if another caller currently holds it.
// LastAccessTime is updated for valid sessions.
func (m *MemorySessionStore) AcquireSession(sessionID string) (*domain.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.sessions[sessionID]
	if !exists {
		return nil, domain.ErrSessionNotFound
	}

	// A held session is never reaped out from under its holder
	if !entry.busy && entry.session.IsExpired() {
		delete(m.sessions, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	if entry.busy {
		return nil, domain.ErrSessionBusy
	}

	entry.busy = true
	entry.session.LastAccessTime = time.Now()

	return entry.session, nil
}

// ReleaseSession clears the in-flight mark. Releasing a session that is not
// held, or that was deleted while held, is a no-op.
func (m *MemorySessionStore) ReleaseSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, exists := m.sessions[sessionID]; exists {
		entry.busy = false
	}
}

// DeleteSession removes a session by ID.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
