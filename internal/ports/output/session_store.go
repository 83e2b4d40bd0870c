package output

import "golang-health-portal/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for managing interview sessions.
// Sessions store the question/answer transcript of a clinical intake
// interview. Implementations must be thread-safe and must serialize
// mutations per session identifier: at most one caller may hold a session
// between Acquire and Release at any time.
type SessionStore interface {
	// CreateSession stores a newly started interview session under its ID.
	// Returns an error if the session cannot be stored.
	CreateSession(session *domain.InterviewSession) error

	// AcquireSession retrieves a session by ID and marks it in-flight so no
	// other caller can mutate it until ReleaseSession is called.
	// Returns domain.ErrSessionNotFound if the session does not exist or has
	// expired (expired sessions are deleted lazily), and domain.ErrSessionBusy
	// if another caller currently holds the session. LastAccessTime is updated
	// for valid sessions.
	AcquireSession(sessionID string) (*domain.InterviewSession, error)

	// ReleaseSession clears the in-flight mark set by AcquireSession.
	// Releasing a session that is not held, or no longer exists, is a no-op.
	ReleaseSession(sessionID string)

	// DeleteSession removes a session by ID.
	// This operation is idempotent - deleting a non-existent session
	// should not return an error.
	DeleteSession(sessionID string) error
}
