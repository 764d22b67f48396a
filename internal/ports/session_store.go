package ports

import (
	"context"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// SessionID is the opaque identifier of a persisted usage session.
type SessionID string

// SessionWriter opens and closes usage sessions.
type SessionWriter interface {
	// StartSession creates an open session document and returns its id.
	StartSession(ctx context.Context, app string, startEpochMs int64, day string) (SessionID, error)
	// EndSession closes the session in a read-then-conditional-write
	// transaction. Duration is computed from the session's own recorded
	// start, clamped at zero. Returns domain.ErrSessionNotFound when the
	// document vanished; an already-closed session is returned unchanged.
	EndSession(ctx context.Context, id SessionID, endEpochMs int64) (*domain.Session, error)
}

// SessionReader reads recorded usage sessions.
type SessionReader interface {
	// ListSessions returns sessions for a day bucket, newest first.
	// An empty day returns all sessions.
	ListSessions(ctx context.Context, day string) ([]domain.Session, error)
}

// SessionStore is the composite persistence collaborator for sessions.
type SessionStore interface {
	SessionWriter
	SessionReader
	Close() error
}
