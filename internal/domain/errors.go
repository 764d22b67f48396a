package domain

import "errors"

// Sentinel errors shared across services and adapters.
var (
	// ErrSessionNotFound is returned when closing a session whose document
	// no longer exists in the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrConversationClosed is returned by engine operations after the
	// conversation reached its terminal state.
	ErrConversationClosed = errors.New("conversation already closed")

	// ErrNotUserTurn is returned when input arrives while the engine is
	// waiting on the model.
	ErrNotUserTurn = errors.New("not the user's turn")

	// ErrInputTooShort is returned for non-empty input below the minimum
	// answer length.
	ErrInputTooShort = errors.New("input too short")
)
