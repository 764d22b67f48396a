package ports

import (
	"context"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// ChatStore persists conversation transcripts and exit records.
// A question and its answer share an order index; writes for the same order
// merge into one row.
type ChatStore interface {
	AppendTurn(ctx context.Context, sessionID string, order int, role domain.Sender, text string) error
	LogExit(ctx context.Context, sessionID string, rec domain.ExitRecord) error
	Transcript(ctx context.Context, sessionID string) ([]domain.ChatTurn, error)
}
