package ports

import (
	"context"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// TurnReply is one generated conversation turn. Score grades the user's
// previous answer in the range -3..3 and is meaningless on the opening turn.
type TurnReply struct {
	Text  string
	Score int
}

// TurnGenerator is the language-model collaborator. Implementations must
// surface malformed or unparseable model output as an error return; the
// caller degrades to a local fallback question.
type TurnGenerator interface {
	GenerateTurn(ctx context.Context, prompt string, history []domain.ChatTurn) (*TurnReply, error)
}
