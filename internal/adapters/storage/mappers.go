package storage

import (
	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		App:          m.App,
		Day:          m.Day,
		DurationSec:  m.DurationSec,
		EndEpochMs:   m.EndEpochMs,
		EndTime:      m.EndTime,
		ID:           m.ID,
		StartEpochMs: m.StartEpochMs,
		StartTime:    m.StartTime,
	}
}

// turnModelsToTranscript flattens merged question/answer rows into ordered
// turns. Empty halves are skipped so a question awaiting its answer still
// renders.
func turnModelsToTranscript(models []ChatTurnModel) []domain.ChatTurn {
	turns := make([]domain.ChatTurn, 0, len(models)*2)
	for _, m := range models {
		if m.Question != "" {
			turns = append(turns, domain.ChatTurn{Role: domain.SenderAI, Text: m.Question})
		}
		if m.Answer != "" {
			turns = append(turns, domain.ChatTurn{Role: domain.SenderUser, Text: m.Answer})
		}
	}
	return turns
}
