package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestStartSession(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.StartSession(ctx, "youtube", 1700000000000, "2023-11-14")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	sessions, err := repo.ListSessions(ctx, "2023-11-14")
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	assert.Equal(t, string(id), sessions[0].ID)
	assert.Equal(t, "youtube", sessions[0].App)
	assert.Equal(t, int64(1700000000000), sessions[0].StartEpochMs)
	assert.False(t, sessions[0].Closed())
}

func TestEndSession(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.StartSession(ctx, "tiktok", 1700000000000, "2023-11-14")
	require.NoError(t, err)

	session, err := repo.EndSession(ctx, id, 1700000042500)
	require.NoError(t, err)

	require.NotNil(t, session.DurationSec)
	assert.Equal(t, int64(42), *session.DurationSec)
	require.NotNil(t, session.EndEpochMs)
	assert.Equal(t, int64(1700000042500), *session.EndEpochMs)
	assert.True(t, session.Closed())
}

func TestEndSessionClampsNegativeDuration(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.StartSession(ctx, "instagram", 1700000010000, "2023-11-14")
	require.NoError(t, err)

	// End timestamp before the recorded start
	session, err := repo.EndSession(ctx, id, 1700000005000)
	require.NoError(t, err)

	require.NotNil(t, session.DurationSec)
	assert.Equal(t, int64(0), *session.DurationSec)
}

func TestEndSessionIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.StartSession(ctx, "youtube", 1700000000000, "2023-11-14")
	require.NoError(t, err)

	first, err := repo.EndSession(ctx, id, 1700000030000)
	require.NoError(t, err)

	// A second close must not move the end timestamp
	second, err := repo.EndSession(ctx, id, 1700000099000)
	require.NoError(t, err)

	assert.Equal(t, *first.EndEpochMs, *second.EndEpochMs)
	assert.Equal(t, *first.DurationSec, *second.DurationSec)
}

func TestEndSessionNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.EndSession(context.Background(), "missing", 1700000000000)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestListSessionsFiltersByDay(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.StartSession(ctx, "youtube", 1700000000000, "2023-11-14")
	require.NoError(t, err)
	_, err = repo.StartSession(ctx, "tiktok", 1700100000000, "2023-11-15")
	require.NoError(t, err)

	sessions, err := repo.ListSessions(ctx, "2023-11-15")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "tiktok", sessions[0].App)

	all, err := repo.ListSessions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListSessionsNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.StartSession(ctx, "first", 1700000000000, "2023-11-14")
	require.NoError(t, err)
	_, err = repo.StartSession(ctx, "second", 1700000060000, "2023-11-14")
	require.NoError(t, err)

	sessions, err := repo.ListSessions(ctx, "2023-11-14")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "second", sessions[0].App)
	assert.Equal(t, "first", sessions[1].App)
}

func TestAppendTurnMergesQuestionAndAnswer(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.StartSession(ctx, "youtube", 1700000000000, "2023-11-14")
	require.NoError(t, err)

	sid := string(id)
	require.NoError(t, repo.AppendTurn(ctx, sid, 0, domain.SenderAI, "Why did you open it?"))
	require.NoError(t, repo.AppendTurn(ctx, sid, 0, domain.SenderUser, "Just bored"))
	require.NoError(t, repo.AppendTurn(ctx, sid, 1, domain.SenderAI, "Was it worth it?"))

	turns, err := repo.Transcript(ctx, sid)
	require.NoError(t, err)
	require.Len(t, turns, 3)

	assert.Equal(t, domain.SenderAI, turns[0].Role)
	assert.Equal(t, "Why did you open it?", turns[0].Text)
	assert.Equal(t, domain.SenderUser, turns[1].Role)
	assert.Equal(t, "Just bored", turns[1].Text)
	assert.Equal(t, domain.SenderAI, turns[2].Role)
}

func TestLogExit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.StartSession(ctx, "youtube", 1700000000000, "2023-11-14")
	require.NoError(t, err)

	err = repo.LogExit(ctx, string(id), domain.ExitRecord{
		AtMs:     1700000030000,
		Finished: true,
		Method:   domain.ExitButton,
		Note:     "finished conversation",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, repo.db.Model(&ChatExitModel{}).Where("session_id = ?", string(id)).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
