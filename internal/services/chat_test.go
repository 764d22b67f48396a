package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
	portsmocks "github.com/sanghyeon0114/argue-with-ai/internal/ports/mocks"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var chatT0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type engineFixture struct {
	engine  *Engine
	queue   *TaskQueue
	store   *portsmocks.MockChatStore
	results []domain.ChatResult
	exits   []domain.ExitRecord
}

func newEngineFixture(t *testing.T, generator ports.TurnGenerator) *engineFixture {
	t.Helper()

	f := &engineFixture{
		queue: NewTaskQueue(32),
		store: portsmocks.NewMockChatStore(t),
	}
	f.store.EXPECT().
		AppendTurn(mock.Anything, "sess-1", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Maybe()
	f.store.EXPECT().
		LogExit(mock.Anything, "sess-1", mock.Anything).
		Run(func(ctx context.Context, sessionID string, rec domain.ExitRecord) {
			f.exits = append(f.exits, rec)
		}).
		Return(nil).Maybe()

	f.engine = NewEngine(generator, f.store, fixedClock{chatT0}, f.queue, "sess-1",
		func(r domain.ChatResult) { f.results = append(f.results, r) })
	return f
}

// scriptedGenerator returns one reply per call, in order.
type scriptedGenerator struct {
	replies []ports.TurnReply
	calls   int
}

func (g *scriptedGenerator) GenerateTurn(ctx context.Context, prompt string, history []domain.ChatTurn) (*ports.TurnReply, error) {
	if g.calls >= len(g.replies) {
		return nil, fmt.Errorf("unexpected generation call %d", g.calls)
	}
	r := g.replies[g.calls]
	g.calls++
	return &r, nil
}

func TestEngineFullConversation(t *testing.T) {
	gen := &scriptedGenerator{replies: []ports.TurnReply{
		{Text: "Q1"},
		{Text: "Q2", Score: 1},
		{Text: "Q3", Score: 2},
		{Text: "Q4", Score: -1},
		{Text: "Q5", Score: 3},
		{Text: "Q6", Score: 0},
	}}
	f := newEngineFixture(t, gen)
	ctx := context.Background()

	first, err := f.engine.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q1", first)

	for i := 0; i < NumSteps-1; i++ {
		out, err := f.engine.Submit(ctx, fmt.Sprintf("answer %d", i))
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.False(t, out.Final)
	}

	// Sixth answer brings up the final message instead of a new question
	out, err := f.engine.Submit(ctx, "answer 5")
	require.NoError(t, err)
	assert.True(t, out.Final)
	assert.Equal(t, 6, gen.calls)

	// Any non-empty acknowledgement closes with finished=true
	out, err = f.engine.Submit(ctx, "ok")
	require.NoError(t, err)
	assert.True(t, out.Closed)

	require.Len(t, f.results, 1)
	// The opening question carries no score; 1+2-1+3+0
	assert.Equal(t, 5, f.results[0].TotalScore)
	assert.Equal(t, "final acknowledged", f.results[0].Reason)

	require.NoError(t, f.queue.Close(time.Second))
}

func TestEngineStopPhraseClosesImmediately(t *testing.T) {
	gen := &scriptedGenerator{replies: []ports.TurnReply{{Text: "Q1"}}}
	f := newEngineFixture(t, gen)
	ctx := context.Background()

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)

	out, err := f.engine.Submit(ctx, StopPhrase)
	require.NoError(t, err)
	assert.True(t, out.Closed)

	require.Len(t, f.results, 1)
	assert.Equal(t, "stop phrase", f.results[0].Reason)

	// Closed conversation rejects further input
	_, err = f.engine.Submit(ctx, "more")
	assert.ErrorIs(t, err, domain.ErrConversationClosed)
	require.Len(t, f.results, 1)

	require.NoError(t, f.queue.Close(time.Second))
}

func TestEngineInputValidation(t *testing.T) {
	gen := &scriptedGenerator{replies: []ports.TurnReply{{Text: "Q1"}}}
	f := newEngineFixture(t, gen)
	ctx := context.Background()

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)

	// Empty input is ignored, not an error
	out, err := f.engine.Submit(ctx, "   ")
	require.NoError(t, err)
	assert.Nil(t, out)

	// Too-short input is rejected and the turn stays open
	_, err = f.engine.Submit(ctx, "hm")
	assert.ErrorIs(t, err, domain.ErrInputTooShort)

	assert.Empty(t, f.results)
	require.NoError(t, f.queue.Close(time.Second))
}

func TestEngineFallbackOnGenerationFailure(t *testing.T) {
	generator := portsmocks.NewMockTurnGenerator(t)
	generator.EXPECT().
		GenerateTurn(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	f := newEngineFixture(t, generator)
	ctx := context.Background()

	first, err := f.engine.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, fallbackQuestions[0], first)

	out, err := f.engine.Submit(ctx, "because I was bored")
	require.NoError(t, err)
	assert.Equal(t, fallbackQuestions[1], out.Text)

	// Fallback turns contribute zero score
	assert.Equal(t, 0, f.engine.TotalScore())
	require.NoError(t, f.queue.Close(time.Second))
}

func TestEngineNilGeneratorUsesFallbacks(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()

	first, err := f.engine.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, fallbackQuestions[0], first)

	require.NoError(t, f.queue.Close(time.Second))
}

func TestEngineResultDeliveredExactlyOnce(t *testing.T) {
	gen := &scriptedGenerator{replies: []ports.TurnReply{{Text: "Q1"}}}
	f := newEngineFixture(t, gen)
	ctx := context.Background()

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)

	// Both the surface backgrounding and the explicit destroy fire
	f.engine.Abandon(domain.ExitNavBar, "surface backgrounded")
	f.engine.Abandon(domain.ExitNavBar, "surface destroyed")

	require.Len(t, f.results, 1)
	assert.Equal(t, "surface backgrounded", f.results[0].Reason)

	require.NoError(t, f.queue.Close(time.Second))
}

func TestEngineAbandonAfterFinalRecordsFinished(t *testing.T) {
	gen := &scriptedGenerator{replies: []ports.TurnReply{
		{Text: "Q1"}, {Text: "Q2"}, {Text: "Q3"}, {Text: "Q4"}, {Text: "Q5"}, {Text: "Q6"},
	}}
	f := newEngineFixture(t, gen)
	ctx := context.Background()

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)
	for i := 0; i < NumSteps; i++ {
		_, err := f.engine.Submit(ctx, fmt.Sprintf("answer %d", i))
		require.NoError(t, err)
	}

	// Backgrounding the surface after the final message still counts as a
	// finished conversation
	f.engine.Abandon(domain.ExitNavBar, "surface backgrounded")

	require.NoError(t, f.queue.Close(time.Second))
	require.Len(t, f.exits, 1)
	assert.True(t, f.exits[0].Finished)
	assert.Equal(t, domain.ExitNavBar, f.exits[0].Method)
	require.Len(t, f.results, 1)
	assert.Equal(t, "surface backgrounded", f.results[0].Reason)
}

func TestEngineAbandonBeforeFinalRecordsUnfinished(t *testing.T) {
	gen := &scriptedGenerator{replies: []ports.TurnReply{{Text: "Q1"}}}
	f := newEngineFixture(t, gen)

	_, err := f.engine.Start(context.Background())
	require.NoError(t, err)

	f.engine.Abandon(domain.ExitNavBar, "surface backgrounded")

	require.NoError(t, f.queue.Close(time.Second))
	require.Len(t, f.exits, 1)
	assert.False(t, f.exits[0].Finished)
}

func TestEngineNotUserTurnBeforeStart(t *testing.T) {
	gen := &scriptedGenerator{}
	f := newEngineFixture(t, gen)

	_, err := f.engine.Submit(context.Background(), "hello there")
	assert.ErrorIs(t, err, domain.ErrNotUserTurn)

	require.NoError(t, f.queue.Close(time.Second))
}
