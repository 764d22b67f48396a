package services

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
)

// NumSteps is the number of question/answer rounds before the final message.
const NumSteps = 6

// StopPhrase closes the conversation immediately from any user turn.
const StopPhrase = "stop talking"

// minAnswerLen is the minimum rune count for a regular answer.
const minAnswerLen = 3

// personaPreamble frames every generation request.
const personaPreamble = "You are a blunt but caring friend interrupting a " +
	"short-form video binge. Reply with one short sentence. Also grade the " +
	"user's previous answer from -3 (defensive, dismissive) to 3 (honest, " +
	"reflective); use 0 when there is no previous answer."

// stepIntents steer each generated question.
var stepIntents = [NumSteps]string{
	"Ask why they opened the app just now.",
	"Ask what they were hoping to feel when they started watching.",
	"Ask whether the videos actually delivered that feeling.",
	"Ask what they were doing before they picked up the phone.",
	"Ask how they expect to feel an hour from now if they keep scrolling.",
	"Ask what they would rather have done with this time.",
}

// fallbackQuestions stand in when generation fails. A fallback turn
// contributes zero score.
var fallbackQuestions = [NumSteps]string{
	"Why did you open the app just now?",
	"What were you hoping to feel?",
	"Did the videos actually give you that?",
	"What were you doing before you picked up the phone?",
	"How will you feel in an hour if you keep going?",
	"What would you rather have done with this time?",
}

// finalMessage is shown after the last answered step. Any non-empty reply to
// it acknowledges and closes the conversation.
const finalMessage = "That's everything I wanted to ask. Close this whenever you're ready."

// TurnOutcome is what the conversation surface renders after a submission.
type TurnOutcome struct {
	Text   string
	Final  bool
	Closed bool
}

// Engine drives one reflective conversation: six generated questions, a
// final message, score accumulation, transcript persistence and exactly-once
// result delivery.
type Engine struct {
	generator ports.TurnGenerator
	store     ports.ChatStore
	clock     ports.Clock
	queue     *TaskQueue
	sessionID string
	onResult  func(domain.ChatResult)

	mu         sync.Mutex
	started    bool
	closed     bool
	resultSent bool
	awaitUser  bool
	finalShown bool
	turnIndex  int
	totalScore int
	history    []domain.ChatTurn
}

// NewEngine creates a new Engine bound to one session. The result callback
// fires exactly once, on whichever close path happens first.
func NewEngine(
	generator ports.TurnGenerator,
	store ports.ChatStore,
	clock ports.Clock,
	queue *TaskQueue,
	sessionID string,
	onResult func(domain.ChatResult),
) *Engine {
	return &Engine{
		generator: generator,
		store:     store,
		clock:     clock,
		queue:     queue,
		sessionID: sessionID,
		onResult:  onResult,
	}
}

// Start generates and returns the opening question. The first turn carries
// no score; there is no answer to grade yet.
func (e *Engine) Start(ctx context.Context) (string, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return "", domain.ErrConversationClosed
	}
	if e.started {
		e.mu.Unlock()
		return "", domain.ErrNotUserTurn
	}
	e.started = true
	e.mu.Unlock()

	text := e.generateQuestion(ctx, 0, nil)

	e.mu.Lock()
	e.turnIndex = 0
	e.awaitUser = true
	e.history = append(e.history, domain.ChatTurn{Role: domain.SenderAI, Text: text})
	e.mu.Unlock()

	e.persistTurn(0, domain.SenderAI, text)
	return text, nil
}

// Submit handles one user input. Empty input is ignored. The stop phrase
// closes immediately; while the final message is shown any non-empty input
// acknowledges and closes; otherwise answers shorter than three runes are
// rejected.
func (e *Engine) Submit(ctx context.Context, text string) (*TurnOutcome, error) {
	trimmed := strings.TrimSpace(text)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, domain.ErrConversationClosed
	}
	if !e.awaitUser {
		e.mu.Unlock()
		return nil, domain.ErrNotUserTurn
	}
	if trimmed == "" {
		e.mu.Unlock()
		return nil, nil
	}
	if strings.EqualFold(trimmed, StopPhrase) {
		e.mu.Unlock()
		e.close(false, domain.ExitButton, "stop phrase")
		return &TurnOutcome{Closed: true}, nil
	}
	if e.finalShown {
		e.mu.Unlock()
		e.close(true, domain.ExitButton, "final acknowledged")
		return &TurnOutcome{Closed: true}, nil
	}
	if utf8.RuneCountInString(trimmed) < minAnswerLen {
		e.mu.Unlock()
		return nil, domain.ErrInputTooShort
	}

	answeredStep := e.turnIndex
	e.awaitUser = false
	e.history = append(e.history, domain.ChatTurn{Role: domain.SenderUser, Text: trimmed})
	history := make([]domain.ChatTurn, len(e.history))
	copy(history, e.history)
	e.mu.Unlock()

	e.persistTurn(answeredStep, domain.SenderUser, trimmed)

	if answeredStep == NumSteps-1 {
		e.mu.Lock()
		e.finalShown = true
		e.awaitUser = true
		e.turnIndex++
		e.history = append(e.history, domain.ChatTurn{Role: domain.SenderAI, Text: finalMessage})
		e.mu.Unlock()

		e.persistTurn(answeredStep+1, domain.SenderAI, finalMessage)
		return &TurnOutcome{Text: finalMessage, Final: true}, nil
	}

	next := e.generateQuestion(ctx, answeredStep+1, history)

	e.mu.Lock()
	e.turnIndex++
	e.awaitUser = true
	e.history = append(e.history, domain.ChatTurn{Role: domain.SenderAI, Text: next})
	e.mu.Unlock()

	e.persistTurn(answeredStep+1, domain.SenderAI, next)
	return &TurnOutcome{Text: next}, nil
}

// Abandon closes the conversation from outside the turn flow, e.g. when the
// surface loses foreground. The exit record still reflects whether the final
// message had been reached. Safe to call more than once.
func (e *Engine) Abandon(method domain.ExitMethod, note string) {
	e.mu.Lock()
	finished := e.finalShown
	e.mu.Unlock()
	e.close(finished, method, note)
}

// TotalScore returns the score accumulated so far.
func (e *Engine) TotalScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalScore
}

// generateQuestion asks the model for the next turn, folding its score into
// the running total. Failures degrade to the step's fallback question with a
// zero score contribution.
func (e *Engine) generateQuestion(ctx context.Context, step int, history []domain.ChatTurn) string {
	if e.generator == nil {
		return fallbackQuestions[step]
	}

	prompt := personaPreamble + " " + stepIntents[step]

	reply, err := e.generator.GenerateTurn(ctx, prompt, history)
	if err != nil {
		logging.Logger.Warn("turn generation failed, using fallback",
			"step", step,
			"error", err,
		)
		return fallbackQuestions[step]
	}

	if step > 0 {
		e.mu.Lock()
		e.totalScore += reply.Score
		e.mu.Unlock()
	}
	return reply.Text
}

// persistTurn writes one transcript half on the task queue.
func (e *Engine) persistTurn(order int, role domain.Sender, text string) {
	e.queue.Submit(func(ctx context.Context) {
		if err := e.store.AppendTurn(ctx, e.sessionID, order, role, text); err != nil {
			logging.Logger.Error("failed to persist chat turn",
				"session", e.sessionID,
				"order", order,
				"error", err,
			)
		}
	})
}

// close records the exit and delivers the result. Only the first call does
// anything; later close attempts are silent no-ops.
func (e *Engine) close(finished bool, method domain.ExitMethod, note string) {
	e.mu.Lock()
	if e.resultSent {
		e.mu.Unlock()
		return
	}
	e.resultSent = true
	e.closed = true
	e.awaitUser = false
	score := e.totalScore
	e.mu.Unlock()

	rec := domain.ExitRecord{
		Finished: finished,
		Method:   method,
		Note:     note,
		AtMs:     e.clock.Now().UnixMilli(),
	}
	e.queue.Submit(func(ctx context.Context) {
		if err := e.store.LogExit(ctx, e.sessionID, rec); err != nil {
			logging.Logger.Error("failed to log conversation exit",
				"session", e.sessionID,
				"error", err,
			)
		}
	})

	if e.onResult != nil {
		e.onResult(domain.ChatResult{Reason: note, TotalScore: score})
	}
}
