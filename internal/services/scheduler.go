package services

import (
	"sync"
	"time"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
)

// DefaultCooldown is how long continuous short-form watching runs before a
// conversation is raised.
const DefaultCooldown = 5 * time.Minute

// Scheduler decides, per watcher tick, whether to raise a reflective
// conversation. One mutex guards all shared flags; the trigger callback runs
// outside the lock.
type Scheduler struct {
	startChat func(app domain.WatchedApp)

	mu                sync.Mutex
	enabled           bool
	cooldown          time.Duration
	promptVisible     bool
	suppressUntilExit bool
	lastScore         int
	currentWatch      time.Duration
	carriedWatch      time.Duration
}

// NewScheduler creates a new Scheduler. startChat opens the conversation
// surface; the result comes back through OnChatResult.
func NewScheduler(cooldown time.Duration, enabled bool, startChat func(app domain.WatchedApp)) *Scheduler {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Scheduler{
		startChat: startChat,
		enabled:   enabled,
		cooldown:  cooldown,
	}
}

// OnTick handles one watcher tick with the accumulated watch time of the
// current run. Carried-over time from earlier runs in the same app visit
// counts toward the cooldown.
func (s *Scheduler) OnTick(app domain.WatchedApp, watched time.Duration) {
	s.mu.Lock()
	if !s.enabled || s.promptVisible || s.suppressUntilExit {
		s.mu.Unlock()
		return
	}

	s.currentWatch = watched
	elapsed := s.carriedWatch + s.currentWatch
	if elapsed < s.cooldown {
		s.mu.Unlock()
		return
	}

	s.carriedWatch = 0
	s.currentWatch = 0
	s.promptVisible = true
	s.mu.Unlock()

	logging.Logger.Info("cooldown reached, raising conversation",
		"app", app.Label,
		"watched", elapsed,
	)
	s.startChat(app)
}

// OnShortFormExit banks the run's watch time so brief blips out of the
// short-form screen don't reset the cooldown.
func (s *Scheduler) OnShortFormExit(watched time.Duration) {
	s.mu.Lock()
	s.carriedWatch += watched
	s.currentWatch = 0
	s.mu.Unlock()
}

// OnChatResult records the conversation outcome. A positive total score
// suppresses further prompts until the app visit ends.
func (s *Scheduler) OnChatResult(result domain.ChatResult) {
	s.mu.Lock()
	s.lastScore = result.TotalScore
	s.suppressUntilExit = result.TotalScore > 0
	s.promptVisible = false
	s.mu.Unlock()

	logging.Logger.Info("conversation finished",
		"reason", result.Reason,
		"score", result.TotalScore,
		"suppressed", result.TotalScore > 0,
	)
}

// OnSessionViewExit clears suppression and the watch counters when the user
// leaves the whole watched-app surface. Suppression is scoped to one visit.
func (s *Scheduler) OnSessionViewExit() {
	s.mu.Lock()
	s.suppressUntilExit = false
	s.carriedWatch = 0
	s.currentWatch = 0
	s.mu.Unlock()
}

// SetEnabled flips the intervention toggle at runtime.
func (s *Scheduler) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

// Suppressed reports whether prompts are currently suppressed.
func (s *Scheduler) Suppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppressUntilExit
}

// PromptVisible reports whether a conversation is currently open.
func (s *Scheduler) PromptVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promptVisible
}

// LastScore returns the most recent conversation's total score.
func (s *Scheduler) LastScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastScore
}
