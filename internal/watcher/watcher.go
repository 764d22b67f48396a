// Package watcher turns a noisy stream of classification samples into stable
// enter/exit/tick transitions. Raw UI events are bursty and misfire during
// scroll-driven layout churn; the stability window stops enter flapping, the
// grace window tolerates missed or empty events, and the tick interval bounds
// callback frequency independent of the raw event rate.
package watcher

import (
	"time"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// SwitchPolicy controls what happens when a different app is detected while
// a transition is already active.
type SwitchPolicy int

const (
	// SwitchDebounced requires the new app to hold the stability window,
	// then fires onExit for the previous app followed by onEnter.
	SwitchDebounced SwitchPolicy = iota
	// SwitchAbsorb keeps the active visit alive on any detected app without
	// firing exit/enter. Used by the session-view watcher, where moving
	// between watched surfaces does not end the visit.
	SwitchAbsorb
)

// Config holds the watcher tunables. All durations are constructor
// parameters; see DefaultShortForm and DefaultSessionView for the values
// used in production.
type Config struct {
	Stable       time.Duration
	ExitGrace    time.Duration
	TickInterval time.Duration
	Switch       SwitchPolicy
	// EnterAtPendingStart back-dates enteredAt to the first pending sample
	// instead of the promotion instant.
	EnterAtPendingStart bool
}

// DefaultShortForm is the configuration for the short-form screen watcher.
func DefaultShortForm() Config {
	return Config{
		Stable:       150 * time.Millisecond,
		ExitGrace:    500 * time.Millisecond,
		TickInterval: 100 * time.Millisecond,
		Switch:       SwitchDebounced,
	}
}

// DefaultSessionView is the configuration for the broader app-visit watcher.
func DefaultSessionView() Config {
	return Config{
		Stable:              300 * time.Millisecond,
		ExitGrace:           20 * time.Second,
		TickInterval:        500 * time.Millisecond,
		Switch:              SwitchAbsorb,
		EnterAtPendingStart: true,
	}
}

// Callbacks receive stable transitions. They run synchronously on the
// caller's goroutine, in sample order. Nil callbacks are skipped.
type Callbacks struct {
	OnEnter func(app domain.WatchedApp, enteredAt time.Time)
	OnExit  func(app domain.WatchedApp, enteredAt, exitedAt time.Time)
	OnTick  func(app domain.WatchedApp, enteredAt, now time.Time, elapsed time.Duration)
}

// Watcher is the debounced transition state machine. It is owned by a single
// event-handling goroutine and holds no lock; samples arrive strictly in
// order from one source.
type Watcher struct {
	cfg Config
	cb  Callbacks

	current      domain.WatchedApp
	enteredAt    time.Time
	pending      domain.WatchedApp
	pendingSince time.Time
	lastSeenAt   time.Time
	lastTickAt   time.Time
}

// New creates a watcher with the given tunables and callbacks.
func New(cfg Config, cb Callbacks) *Watcher {
	return &Watcher{cfg: cfg, cb: cb}
}

// Current returns the active app, or domain.None when idle.
func (w *Watcher) Current() domain.WatchedApp {
	return w.current
}

// Observe feeds one classification result. detected=false (or the zero app)
// means "no classification": an absent app, an unusable snapshot, or an
// unknown package. That feeds the exit-grace path, never an error.
func (w *Watcher) Observe(app domain.WatchedApp, detected bool, now time.Time) {
	if !detected || app.IsNone() {
		w.maybeExit(now)
		return
	}

	w.lastSeenAt = now
	w.handleDetected(app, now)
	w.maybeTick(now)
}

func (w *Watcher) handleDetected(app domain.WatchedApp, now time.Time) {
	if w.current == app {
		return
	}

	if !w.current.IsNone() && w.cfg.Switch == SwitchAbsorb {
		// Visit stays alive across surface changes; enteredAt is kept.
		w.current = app
		return
	}

	if w.pending != app {
		w.pending = app
		w.pendingSince = now
		return
	}

	if now.Sub(w.pendingSince) >= w.cfg.Stable {
		w.promote(app, now)
	}
}

func (w *Watcher) promote(app domain.WatchedApp, now time.Time) {
	if !w.current.IsNone() && w.cb.OnExit != nil {
		w.cb.OnExit(w.current, w.enteredAt, now)
	}

	enteredAt := now
	if w.cfg.EnterAtPendingStart {
		enteredAt = w.pendingSince
	}

	w.current = app
	w.enteredAt = enteredAt
	w.lastTickAt = now
	if w.cb.OnEnter != nil {
		w.cb.OnEnter(app, enteredAt)
	}
}

func (w *Watcher) maybeTick(now time.Time) {
	if w.current.IsNone() {
		return
	}
	if now.Sub(w.lastTickAt) >= w.cfg.TickInterval {
		if w.cb.OnTick != nil {
			w.cb.OnTick(w.current, w.enteredAt, now, now.Sub(w.enteredAt))
		}
		w.lastTickAt = now
	}
}

func (w *Watcher) maybeExit(now time.Time) {
	if w.current.IsNone() || w.lastSeenAt.IsZero() {
		return
	}
	if now.Sub(w.lastSeenAt) < w.cfg.ExitGrace {
		return
	}

	if w.cb.OnExit != nil {
		w.cb.OnExit(w.current, w.enteredAt, now)
	}
	w.current = domain.None
	w.pending = domain.None
	w.pendingSince = time.Time{}
	w.lastSeenAt = time.Time{}
	w.lastTickAt = time.Time{}
}
