package services

import (
	"context"
	"sync"
	"time"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
)

// RecorderService turns watcher enter/exit callbacks into persisted usage
// sessions. At most one session is open at a time; writes run on the shared
// task queue so the watcher path never blocks on the database.
type RecorderService struct {
	store ports.SessionWriter
	queue *TaskQueue

	mu      sync.Mutex
	current ports.SessionID
}

// NewRecorderService creates a new RecorderService
func NewRecorderService(store ports.SessionWriter, queue *TaskQueue) *RecorderService {
	return &RecorderService{
		store: store,
		queue: queue,
	}
}

// Enter opens a session for the app at the given instant.
func (r *RecorderService) Enter(app domain.WatchedApp, at time.Time) {
	startEpochMs := at.UnixMilli()
	day := domain.DayUTC(at)

	r.queue.Submit(func(ctx context.Context) {
		r.mu.Lock()
		open := r.current
		r.mu.Unlock()
		if open != "" {
			logging.Logger.Warn("enter with a session already open, ignoring",
				"app", app.Label,
				"id", open,
			)
			return
		}

		id, err := r.store.StartSession(ctx, app.Label, startEpochMs, day)
		if err != nil {
			logging.Logger.Error("failed to start session",
				"app", app.Label,
				"error", err,
			)
			return
		}

		r.mu.Lock()
		r.current = id
		r.mu.Unlock()

		logging.Logger.Debug("session started", "app", app.Label, "id", id)
	})
}

// Exit closes the open session, if any, at the given instant. The open id is
// taken and cleared under the lock; the database write happens outside it.
func (r *RecorderService) Exit(app domain.WatchedApp, at time.Time) {
	endEpochMs := at.UnixMilli()

	r.queue.Submit(func(ctx context.Context) {
		r.mu.Lock()
		id := r.current
		r.current = ""
		r.mu.Unlock()

		if id == "" {
			logging.Logger.Warn("exit without an open session", "app", app.Label)
			return
		}

		session, err := r.store.EndSession(ctx, id, endEpochMs)
		if err != nil {
			logging.Logger.Error("failed to end session",
				"app", app.Label,
				"id", id,
				"error", err,
			)
			return
		}

		logging.Logger.Info("session recorded",
			"app", session.App,
			"duration_sec", session.DurationSec,
		)
	})
}

// CurrentID returns the open session id, or empty when none is open.
func (r *RecorderService) CurrentID() ports.SessionID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// CloseDangling closes any session left open, stamping the end at the given
// instant. Used on shutdown so a crash mid-binge still yields a row.
func (r *RecorderService) CloseDangling(at time.Time) {
	r.Exit(domain.None, at)
}
