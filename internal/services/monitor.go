package services

import (
	"context"
	"time"

	"github.com/sanghyeon0114/argue-with-ai/internal/classifier"
	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
	"github.com/sanghyeon0114/argue-with-ai/internal/watcher"
)

// eventInterval coalesces raw samples; accessibility feeds fire several
// events per frame during scroll churn.
const eventInterval = 100 * time.Millisecond

// sessionViewApps are the surfaces that keep a broader app visit alive: the
// watched apps themselves plus this app's own conversation surface.
var sessionViewApps = map[string]domain.WatchedApp{
	domain.YouTube.Pkg:   domain.YouTube,
	domain.Instagram.Pkg: domain.Instagram,
	domain.TikTok.Pkg:    domain.TikTok,
	domain.Self.Pkg:      domain.Self,
}

// Monitor owns the two transition watchers and feeds them classified
// samples. Events are handled synchronously in arrival order; all I/O
// happens on the recorder's task queue.
type Monitor struct {
	shortForm   *watcher.Watcher
	sessionView *watcher.Watcher
	recorder    *RecorderService
	scheduler   *Scheduler
	clock       ports.Clock

	lastSampleAt time.Time
}

// NewMonitor creates a Monitor with production watcher tunables.
func NewMonitor(recorder *RecorderService, scheduler *Scheduler, clock ports.Clock) *Monitor {
	m := &Monitor{
		recorder:  recorder,
		scheduler: scheduler,
		clock:     clock,
	}

	m.shortForm = watcher.New(watcher.DefaultShortForm(), watcher.Callbacks{
		OnEnter: func(app domain.WatchedApp, enteredAt time.Time) {
			logging.Logger.Debug("short-form enter", "app", app.Label)
			recorder.Enter(app, enteredAt)
		},
		OnExit: func(app domain.WatchedApp, enteredAt, exitedAt time.Time) {
			logging.Logger.Debug("short-form exit",
				"app", app.Label,
				"watched", exitedAt.Sub(enteredAt),
			)
			recorder.Exit(app, exitedAt)
			scheduler.OnShortFormExit(exitedAt.Sub(enteredAt))
		},
		OnTick: func(app domain.WatchedApp, enteredAt, now time.Time, elapsed time.Duration) {
			scheduler.OnTick(app, elapsed)
		},
	})

	m.sessionView = watcher.New(watcher.DefaultSessionView(), watcher.Callbacks{
		OnExit: func(app domain.WatchedApp, enteredAt, exitedAt time.Time) {
			logging.Logger.Debug("session view exit", "app", app.Label)
			scheduler.OnSessionViewExit()
		},
	})

	return m
}

// Observe feeds one raw sample through throttling, classification and both
// watchers. Runs on the single event goroutine.
func (m *Monitor) Observe(sample domain.Sample) {
	if !m.lastSampleAt.IsZero() && sample.At.Sub(m.lastSampleAt) < eventInterval {
		return
	}
	m.lastSampleAt = sample.At

	shortApp, shortOK := classifier.Classify(sample.Pkg, sample.Root)
	m.shortForm.Observe(shortApp, shortOK, sample.At)

	viewApp, viewOK := m.sessionViewApp(sample.Pkg)
	m.sessionView.Observe(viewApp, viewOK, sample.At)
}

// sessionViewApp maps a package to the broader visit surface. The system
// surface only counts while a visit is already active, so notification pulls
// and volume overlays don't end it.
func (m *Monitor) sessionViewApp(pkg string) (domain.WatchedApp, bool) {
	if app, ok := sessionViewApps[pkg]; ok {
		return app, true
	}
	if pkg == domain.SystemUI.Pkg && !m.sessionView.Current().IsNone() {
		return m.sessionView.Current(), true
	}
	return domain.None, false
}

// Run consumes the event source until it closes or the context is
// cancelled, then closes any dangling session.
func (m *Monitor) Run(ctx context.Context, source ports.EventSource) error {
	samples, err := source.Stream(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			m.shutdown()
			return ctx.Err()
		case sample, ok := <-samples:
			if !ok {
				m.shutdown()
				return nil
			}
			m.Observe(sample)
		}
	}
}

func (m *Monitor) shutdown() {
	now := m.clock.Now()
	logging.Logger.Info("monitor shutting down, closing dangling session")
	m.recorder.CloseDangling(now)
}
