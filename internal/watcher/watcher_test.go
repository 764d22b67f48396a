package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

type event struct {
	kind string
	app  domain.WatchedApp
	at   time.Time
}

type capture struct {
	events []event
}

func (c *capture) callbacks() Callbacks {
	return Callbacks{
		OnEnter: func(app domain.WatchedApp, enteredAt time.Time) {
			c.events = append(c.events, event{kind: "enter", app: app, at: enteredAt})
		},
		OnExit: func(app domain.WatchedApp, enteredAt, exitedAt time.Time) {
			c.events = append(c.events, event{kind: "exit", app: app, at: exitedAt})
		},
		OnTick: func(app domain.WatchedApp, enteredAt, now time.Time, elapsed time.Duration) {
			c.events = append(c.events, event{kind: "tick", app: app, at: now})
		},
	}
}

func (c *capture) ofKind(kind string) []event {
	var out []event
	for _, e := range c.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(ms int64) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func shortFormConfig() Config {
	return Config{
		Stable:       150 * time.Millisecond,
		ExitGrace:    500 * time.Millisecond,
		TickInterval: 100 * time.Millisecond,
		Switch:       SwitchDebounced,
	}
}

func TestEnterFiresOnceAfterStabilityWindow(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	for _, ms := range []int64{0, 50, 100, 160, 220} {
		w.Observe(domain.YouTube, true, at(ms))
	}

	enters := c.ofKind("enter")
	require.Len(t, enters, 1)
	assert.Equal(t, domain.YouTube, enters[0].app)
	// Promotion happens on the first sample at or past pendingSince+stable
	assert.Equal(t, at(160), enters[0].at)
	assert.Empty(t, c.ofKind("exit"))
}

func TestNoEnterBeforeStabilityWindow(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	w.Observe(domain.YouTube, true, at(0))
	w.Observe(domain.YouTube, true, at(100))

	assert.Empty(t, c.events)
	assert.True(t, w.Current().IsNone())
}

func TestExitFiresAfterGraceWindow(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	for _, ms := range []int64{0, 50, 100, 160, 220} {
		w.Observe(domain.YouTube, true, at(ms))
	}
	for _, ms := range []int64{300, 600, 900} {
		w.Observe(domain.None, false, at(ms))
	}

	exits := c.ofKind("exit")
	require.Len(t, exits, 1)
	assert.Equal(t, domain.YouTube, exits[0].app)
	// Last positive sample was at 220; the first absent sample past
	// 220+500 is the one at 900
	assert.Equal(t, at(900), exits[0].at)
	assert.True(t, w.Current().IsNone())
}

func TestBriefGapDoesNotExit(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	for _, ms := range []int64{0, 160} {
		w.Observe(domain.YouTube, true, at(ms))
	}
	w.Observe(domain.None, false, at(300))
	w.Observe(domain.YouTube, true, at(400))
	w.Observe(domain.YouTube, true, at(500))

	assert.Len(t, c.ofKind("enter"), 1)
	assert.Empty(t, c.ofKind("exit"))
	assert.Equal(t, domain.YouTube, w.Current())
}

func TestNoDoubleEnterForSameApp(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	for ms := int64(0); ms <= 2000; ms += 50 {
		w.Observe(domain.YouTube, true, at(ms))
	}

	assert.Len(t, c.ofKind("enter"), 1)
	assert.Empty(t, c.ofKind("exit"))
}

func TestTickCadence(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	// Enter at 150, then samples every 50ms until 650
	for ms := int64(0); ms <= 650; ms += 50 {
		w.Observe(domain.YouTube, true, at(ms))
	}

	ticks := c.ofKind("tick")
	// Ticks at 250, 350, 450, 550, 650 (first at lastTickAt=150 + 100)
	require.Len(t, ticks, 5)
	assert.Equal(t, at(250), ticks[0].at)
	assert.Equal(t, at(650), ticks[4].at)
}

func TestDebouncedSwitchFiresExitThenEnter(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	for _, ms := range []int64{0, 160} {
		w.Observe(domain.YouTube, true, at(ms))
	}
	// A different app must hold the stability window before switching
	w.Observe(domain.TikTok, true, at(200))
	assert.Equal(t, domain.YouTube, w.Current())

	w.Observe(domain.TikTok, true, at(400))

	require.Len(t, c.ofKind("exit"), 1)
	require.Len(t, c.ofKind("enter"), 2)
	assert.Equal(t, domain.TikTok, w.Current())

	// Exit for the old app precedes enter for the new one
	var order []string
	for _, e := range c.events {
		if e.kind != "tick" {
			order = append(order, e.kind+":"+e.app.Label)
		}
	}
	assert.Equal(t, []string{"enter:YouTube", "exit:YouTube", "enter:TikTok"}, order)
}

func TestAbsorbSwitchKeepsVisitAlive(t *testing.T) {
	cfg := shortFormConfig()
	cfg.Switch = SwitchAbsorb

	var c capture
	w := New(cfg, c.callbacks())

	for _, ms := range []int64{0, 160} {
		w.Observe(domain.YouTube, true, at(ms))
	}
	w.Observe(domain.Instagram, true, at(200))

	// No exit/enter pair; the visit silently follows the new surface
	assert.Len(t, c.ofKind("enter"), 1)
	assert.Empty(t, c.ofKind("exit"))
	assert.Equal(t, domain.Instagram, w.Current())
}

func TestEnterAtPendingStartBackdates(t *testing.T) {
	cfg := shortFormConfig()
	cfg.EnterAtPendingStart = true

	var c capture
	w := New(cfg, c.callbacks())

	w.Observe(domain.YouTube, true, at(0))
	w.Observe(domain.YouTube, true, at(160))

	enters := c.ofKind("enter")
	require.Len(t, enters, 1)
	assert.Equal(t, at(0), enters[0].at)
}

func TestAbsentSignalWhileIdleIsNoop(t *testing.T) {
	var c capture
	w := New(shortFormConfig(), c.callbacks())

	w.Observe(domain.None, false, at(0))
	w.Observe(domain.None, false, at(1000))

	assert.Empty(t, c.events)
}
