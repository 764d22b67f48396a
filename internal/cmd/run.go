package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/sanghyeon0114/argue-with-ai/internal/adapters/feed"
	"github.com/sanghyeon0114/argue-with-ai/internal/config"
	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
	"github.com/sanghyeon0114/argue-with-ai/internal/services"
	"github.com/sanghyeon0114/argue-with-ai/internal/ui"
)

// RunCmd watches an accessibility event feed and records usage sessions
type RunCmd struct {
	Feed         string `help:"Path to JSONL event feed, '-' for stdin" default:"-"`
	Replay       bool   `help:"Use recorded event timestamps instead of the wall clock"`
	Cooldown     int    `help:"Seconds of continuous watching before a conversation is raised" default:"300"`
	Intervention bool   `help:"Raise reflective conversations when the cooldown elapses" default:"true" negatable:""`
}

// Run executes the watcher loop
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	// Apply settings with flag > settings.json > default precedence
	if r.Feed == "-" && settings.EventFeed != "" {
		r.Feed = settings.EventFeed
	}
	if r.Cooldown == config.DefaultCooldownSeconds && settings.CooldownSeconds != nil {
		r.Cooldown = *settings.CooldownSeconds
	}
	if r.Intervention && settings.InterventionEnabled != nil {
		r.Intervention = *settings.InterventionEnabled
	}

	source, err := r.openFeed()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := r.newGenerator(ctx, cli, settings)

	container := cli.Container
	recorder := services.NewRecorderService(container.SessionStore(), container.Queue)

	var scheduler *services.Scheduler
	scheduler = services.NewScheduler(
		time.Duration(r.Cooldown)*time.Second,
		r.Intervention,
		func(app domain.WatchedApp) {
			go r.openConversation(ctx, cli, generator, recorder, scheduler, app)
		},
	)

	monitor := services.NewMonitor(recorder, scheduler, container.Clock)

	logging.Logger.Info("starting watcher",
		"feed", r.Feed,
		"cooldown_sec", r.Cooldown,
		"intervention", r.Intervention,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return monitor.Run(ctx, source)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watcher failed: %w", err)
	}
	return nil
}

func (r *RunCmd) openFeed() (ports.EventSource, error) {
	if r.Replay {
		return feed.NewReplaySource(r.Feed)
	}
	return feed.NewJSONLSource(r.Feed)
}

// newGenerator builds the language-model collaborator. A missing API key is
// not fatal: conversations degrade to fallback questions.
func (r *RunCmd) newGenerator(ctx context.Context, cli *CLI, settings *config.Settings) ports.TurnGenerator {
	if settings.GeminiAPIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		logging.Logger.Warn("no Gemini API key configured, conversations will use fallback questions")
		return nil
	}
	if settings.GeminiAPIKey == "" {
		settings.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	generator, err := cli.Container.NewTurnGenerator(ctx, settings)
	if err != nil {
		logging.Logger.Error("failed to create turn generator", "error", err)
		return nil
	}
	return generator
}

// openConversation runs the chat surface for one trigger. The engine's
// close paths are idempotent, so abandoning after the program exits is safe.
func (r *RunCmd) openConversation(
	ctx context.Context,
	cli *CLI,
	generator ports.TurnGenerator,
	recorder *services.RecorderService,
	scheduler *services.Scheduler,
	app domain.WatchedApp,
) {
	sessionID := string(recorder.CurrentID())

	engine := services.NewEngine(
		generator,
		cli.Container.ChatStore(),
		cli.Container.Clock,
		cli.Container.Queue,
		sessionID,
		scheduler.OnChatResult,
	)

	p := tea.NewProgram(ui.NewChatModel(ctx, engine, app.Label))
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("conversation surface failed", "error", err)
	}

	engine.Abandon(domain.ExitNavBar, "surface closed")
}
