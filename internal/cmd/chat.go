package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/services"
	"github.com/sanghyeon0114/argue-with-ai/internal/ui"
)

// ChatCmd runs a reflective conversation on demand, outside the watcher loop
type ChatCmd struct {
	App string `help:"Label to record the conversation's session under" default:"manual"`
}

// Run executes the chat command
func (c *ChatCmd) Run(cli *CLI) error {
	ctx := context.Background()
	settings := cli.Settings()
	container := cli.Container

	if settings.GeminiAPIKey == "" {
		settings.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	generator, err := container.NewTurnGenerator(ctx, settings)
	if err != nil {
		logging.Logger.Warn("turn generator unavailable, using fallback questions", "error", err)
		generator = nil
	}

	now := container.Clock.Now()
	sessionID, err := container.SessionStore().StartSession(ctx, c.App, now.UnixMilli(), domain.DayUTC(now))
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	var result *domain.ChatResult
	engine := services.NewEngine(
		generator,
		container.ChatStore(),
		container.Clock,
		container.Queue,
		string(sessionID),
		func(r domain.ChatResult) { result = &r },
	)

	p := tea.NewProgram(ui.NewChatModel(ctx, engine, c.App))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running conversation: %w", err)
	}
	engine.Abandon(domain.ExitNavBar, "surface closed")

	if _, err := container.SessionStore().EndSession(ctx, sessionID, container.Clock.Now().UnixMilli()); err != nil {
		logging.Logger.Error("failed to close manual session", "error", err)
	}

	if result != nil {
		fmt.Printf("Conversation ended (%s), total score %d\n", result.Reason, result.TotalScore)
	}
	return nil
}
