package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/sanghyeon0114/argue-with-ai/internal/config"
)

// SetupCmd interactively edits ~/.arguewithai/settings.json
type SetupCmd struct{}

// Run executes the setup form
func (s *SetupCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	apiKey := settings.GeminiAPIKey
	model := settings.Model
	cooldown := strconv.Itoa(config.DefaultCooldownSeconds)
	if settings.CooldownSeconds != nil {
		cooldown = strconv.Itoa(*settings.CooldownSeconds)
	}
	intervention := true
	if settings.InterventionEnabled != nil {
		intervention = *settings.InterventionEnabled
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Gemini API key").
			Description("Used to generate conversation turns. Leave empty to rely on fallback questions.").
			EchoMode(huh.EchoModePassword).
			Value(&apiKey),
		huh.NewInput().
			Title("Model").
			Description("Gemini model name; empty uses the default.").
			Value(&model),
		huh.NewInput().
			Title("Cooldown (seconds)").
			Description("Continuous watch time before a conversation is raised.").
			Value(&cooldown).
			Validate(func(v string) error {
				n, err := strconv.Atoi(v)
				if err != nil || n <= 0 {
					return fmt.Errorf("enter a positive number of seconds")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Enable interventions?").
			Value(&intervention),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	cooldownSec, err := strconv.Atoi(cooldown)
	if err != nil {
		return fmt.Errorf("invalid cooldown: %w", err)
	}

	settings.GeminiAPIKey = apiKey
	settings.Model = model
	settings.CooldownSeconds = &cooldownSec
	settings.InterventionEnabled = &intervention

	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Settings saved to %s\n", config.GetSettingsPath())
	return nil
}
