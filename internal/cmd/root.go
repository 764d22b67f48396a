package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sanghyeon0114/argue-with-ai/internal/config"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to the sqlite database (overrides settings.json)"`

	Run      RunCmd      `cmd:"" help:"Watch an event feed and record short-form sessions (default)" default:"1"`
	Sessions SessionsCmd `cmd:"sessions" help:"Inspect recorded usage sessions"`
	Chat     ChatCmd     `cmd:"chat" help:"Run a reflective conversation manually"`
	Setup    SetupCmd    `cmd:"setup" help:"Configure API key, cooldown and intervention toggle"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings, never nil.
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("ARGUE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("ARGUE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		// Apply DBPath setting
		if c.DBPath == "" {
			if c.settings.DBPath != "" {
				c.DBPath = c.settings.DBPath
			} else {
				c.DBPath = config.GetDefaultDBPath()
			}
		}
	} else if c.DBPath == "" {
		c.DBPath = config.GetDefaultDBPath()
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container AFTER logging is initialized so GORM's logger never
	// sees a nil logging.Logger
	container, err := NewContainer(c.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
