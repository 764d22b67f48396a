package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultCooldownSeconds is the watch time before a conversation is raised.
const DefaultCooldownSeconds = 300

// Settings represents the structure of ~/.arguewithai/settings.json.
// Pointer fields distinguish "unset" from explicit zero values.
type Settings struct {
	CooldownSeconds     *int   `json:"cooldown_seconds,omitempty"`
	DBPath              string `json:"db_path,omitempty"`
	Debug               *bool  `json:"debug,omitempty"`
	EventFeed           string `json:"event_feed,omitempty"`
	GeminiAPIKey        string `json:"gemini_api_key,omitempty"`
	InterventionEnabled *bool  `json:"intervention_enabled,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	Model               string `json:"model,omitempty"`
}

// GetHomeDir returns $ARGUE_HOME or ~/.arguewithai
func GetHomeDir() string {
	if home := os.Getenv("ARGUE_HOME"); home != "" {
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".arguewithai"
	}
	return filepath.Join(homeDir, ".arguewithai")
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() string {
	return filepath.Join(GetHomeDir(), "settings.json")
}

// GetDefaultDBPath returns the default sqlite database path
func GetDefaultDBPath() string {
	return filepath.Join(GetHomeDir(), "state.db")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}

// LoadSettings loads settings from $ARGUE_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	if settings.EventFeed != "" && settings.EventFeed != "-" {
		settings.EventFeed = ExpandPath(settings.EventFeed)
	}

	return &settings, nil
}

// SaveSettings saves settings to $ARGUE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
