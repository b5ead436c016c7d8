// Package config loads claude-notifier backend settings.
//
// Settings only choose how a notification is delivered: backend, application
// name, an optional bound on the wait and debug logging. What is shown comes
// from the command line alone.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "CLAUDE_NOTIFIER_"

// Settings represents the claude-notifier configuration
type Settings struct {
	Backend string `koanf:"backend" validate:"required,oneof=auto beeep log"`
	AppName string `koanf:"app_name" validate:"required"`
	Timeout int    `koanf:"timeout" validate:"min=0,max=3600"` // Seconds to wait for the notification service, 0 waits forever
	Debug   bool   `koanf:"debug"`                             // Log backend activity to stderr
}

// Load loads settings from the config file at path and the environment.
// Priority: Environment variables > Config file > Defaults
//
// A missing file is not an error. An empty path skips the file.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &s, nil
}

// Defaults returns the settings used when nothing is configured
func Defaults() *Settings {
	d := GetDefaults()
	return &Settings{
		Backend: d["backend"].(string),
		AppName: d["app_name"].(string),
		Timeout: d["timeout"].(int),
		Debug:   d["debug"].(bool),
	}
}

// DefaultPath returns the config file location:
// $XDG_CONFIG_HOME/claude-notifier/config.json, falling back to
// ~/.config/claude-notifier/config.json. Returns "" if neither can be
// resolved.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "claude-notifier", "config.json")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "claude-notifier", "config.json")
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_NOTIFIER_APP_NAME -> app_name
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
