// Package config handles the XDG configuration directory and config.toml.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional settings filename inside Dir.
	ConfigFile = "config.toml"

	// DefaultPrompt is the shell prompt used when none is configured.
	DefaultPrompt = "todo> "
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// IDStrategy selects how task ids are generated ("counter" or "clock").
	IDStrategy string `toml:"id_strategy"`

	// Prompt is printed before each shell line on a terminal.
	Prompt string `toml:"prompt"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`

	// TUI holds terminal UI settings.
	TUI TUIConfig `toml:"tui"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	// HideCompleted hides completed tasks from the list view.
	HideCompleted bool `toml:"hide_completed"`
}

// New creates a Config with defaults for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:        dir,
		IDStrategy: "counter",
		Prompt:     DefaultPrompt,
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to config.toml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasFile checks if config.toml exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.Path())
	return err == nil
}
