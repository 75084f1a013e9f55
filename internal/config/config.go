// Package config handles loading and saving the launcher configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	UI UIConfig `yaml:"ui"`

	// Shell overrides $SHELL resolution when set.
	Shell string `yaml:"shell,omitempty"`

	// HistoryFile overrides the default history database path.
	HistoryFile string `yaml:"history_file,omitempty"`

	// Bookmarks maps a single key (pressed with Alt) to a command line.
	Bookmarks map[string]string `yaml:"bookmarks,omitempty"`
}

// UIConfig holds the popup appearance settings.
type UIConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Width      int    `yaml:"width"`
}

// DefaultConfig returns a new Config with default values: black on white,
// like the original launcher window.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Foreground: "#000000",
			Background: "#ffffff",
			Width:      64,
		},
	}
}

// ConfigDir returns the path to the configuration directory, creating it if
// it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "thingylaunch")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file. If the file
// doesn't exist, it returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path, falling back to defaults when
// the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HistoryPath returns the history database path: the configured override,
// or history.db next to the config file.
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryFile != "" {
		return c.HistoryFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
