// Package config loads mathdesk configuration from a YAML file with
// environment overrides. The arithmetic library never reads any of
// this; configuration only shapes the shells around it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all mathdesk settings.
type Config struct {
	// Theme selects the color scheme: auto, light, or dark.
	Theme string `yaml:"theme"`

	// Plain makes the root command start the line-mode shell
	// instead of the TUI.
	Plain bool `yaml:"plain"`

	// HistorySize bounds the in-memory prompt input history.
	HistorySize int `yaml:"history_size"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the session file logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:       "auto",
		Plain:       false,
		HistorySize: 50,
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultPath returns the config file location used when no --config
// flag is given: $MATHDESK_CONFIG, else ~/.config/mathdesk/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("MATHDESK_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "mathdesk", "config.yaml"), nil
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. A local .env file is loaded first so its variables take
// part in the env overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, cfg.Validate()
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("MATHDESK_THEME"); theme != "" {
		c.Theme = theme
	}
	if plain := os.Getenv("MATHDESK_PLAIN"); plain != "" {
		if v, err := strconv.ParseBool(plain); err == nil {
			c.Plain = v
		}
	}
	if size := os.Getenv("MATHDESK_HISTORY_SIZE"); size != "" {
		if v, err := strconv.Atoi(size); err == nil && v >= 0 {
			c.HistorySize = v
		}
	}
	if debug := os.Getenv("MATHDESK_DEBUG"); debug != "" {
		if v, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = v
		}
	}
	if level := os.Getenv("MATHDESK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidThemes lists the supported theme names.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLevels lists the supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must be non-negative, got %d", c.HistorySize)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
