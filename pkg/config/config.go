package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Catalyst  string          `json:"catalyst" label:"Catalyst" env:"PICOCMD_CATALYST"`
	Log       LogConfig       `json:"log" label:"Logging"`
	REPL      REPLConfig      `json:"repl" label:"REPL"`
	RateLimit RateLimitConfig `json:"rate_limit" label:"Rate Limit"`
}

type LogConfig struct {
	Level string `json:"level" label:"Level" env:"PICOCMD_LOG_LEVEL"`
	File  string `json:"file,omitempty" label:"File" env:"PICOCMD_LOG_FILE"`
}

type REPLConfig struct {
	Prompt       string `json:"prompt" label:"Prompt" env:"PICOCMD_REPL_PROMPT"`
	HistoryFile  string `json:"history_file" label:"History File" env:"PICOCMD_REPL_HISTORY_FILE"`
	HistoryLimit int    `json:"history_limit" label:"History Limit" env:"PICOCMD_REPL_HISTORY_LIMIT"`
}

type RateLimitConfig struct {
	Enabled   bool    `json:"enabled" label:"Enabled" env:"PICOCMD_RATE_LIMIT_ENABLED"`
	PerSecond float64 `json:"per_second" label:"Commands Per Second" env:"PICOCMD_RATE_LIMIT_PER_SECOND"`
	Burst     int     `json:"burst" label:"Burst" env:"PICOCMD_RATE_LIMIT_BURST"`
}

func DefaultConfig() *Config {
	return &Config{
		Catalyst: ".",
		Log: LogConfig{
			Level: "warn",
		},
		REPL: REPLConfig{
			Prompt:       "> ",
			HistoryFile:  filepath.Join(os.TempDir(), ".picocmd_history"),
			HistoryLimit: 100,
		},
		RateLimit: RateLimitConfig{
			Enabled:   false,
			PerSecond: 2,
			Burst:     5,
		},
	}
}

// LoadConfig reads path over the defaults, then applies PICOCMD_* environment
// variables. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Catalyst == "" {
		return fmt.Errorf("catalyst must not be empty")
	}
	if c.RateLimit.Enabled && (c.RateLimit.PerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: per_second and burst must be positive when enabled")
	}
	return nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) > 1 && path[1] == '/' {
			return home + path[1:]
		}
		return home
	}
	return path
}
