package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Commit    CommitConfig    `toml:"commit"`
	Assistant AssistantConfig `toml:"assistant"`
	Update    UpdateConfig    `toml:"update"`
}

type CommitConfig struct {
	// PushByDefault preselects commit-and-push in the confirmation screen
	PushByDefault bool `toml:"push_by_default"`
}

type AssistantConfig struct {
	Enabled bool   `toml:"enabled"`
	Model   string `toml:"model"`
	// APIKeyEnv names the environment variable holding the API key.
	// The key itself never lives in the config file.
	APIKeyEnv string `toml:"api_key_env"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Commit: CommitConfig{
			PushByDefault: false,
		},
		Assistant: AssistantConfig{
			Enabled:   true,
			Model:     "claude-sonnet-4-20250514",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.quickcommit",
		},
	}
}

// Path returns the config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attqc.toml"), nil
}

func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// APIKey resolves the assistant API key from the environment; empty when
// the assistant is disabled or the variable is unset
func (c *Config) APIKey() string {
	if !c.Assistant.Enabled || c.Assistant.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Assistant.APIKeyEnv)
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
