package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the game's saved configuration. The JSON file carries the
// persistent preferences; GO_SIMON_* environment variables override
// whatever was loaded.
type Config struct {
	// LaunchpadPort narrows device matching to port names containing it.
	// Empty accepts any Launchpad.
	LaunchpadPort string `json:"launchpadPort,omitempty" env:"GO_SIMON_PORT"`

	// NoMIDI skips the device watcher entirely; keys only.
	NoMIDI bool `json:"noMidi,omitempty" env:"GO_SIMON_NO_MIDI"`

	// Seed fixes the sequence RNG when non-zero, for reproducible games.
	Seed int64 `json:"seed,omitempty" env:"GO_SIMON_SEED"`

	// Debug turns on the file log.
	Debug bool `json:"debug,omitempty" env:"GO_SIMON_DEBUG"`
}

// DefaultConfig returns the zero configuration: any Launchpad, MIDI on,
// clock-seeded games, no debug log.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-simon"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, falling back to defaults when the file
// is absent, then applies environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err == nil {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
