// Package config holds the daemon's YAML configuration: which modifier
// activates panning, which modifiers select the per-window roles, and how
// scroll events translate to pixels.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the effective daemon configuration.
type Config struct {
	// ActivationModifier must be held for scrolling to pan windows.
	ActivationModifier string `yaml:"activation_modifier"`
	// ExemptModifier excludes the window under the pointer from the pan.
	ExemptModifier string `yaml:"exempt_modifier"`
	// ExclusiveModifier pans only the window under the pointer.
	ExclusiveModifier string `yaml:"exclusive_modifier"`
	// ColumnLockModifier freezes windows left of the pointer column.
	ColumnLockModifier string `yaml:"column_lock_modifier"`

	// ScrollStep is the pan distance in pixels per scroll detent.
	ScrollStep int `yaml:"scroll_step"`
	// InvertScroll flips the horizontal pan direction.
	InvertScroll bool `yaml:"invert_scroll"`
	// CursorFollow keeps the pointer attached to an exclusively panned window.
	CursorFollow bool `yaml:"cursor_follow"`
	// GestureTimeoutMs ends a gesture after this idle gap. 0 disables.
	GestureTimeoutMs int `yaml:"gesture_timeout_ms"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Display overrides $DISPLAY when set.
	Display string `yaml:"display,omitempty"`
}

// ValidationError reports a bad value at a YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ActivationModifier: "mod4",
		ExemptModifier:     "shift",
		ExclusiveModifier:  "control",
		ColumnLockModifier: "mod1",
		ScrollStep:         50,
		CursorFollow:       true,
		GestureTimeoutMs:   500,
		LogLevel:           "info",
	}
}

// DefaultConfigPath returns ~/.config/sidepan/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "sidepan", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path. Unknown keys
// are rejected so typos surface instead of silently falling back.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the daemon cannot run with.
func (c *Config) Validate() error {
	if _, err := ModifierMask(c.ActivationModifier); err != nil {
		return &ValidationError{Path: "activation_modifier", Err: err}
	}
	if c.ActivationModifier == "" || c.ActivationModifier == "none" {
		return &ValidationError{Path: "activation_modifier", Err: fmt.Errorf("a modifier is required")}
	}

	roles := []struct {
		path  string
		value string
	}{
		{"exempt_modifier", c.ExemptModifier},
		{"exclusive_modifier", c.ExclusiveModifier},
		{"column_lock_modifier", c.ColumnLockModifier},
	}
	activationMask, _ := ModifierMask(c.ActivationModifier)
	seen := map[uint16]string{activationMask: "activation_modifier"}
	for _, role := range roles {
		mask, err := ModifierMask(role.value)
		if err != nil {
			return &ValidationError{Path: role.path, Err: err}
		}
		if mask == 0 {
			continue
		}
		if prev, dup := seen[mask]; dup {
			return &ValidationError{
				Path: role.path,
				Err:  fmt.Errorf("%q already assigned to %s", role.value, prev),
			}
		}
		seen[mask] = role.path
	}

	if c.ScrollStep < 1 {
		return &ValidationError{Path: "scroll_step", Err: fmt.Errorf("must be at least 1")}
	}
	if c.GestureTimeoutMs < 0 {
		return &ValidationError{Path: "gesture_timeout_ms", Err: fmt.Errorf("must not be negative")}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("must be one of: debug, info, warn, error")}
	}
	return nil
}

// Save writes the config to the standard location, creating the directory
// if needed.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
