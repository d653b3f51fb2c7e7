package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config fails validation: %v", err)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath with missing file: %v", err)
	}
	if cfg.ActivationModifier != "mod4" || cfg.ScrollStep != 50 {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadFromPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
activation_modifier: super
exempt_modifier: none
scroll_step: 25
invert_scroll: true
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.ActivationModifier != "super" {
		t.Errorf("activation_modifier = %q, want super", cfg.ActivationModifier)
	}
	if cfg.ExemptModifier != "none" {
		t.Errorf("exempt_modifier = %q, want none", cfg.ExemptModifier)
	}
	if cfg.ScrollStep != 25 {
		t.Errorf("scroll_step = %d, want 25", cfg.ScrollStep)
	}
	if !cfg.InvertScroll {
		t.Error("invert_scroll not applied")
	}
	if cfg.CursorFollow != true {
		t.Error("unset cursor_follow lost its default")
	}
}

func TestLoadFromPathRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scrol_step: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"roles disabled", func(c *Config) {
			c.ExemptModifier = "none"
			c.ExclusiveModifier = ""
			c.ColumnLockModifier = "none"
		}, false},
		{"no activation", func(c *Config) { c.ActivationModifier = "none" }, true},
		{"unknown modifier", func(c *Config) { c.ExclusiveModifier = "hyper" }, true},
		{"role collides with activation", func(c *Config) { c.ExemptModifier = "mod4" }, true},
		{"alias collides with activation", func(c *Config) { c.ExemptModifier = "super" }, true},
		{"duplicate roles", func(c *Config) { c.ColumnLockModifier = "shift" }, true},
		{"zero scroll step", func(c *Config) { c.ScrollStep = 0 }, true},
		{"negative timeout", func(c *Config) { c.GestureTimeoutMs = -1 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestModifierMask(t *testing.T) {
	tests := []struct {
		name    string
		want    uint16
		wantErr bool
	}{
		{"mod4", 0x40, false},
		{"super", 0x40, false},
		{"Shift", 0x01, false},
		{" control ", 0x04, false},
		{"alt", 0x08, false},
		{"none", 0, false},
		{"", 0, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		mask, err := ModifierMask(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ModifierMask(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ModifierMask(%q): %v", tt.name, err)
			continue
		}
		if mask != tt.want {
			t.Errorf("ModifierMask(%q) = %#x, want %#x", tt.name, mask, tt.want)
		}
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.ScrollStep = 30
	cfg.InvertScroll = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath after save: %v", err)
	}
	if loaded.ScrollStep != 30 || !loaded.InvertScroll {
		t.Errorf("reloaded config = %+v", loaded)
	}
}
