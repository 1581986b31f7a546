package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Stars != 512 || cfg.MaxDepth != 32 || cfg.Period != 60*time.Second {
		t.Errorf("expected 512/32/60s defaults, got %d/%g/%s", cfg.Stars, cfg.MaxDepth, cfg.Period)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oledstats.yaml")
	data := []byte(`
stars: 64
period: 5s
interfaces: [eth0, wlan0]
device: preview
preview:
  rgb: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Stars != 64 {
		t.Errorf("expected 64 stars, got %d", cfg.Stars)
	}
	if cfg.Period != 5*time.Second {
		t.Errorf("expected 5s period, got %s", cfg.Period)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("expected untouched max_depth %g, got %g", DefaultMaxDepth, cfg.MaxDepth)
	}
	if len(cfg.Interfaces) != 2 || cfg.Interfaces[1] != "wlan0" {
		t.Errorf("expected [eth0 wlan0], got %v", cfg.Interfaces)
	}
	if !cfg.Preview.RGB || cfg.Preview.Width != OLEDWidth {
		t.Errorf("expected rgb preview with default width, got %+v", cfg.Preview)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"stars":     func(c *Config) { c.Stars = 0 },
		"max_depth": func(c *Config) { c.MaxDepth = -1 },
		"period":    func(c *Config) { c.Period = 0 },
		"fps":       func(c *Config) { c.StatsFPS = -4 },
		"device":    func(c *Config) { c.Device = "lcd" },
		"oled":      func(c *Config) { c.OLED.Height = 0 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	if got := FrameInterval(4); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", got)
	}
	if got := FrameInterval(0); got != 0 {
		t.Errorf("expected uncapped, got %s", got)
	}
}
