package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"side_length": 64, "live_probability": 0.5, "frame_rate": 100000000, "renderer": "console"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.SideLength != 64 || config.LiveProbability != 0.5 || config.Renderer != RendererConsole {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.FrameRate != 100*time.Millisecond {
		t.Fatalf("frame rate %v, expected 100ms", config.FrameRate)
	}
	if config.WindowSize != DefaultConfig().WindowSize {
		t.Fatalf("window size %d, expected default", config.WindowSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	config, err := LoadConfig(filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if config != DefaultConfig() {
		t.Fatal("defaults not returned alongside the error")
	}

	bad := filepath.Join(dir, "bad.json")
	if err = os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadConfig(bad); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cases := map[string]func(c *Config){
		"unknown renderer":   func(c *Config) { c.Renderer = "hologram" },
		"zero frame rate":    func(c *Config) { c.FrameRate = 0 },
		"negative max gens":  func(c *Config) { c.MaxGenerations = -1 },
		"negative injection": func(c *Config) { c.InjectionCount = -3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestTicksPerSecond(t *testing.T) {
	c := DefaultConfig()
	if tps := c.TicksPerSecond(); tps != 25 {
		t.Fatalf("tps=%d, expected 25", tps)
	}
	c.FrameRate = 2 * time.Second
	if tps := c.TicksPerSecond(); tps != 1 {
		t.Fatalf("tps=%d, expected 1", tps)
	}
}
