package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
	want := Default().Normalized()
	if cfg != want {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pond.toml")
	doc := `
seed = "rainy-day"

[window]
width = 480
height = 480

[sky]
sunrise_hour = 5.5
sunset_hour = 19.0

[uptime]
persist = true
unlock_days = 1.0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Seed != "rainy-day" {
		t.Fatalf("expected seed override, got %q", cfg.Seed)
	}
	if cfg.Window.Width != 480 || cfg.Window.Height != 480 {
		t.Fatalf("expected window override, got %+v", cfg.Window)
	}
	if cfg.Sky.SunriseHour != 5.5 || cfg.Sky.SunsetHour != 19.0 {
		t.Fatalf("expected sky override, got %+v", cfg.Sky)
	}
	if !cfg.Uptime.Persist || cfg.Uptime.UnlockDays != 1.0 {
		t.Fatalf("expected uptime override, got %+v", cfg.Uptime)
	}
	// Untouched sections keep their defaults.
	if cfg.Fish.Count != 2 {
		t.Fatalf("expected default fish count, got %d", cfg.Fish.Count)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("window = {"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error for malformed config")
	}
}

func TestNormalizedClampsNonsense(t *testing.T) {
	cfg := Config{}
	cfg.Seed = "   "
	cfg.Window.Width = -1
	cfg.Window.TPS = 0
	cfg.Sky.SunriseHour = 20
	cfg.Sky.SunsetHour = 4
	cfg.Drops.MinSize = 8
	cfg.Drops.MaxSize = 2
	cfg.Rain.SpawnsPerSecond = -3
	cfg.Ripples.MinRadius = 40
	cfg.Ripples.MaxRadius = 10
	cfg.Uptime.MaxFrameDelta = -5

	out := cfg.Normalized()
	if out.Seed != defaultSeed {
		t.Fatalf("expected default seed, got %q", out.Seed)
	}
	if out.Window.Width != 320 || out.Window.TPS != 60 {
		t.Fatalf("expected clamped window, got %+v", out.Window)
	}
	if out.Sky.SunsetHour <= out.Sky.SunriseHour {
		t.Fatalf("expected sane daylight window, got %+v", out.Sky)
	}
	if out.Drops.MaxSize < out.Drops.MinSize {
		t.Fatalf("expected drop size range repaired, got %+v", out.Drops)
	}
	if out.Rain.SpawnsPerSecond != 0 {
		t.Fatalf("expected negative rain rate clamped, got %v", out.Rain.SpawnsPerSecond)
	}
	if out.Ripples.MaxRadius < out.Ripples.MinRadius {
		t.Fatalf("expected ripple radius range repaired, got %+v", out.Ripples)
	}
	if out.Uptime.MaxFrameDelta != 1 {
		t.Fatalf("expected frame delta clamp restored, got %v", out.Uptime.MaxFrameDelta)
	}
}
