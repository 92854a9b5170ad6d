package weave

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weave.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ParticleCount != 60 || cfg.ConnectionDistance != 150 || cfg.PointerFactor != 1.5 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Speed != 0.25 || cfg.MaxRadius != 2 {
		t.Errorf("speed=%v maxRadius=%v, want 0.25 and 2", cfg.Speed, cfg.MaxRadius)
	}
	if cfg.ColorFadeTicks != 0 {
		t.Errorf("ColorFadeTicks = %d, want 0", cfg.ColorFadeTicks)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
particle_count = 120
connection_distance = 90.5
color_fade_ticks = 30
seed = 42
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ParticleCount != 120 || cfg.ConnectionDistance != 90.5 {
		t.Errorf("count=%d distance=%v, want 120 and 90.5", cfg.ParticleCount, cfg.ConnectionDistance)
	}
	if cfg.ColorFadeTicks != 30 || cfg.Seed != 42 {
		t.Errorf("fade=%d seed=%d, want 30 and 42", cfg.ColorFadeTicks, cfg.Seed)
	}
	if cfg.PointerFactor != DefaultPointerFactor || !cfg.Antialias {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "particle_count = 10\nparticle_colour = \"red\"\n")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "particle_colour") {
		t.Errorf("error %q does not name the unknown key", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "particle_count = = 3"},
		{"wrong type", `speed = "fast"`},
		{"negative count", "particle_count = -1"},
		{"zero distance", "connection_distance = 0"},
		{"negative fade", "color_fade_ticks = -5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Errorf("LoadConfig(%q) succeeded, want error", tt.body)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "absent.toml") {
		t.Errorf("err = %v, want error naming the file", err)
	}
}

func TestParticleConfigFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 0.75
	cfg.MaxRadius = 3
	pc := cfg.particleConfig()
	if pc.Count != 60 || pc.Velocity != (Range{-0.75, 0.75}) || pc.Radius != (Range{0, 3}) {
		t.Errorf("particleConfig() = %+v", pc)
	}
}
