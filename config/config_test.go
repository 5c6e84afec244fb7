package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Physics.GravityMultiplier != 5 {
		t.Errorf("gravity multiplier = %v, want 5", cfg.Physics.GravityMultiplier)
	}
	if cfg.Physics.MaxBubbleSpeed != 200 {
		t.Errorf("max bubble speed = %v, want 200", cfg.Physics.MaxBubbleSpeed)
	}
	if cfg.Spawner.Interval != 1 {
		t.Errorf("spawn interval = %v, want 1", cfg.Spawner.Interval)
	}
	if cfg.Bubble.Lifetime != 10 || cfg.Timers.FishRemoval != 15 || cfg.Timers.BodyReveal != 1.5 {
		t.Errorf("timers = %v/%v/%v, want 10/15/1.5", cfg.Bubble.Lifetime, cfg.Timers.FishRemoval, cfg.Timers.BodyReveal)
	}
	if cfg.Derived.PlayfieldW != float64(cfg.Screen.Width) || cfg.Derived.PlayfieldH != float64(cfg.Screen.Height) {
		t.Errorf("playfield should default to screen size, got %vx%v", cfg.Derived.PlayfieldW, cfg.Derived.PlayfieldH)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("spawner:\n  interval: 2.0\nplayfield:\n  width: 300\n  height: 400\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Spawner.Interval != 2 {
		t.Errorf("interval = %v, want 2", cfg.Spawner.Interval)
	}
	if cfg.Physics.GravityMultiplier != 5 {
		t.Errorf("untouched field changed: gravity multiplier = %v", cfg.Physics.GravityMultiplier)
	}
	if cfg.Derived.PlayfieldW != 300 || cfg.Derived.PlayfieldH != 400 {
		t.Errorf("playfield = %vx%v, want 300x400", cfg.Derived.PlayfieldW, cfg.Derived.PlayfieldH)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero spawn interval", "spawner:\n  interval: 0\n"},
		{"zero bubble scale", "bubble:\n  min_scale: 0\n"},
		{"negative speed cap", "physics:\n  max_bubble_speed: -1\n"},
		{"malformed yaml", "spawner: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Spawner.Interval = 3

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Spawner.Interval != 3 {
		t.Errorf("interval = %v, want 3", loaded.Spawner.Interval)
	}
}

func TestMarginClampedToPlayfield(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	data := []byte("playfield:\n  width: 60\n  height: 200\nfood:\n  margin: 50\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Food.Margin != 30 {
		t.Errorf("margin = %v, want 30", cfg.Food.Margin)
	}
}
