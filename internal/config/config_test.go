package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultGameConfig()

	if cfg.World != def.World {
		t.Errorf("world = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Enemies != def.Enemies {
		t.Errorf("enemies = %+v, expected %+v", cfg.Enemies, def.Enemies)
	}
	if cfg.Levels != def.Levels {
		t.Errorf("levels = %+v, expected %+v", cfg.Levels, def.Levels)
	}
	if len(cfg.Difficulty.WalkerSpeed) != len(def.Difficulty.WalkerSpeed) {
		t.Errorf("walker table has %d steps, expected %d", len(cfg.Difficulty.WalkerSpeed), len(def.Difficulty.WalkerSpeed))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  max_health: 7\nphysics:\n  gravity: 1200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.MaxHealth != 7 {
		t.Errorf("MaxHealth = %d, expected 7", cfg.Player.MaxHealth)
	}
	if cfg.Physics.Gravity != 1200 {
		t.Errorf("Gravity = %g, expected 1200", cfg.Physics.Gravity)
	}
	// Keys not named in the file keep defaults
	if cfg.Player.Speed != 400 {
		t.Errorf("Speed = %g, expected default 400", cfg.Player.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero player width", func(c *GameConfig) { c.Player.Width = 0 }},
		{"negative tick", func(c *GameConfig) { c.Loop.TickMS = -1 }},
		{"no steps", func(c *GameConfig) { c.Loop.MaxSteps = 0 }},
		{"ground outside", func(c *GameConfig) { c.World.GroundY = 2000 }},
		{"unsorted table", func(c *GameConfig) {
			c.Difficulty.WalkerSpeed = SpeedTable{{From: 3, Speed: 10}, {From: 2, Speed: 20}}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestSpeedTableLookup(t *testing.T) {
	table := DefaultGameConfig().Difficulty.WalkerSpeed

	tests := []struct {
		level int
		want  float64
	}{
		{0, 20},
		{1, 20},
		{2, 30},
		{3, 50},
		{4, 80},
		{5, 80},
		{6, 120},
		{8, 120},
		{9, 140},
		{15, 140},
		{16, 160},
		{100, 160},
	}

	for _, tc := range tests {
		if got := table.Lookup(tc.level); got != tc.want {
			t.Errorf("Lookup(%d) = %g, expected %g", tc.level, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Player.MaxHealth != 3 || cfg.Difficulty.SpeedScale != 1.2 {
		t.Errorf("hard preset not applied: %+v", cfg.Player)
	}

	cfg = DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	dm := NewDifficultyManager(cfg.Difficulty)
	if dm.WalkerSpeed(50) != dm.WalkerSpeed(1) {
		t.Errorf("fixed preset should flatten speeds, got %g vs %g", dm.WalkerSpeed(50), dm.WalkerSpeed(1))
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("insane") != "" {
		t.Error("ParsePreset returned unexpected values")
	}
}

func TestDifficultyManagerScale(t *testing.T) {
	cfg := DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	dm := NewDifficultyManager(cfg.Difficulty)

	if got := dm.ChaserSpeed(4); got != 200*0.8 {
		t.Errorf("ChaserSpeed(4) = %g, expected %g", got, 200*0.8)
	}
	if got := Progress(150, 100); got != 1 {
		t.Errorf("Progress(150, 100) = %g, expected 1", got)
	}
}
