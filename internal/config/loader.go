package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

const configFile = "junglerun.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.junglerun/config.yaml -> ./configs/junglerun.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c GameConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"projectile.width", c.Projectile.Width},
		{"projectile.height", c.Projectile.Height},
		{"hostile.width", c.Hostile.Width},
		{"hostile.height", c.Hostile.Height},
		{"enemies.walker.width", c.Enemies.Walker.Width},
		{"enemies.walker.height", c.Enemies.Walker.Height},
		{"enemies.chaser.width", c.Enemies.Chaser.Width},
		{"enemies.chaser.height", c.Enemies.Chaser.Height},
		{"enemies.boss.width", c.Enemies.Boss.Width},
		{"enemies.boss.height", c.Enemies.Boss.Height},
		{"powerups.width", c.PowerUps.Width},
		{"powerups.height", c.PowerUps.Height},
		{"loop.tick_ms", c.Loop.TickMS},
		{"levels.max_jump_step", c.Levels.MaxJumpStep},
		{"levels.helper_width", c.Levels.HelperWidth},
		{"levels.helper_height", c.Levels.HelperHeight},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, p.name, p.v)
		}
	}

	if c.World.GroundY <= 0 || c.World.GroundY >= c.World.Height {
		return fmt.Errorf("%w: world.ground_y must be inside the world, got %g", ErrInvalid, c.World.GroundY)
	}
	if c.Player.MaxHealth < 1 {
		return fmt.Errorf("%w: player.max_health must be at least 1", ErrInvalid)
	}
	if c.Player.ExtraLives < 0 {
		return fmt.Errorf("%w: player.extra_lives must not be negative", ErrInvalid)
	}
	if c.Loop.MaxSteps < 1 {
		return fmt.Errorf("%w: loop.max_steps must be at least 1", ErrInvalid)
	}
	if c.Levels.Count < 1 {
		return fmt.Errorf("%w: levels.count must be at least 1", ErrInvalid)
	}
	if err := c.Difficulty.WalkerSpeed.Validate(); err != nil {
		return fmt.Errorf("difficulty.walker_speed: %w", err)
	}
	if err := c.Difficulty.ChaserSpeed.Validate(); err != nil {
		return fmt.Errorf("difficulty.chaser_speed: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".junglerun", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.ExtraLives += 2
		cfg.Difficulty.SpeedScale = 0.8
	case DifficultyHard:
		cfg.Player.MaxHealth = 3
		cfg.Difficulty.SpeedScale = 1.2
	case DifficultyFixed:
		// No progression: every level uses the first-level speeds
		cfg.Difficulty.WalkerSpeed = cfg.Difficulty.WalkerSpeed.Flatten()
		cfg.Difficulty.ChaserSpeed = cfg.Difficulty.ChaserSpeed.Flatten()
	}
}
