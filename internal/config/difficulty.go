package config

import (
	"fmt"
	"sort"
)

// SpeedStep applies Speed from level From onward, until the next step.
type SpeedStep struct {
	From  int     `yaml:"from"`
	Speed float64 `yaml:"speed"`
}

// SpeedTable is an ordered step curve of enemy speed by level index.
type SpeedTable []SpeedStep

// Lookup returns the speed for the given 1-based level.
// Levels below the first step use the first step.
func (t SpeedTable) Lookup(level int) float64 {
	if len(t) == 0 {
		return 0
	}
	// Last step whose From <= level
	i := sort.Search(len(t), func(i int) bool { return t[i].From > level })
	if i == 0 {
		return t[0].Speed
	}
	return t[i-1].Speed
}

// Validate checks that steps are strictly increasing and speeds non-negative.
func (t SpeedTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: speed table is empty", ErrInvalid)
	}
	for i, s := range t {
		if s.Speed < 0 {
			return fmt.Errorf("%w: step %d has negative speed %g", ErrInvalid, i, s.Speed)
		}
		if i > 0 && s.From <= t[i-1].From {
			return fmt.Errorf("%w: step %d starts at level %d, not after %d", ErrInvalid, i, s.From, t[i-1].From)
		}
	}
	return nil
}

// Flatten returns a single-step table holding the first speed.
func (t SpeedTable) Flatten() SpeedTable {
	if len(t) == 0 {
		return nil
	}
	return SpeedTable{{From: 1, Speed: t[0].Speed}}
}

// DifficultyManager calculates enemy parameters for a level index.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.SpeedScale <= 0 {
		cfg.SpeedScale = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// WalkerSpeed returns the walker speed for a level, scaled by the preset.
func (d *DifficultyManager) WalkerSpeed(level int) float64 {
	return d.cfg.WalkerSpeed.Lookup(level) * d.cfg.SpeedScale
}

// ChaserSpeed returns the chaser speed for a level, scaled by the preset.
func (d *DifficultyManager) ChaserSpeed(level int) float64 {
	return d.cfg.ChaserSpeed.Lookup(level) * d.cfg.SpeedScale
}

// Scale applies the preset multiplier to a fixed speed.
func (d *DifficultyManager) Scale(speed float64) float64 {
	return speed * d.cfg.SpeedScale
}

// Progress returns min(level/levels, 1), the generator difficulty factor.
func Progress(level, levels int) float64 {
	if levels <= 0 {
		return 1
	}
	return clampF(float64(level)/float64(levels), 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
