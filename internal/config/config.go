// Package config provides YAML-based tuning for the simulation and
// difficulty management across levels.
package config

// GameConfig contains every tunable value of the simulation.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Hostile    HostileConfig    `yaml:"hostile"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Loop       LoopConfig       `yaml:"loop"`
	Levels     LevelsConfig     `yaml:"levels"`
}

// WorldConfig defines the logical coordinate space.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Top of the ground platform
}

// PhysicsConfig defines shared integration constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // px/s², applied to player and enemies
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	Speed            float64 `yaml:"speed"`              // px/s
	JumpForce        float64 `yaml:"jump_force"`         // Negative is up
	DoubleJumpFactor float64 `yaml:"double_jump_factor"` // Second jump = jump_force * factor
	SpeedBoost       float64 `yaml:"speed_boost"`        // Multiplier while Speed is active
	MaxHealth        int     `yaml:"max_health"`
	ExtraLives       int     `yaml:"extra_lives"`
	ShootDelayMS     float64 `yaml:"shoot_delay_ms"`
	InvincibleMS     float64 `yaml:"invincible_ms"`
	PoweredMS        float64 `yaml:"powered_ms"`      // Legacy powered state granted by boss kills
	MultiShotSpread  float64 `yaml:"multishot_spread"` // Vertical offset of side shots
	ContactDamage    int     `yaml:"contact_damage"`
}

// ProjectileConfig defines player projectile parameters.
type ProjectileConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	PoweredSpeed  float64 `yaml:"powered_speed"`
	Damage        int     `yaml:"damage"`
	PoweredDamage int     `yaml:"powered_damage"`
	TrailLength   int     `yaml:"trail_length"`
}

// HostileConfig defines enemy projectile parameters.
type HostileConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MeleeSpeed   float64 `yaml:"melee_speed"`
	MeleeDamage  int     `yaml:"melee_damage"`
	RangedSpeed  float64 `yaml:"ranged_speed"`
	RangedDamage int     `yaml:"ranged_damage"`
}

// EnemiesConfig groups per-kind enemy parameters.
type EnemiesConfig struct {
	AttackCooldownMS float64      `yaml:"attack_cooldown_ms"`
	Walker           WalkerConfig `yaml:"walker"`
	Chaser           ChaserConfig `yaml:"chaser"`
	Boss             BossConfig   `yaml:"boss"`
}

// WalkerConfig defines the patrolling melee enemy.
type WalkerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Health           int     `yaml:"health"`
	FirstLevelHealth int     `yaml:"first_level_health"`
	Score            int     `yaml:"score"`
	AttackRange      float64 `yaml:"attack_range"`
	AttackFromLevel  int     `yaml:"attack_from_level"`
}

// ChaserConfig defines the pursuing enemy.
type ChaserConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         int     `yaml:"health"`
	Score          int     `yaml:"score"`
	JumpForce      float64 `yaml:"jump_force"`
	JumpRange      float64 `yaml:"jump_range"`
	JumpAfterLevel int     `yaml:"jump_after_level"`
}

// BossConfig defines the boss enemy.
type BossConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Health     int     `yaml:"health"`
	Score      int     `yaml:"score"`
	Speed      float64 `yaml:"speed"`
	MeleeRange float64 `yaml:"melee_range"`
}

// PowerUpConfig defines collectible parameters.
type PowerUpConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	DurationMS    float64 `yaml:"duration_ms"`
	HealAmount    int     `yaml:"heal_amount"`
	ExtraLifeHeal int     `yaml:"extra_life_heal"`
}

// DifficultyConfig defines how enemy speeds grow with the level index.
type DifficultyConfig struct {
	SpeedScale  float64    `yaml:"enemy_speed_scale"`
	WalkerSpeed SpeedTable `yaml:"walker_speed"`
	ChaserSpeed SpeedTable `yaml:"chaser_speed"`
}

// LoopConfig defines the fixed-timestep driver.
type LoopConfig struct {
	TickMS   float64 `yaml:"tick_ms"`
	MaxSteps int     `yaml:"max_steps"`
}

// LevelsConfig defines the level provider and generator.
type LevelsConfig struct {
	Count        int             `yaml:"count"`
	MaxJumpStep  float64         `yaml:"max_jump_step"`
	HelperWidth  float64         `yaml:"helper_width"`
	HelperHeight float64         `yaml:"helper_height"`
	Generator    GeneratorConfig `yaml:"generator"`
}

// GeneratorConfig defines the procedural level ranges.
type GeneratorConfig struct {
	MinX           float64 `yaml:"min_x"`
	MaxX           float64 `yaml:"max_x"`
	MinY           float64 `yaml:"min_y"`
	MaxY           float64 `yaml:"max_y"`
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	EnemyLift      float64 `yaml:"enemy_lift"`   // Enemy y = platform top - lift
	PowerUpLift    float64 `yaml:"powerup_lift"` // Power-up y = platform top - lift
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}
