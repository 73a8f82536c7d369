package config

import (
	_ "embed"
)

//go:embed defaults/junglerun.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/junglerun.yaml and is used when the embedded file
// cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:   1280,
			Height:  960,
			GroundY: 800,
		},
		Physics: PhysicsConfig{
			Gravity: 1600,
		},
		Player: PlayerConfig{
			Width:            64,
			Height:           96,
			StartX:           100,
			StartY:           704,
			Speed:            400,
			JumpForce:        -800,
			DoubleJumpFactor: 0.8,
			SpeedBoost:       1.5,
			MaxHealth:        5,
			ExtraLives:       0,
			ShootDelayMS:     250,
			InvincibleMS:     1200,
			PoweredMS:        5000,
			MultiShotSpread:  16,
			ContactDamage:    1,
		},
		Projectile: ProjectileConfig{
			Width:         24,
			Height:        12,
			Speed:         800,
			PoweredSpeed:  1200,
			Damage:        1,
			PoweredDamage: 2,
			TrailLength:   5,
		},
		Hostile: HostileConfig{
			Width:        16,
			Height:       16,
			MeleeSpeed:   200,
			MeleeDamage:  1,
			RangedSpeed:  300,
			RangedDamage: 2,
		},
		Enemies: EnemiesConfig{
			AttackCooldownMS: 1000,
			Walker: WalkerConfig{
				Width:            96,
				Height:           128,
				Health:           3,
				FirstLevelHealth: 1,
				Score:            100,
				AttackRange:      100,
				AttackFromLevel:  2,
			},
			Chaser: ChaserConfig{
				Width:          64,
				Height:         64,
				Health:         1,
				Score:          50,
				JumpForce:      -800,
				JumpRange:      100,
				JumpAfterLevel: 3,
			},
			Boss: BossConfig{
				Width:      192,
				Height:     192,
				Health:     10,
				Score:      500,
				Speed:      120,
				MeleeRange: 200,
			},
		},
		PowerUps: PowerUpConfig{
			Width:         32,
			Height:        32,
			DurationMS:    7000,
			HealAmount:    1,
			ExtraLifeHeal: 2,
		},
		Difficulty: DifficultyConfig{
			SpeedScale: 1.0,
			WalkerSpeed: SpeedTable{
				{From: 1, Speed: 20},
				{From: 2, Speed: 30},
				{From: 3, Speed: 50},
				{From: 4, Speed: 80},
				{From: 6, Speed: 120},
				{From: 9, Speed: 140},
				{From: 16, Speed: 160},
			},
			ChaserSpeed: SpeedTable{
				{From: 1, Speed: 80},
				{From: 2, Speed: 120},
				{From: 3, Speed: 160},
				{From: 4, Speed: 200},
				{From: 6, Speed: 250},
				{From: 9, Speed: 275},
				{From: 16, Speed: 300},
			},
		},
		Loop: LoopConfig{
			TickMS:   1000.0 / 60,
			MaxSteps: 5,
		},
		Levels: LevelsConfig{
			Count:        100,
			MaxJumpStep:  200,
			HelperWidth:  120,
			HelperHeight: 20,
			Generator: GeneratorConfig{
				MinX:           50,
				MaxX:           1100,
				MinY:           300,
				MaxY:           700,
				MinWidth:       120,
				MaxWidth:       220,
				PlatformHeight: 40,
				EnemyLift:      130,
				PowerUpLift:    50,
			},
		},
	}
}
