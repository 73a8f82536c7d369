package core

import "fmt"

// EnemyKind selects an enemy behaviour. The set is closed.
type EnemyKind uint8

const (
	EnemyWalker EnemyKind = iota + 1
	EnemyChaser
	EnemyBoss
)

// String returns the canonical level-file name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyWalker:
		return "walker"
	case EnemyChaser:
		return "chaser"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ParseEnemyKind accepts canonical names and the legacy sprite names
// used by older level files.
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch name {
	case "walker", "godzilla":
		return EnemyWalker, nil
	case "chaser", "dog":
		return EnemyChaser, nil
	case "boss":
		return EnemyBoss, nil
	}
	return 0, fmt.Errorf("core: unknown enemy kind %q", name)
}

// PowerUpKind selects the effect of a collectible. The set is closed.
type PowerUpKind uint8

const (
	PowerUpHeal PowerUpKind = iota + 1
	PowerUpExtraLife
	PowerUpFire
	PowerUpSpeed
	PowerUpShield
	PowerUpMultiShot
)

// AllPowerUps lists every power-up kind in a stable order.
var AllPowerUps = []PowerUpKind{
	PowerUpHeal,
	PowerUpExtraLife,
	PowerUpFire,
	PowerUpSpeed,
	PowerUpShield,
	PowerUpMultiShot,
}

// String returns the canonical level-file name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHeal:
		return "heal"
	case PowerUpExtraLife:
		return "extra_life"
	case PowerUpFire:
		return "fire"
	case PowerUpSpeed:
		return "speed"
	case PowerUpShield:
		return "shield"
	case PowerUpMultiShot:
		return "multi_shot"
	default:
		return "unknown"
	}
}

// Timed reports whether the kind grants a countdown effect.
func (k PowerUpKind) Timed() bool {
	switch k {
	case PowerUpFire, PowerUpSpeed, PowerUpShield, PowerUpMultiShot:
		return true
	}
	return false
}

// ParsePowerUpKind accepts canonical names and the legacy sprite names.
func ParsePowerUpKind(name string) (PowerUpKind, error) {
	switch name {
	case "heal", "banana":
		return PowerUpHeal, nil
	case "extra_life", "golden_banana":
		return PowerUpExtraLife, nil
	case "fire", "fire_flower":
		return PowerUpFire, nil
	case "speed", "speed_vine":
		return PowerUpSpeed, nil
	case "shield", "shield_coconut":
		return PowerUpShield, nil
	case "multi_shot", "multishot":
		return PowerUpMultiShot, nil
	}
	return 0, fmt.Errorf("core: unknown power-up kind %q", name)
}
