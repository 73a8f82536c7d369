package sim

import (
	"fmt"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
)

// behavior is the per-kind AI of an enemy. The set of implementations is
// closed and chosen once, when the enemy is built.
type behavior interface {
	kind() core.EnemyKind
	// think sets velocity and direction for this tick and returns any
	// attacks as spawn requests. It never touches world collections.
	think(e *Enemy, ctx *enemyContext) []*Projectile
}

// enemyContext is the read-only view of the world an enemy reacts to.
type enemyContext struct {
	player  core.Rect
	level   int
	worldW  float64
	sec     float64
	hostile config.HostileConfig
}

// Enemy is a hostile actor. Dead is terminal.
type Enemy struct {
	Body
	Health    int
	MaxHealth int
	Speed     float64
	Dir       float64 // -1 or +1
	Cooldown  float64 // ms until the next attack is allowed
	Dead      bool

	airborne bool
	score    int
	cooldown float64 // Base attack cooldown in ms
	ai       behavior
}

// Kind returns the enemy variant.
func (e *Enemy) Kind() core.EnemyKind {
	return e.ai.kind()
}

// Score returns the points awarded when this enemy dies.
func (e *Enemy) Score() int {
	return e.score
}

// Airborne reports whether the enemy jumped and has not landed yet.
func (e *Enemy) Airborne() bool {
	return e.airborne
}

// HealthFraction returns health/maxHealth within [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(e.Health)/float64(e.MaxHealth), 0, 1)
}

// NewEnemy builds an enemy of the given kind for a level. Size, health and
// speed come from the kind and the level index.
func NewEnemy(cfg config.GameConfig, diff *config.DifficultyManager, kind core.EnemyKind, x, y float64, level int) (*Enemy, error) {
	e := &Enemy{
		Dir:      -1,
		cooldown: cfg.Enemies.AttackCooldownMS,
	}

	var w, h float64
	switch kind {
	case core.EnemyWalker:
		c := cfg.Enemies.Walker
		w, h = c.Width, c.Height
		e.Health = c.Health
		if level <= 1 {
			e.Health = c.FirstLevelHealth
		}
		e.score = c.Score
		e.Speed = diff.WalkerSpeed(level)
		e.ai = walker{attackRange: c.AttackRange, attackFrom: c.AttackFromLevel}
	case core.EnemyChaser:
		c := cfg.Enemies.Chaser
		w, h = c.Width, c.Height
		e.Health = c.Health
		e.score = c.Score
		e.Speed = diff.ChaserSpeed(level)
		e.ai = chaser{jumpForce: c.JumpForce, jumpRange: c.JumpRange, jumpAfter: c.JumpAfterLevel}
	case core.EnemyBoss:
		c := cfg.Enemies.Boss
		w, h = c.Width, c.Height
		e.Health = c.Health
		e.score = c.Score
		e.Speed = diff.Scale(c.Speed)
		e.ai = boss{meleeRange: c.MeleeRange}
	default:
		return nil, fmt.Errorf("sim: unknown enemy kind %d", kind)
	}

	r, err := core.NewRect(x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("sim: %s: %w", kind, err)
	}
	if e.Health < 1 {
		e.Health = 1
	}
	e.Rect = r
	e.MaxHealth = e.Health
	return e, nil
}

// update runs behaviour, gravity, integration, landing and the cooldown,
// in that order.
func (e *Enemy) update(ctx *enemyContext, platforms []Platform, gravity float64) []*Projectile {
	spawns := e.ai.think(e, ctx)
	e.fall(gravity, ctx.sec)
	if e.landOn(platforms) {
		e.airborne = false
	}
	e.Cooldown = decay(e.Cooldown, ctx.sec*1000)
	return spawns
}

// TakeDamage subtracts health. Reports true exactly once, on the hit that
// kills the enemy; hits on a dead enemy are ignored.
func (e *Enemy) TakeDamage(amount int) bool {
	if e.Dead {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Dead = true
		return true
	}
	return false
}

// attack fires one hostile projectile and restarts the cooldown.
func (e *Enemy) attack(ctx *enemyContext, ranged bool) *Projectile {
	e.Cooldown = e.cooldown
	if ranged {
		e.Cooldown = e.cooldown * 2
	}
	return newHostileShot(ctx.hostile, e, ranged)
}

// facePlayer turns toward the player and returns the horizontal distance.
func (e *Enemy) facePlayer(player core.Rect) float64 {
	dx := player.X - e.X
	if dx > 0 {
		e.Dir = 1
	} else {
		e.Dir = -1
	}
	return dx
}

// walker patrols between the world edges and swipes at a nearby player.
type walker struct {
	attackRange float64
	attackFrom  int
}

func (walker) kind() core.EnemyKind { return core.EnemyWalker }

func (w walker) think(e *Enemy, ctx *enemyContext) []*Projectile {
	e.VX = e.Speed * e.Dir
	switch {
	case e.X <= 0:
		e.Dir = 1
	case e.Right() >= ctx.worldW:
		e.Dir = -1
	}

	if ctx.level < w.attackFrom || e.Cooldown > 0 {
		return nil
	}
	if dx := ctx.player.X - e.X; dx < w.attackRange && dx > -w.attackRange {
		return []*Projectile{e.attack(ctx, false)}
	}
	return nil
}

// chaser runs at the player and, on later levels, jumps after it.
type chaser struct {
	jumpForce float64
	jumpRange float64
	jumpAfter int
}

func (chaser) kind() core.EnemyKind { return core.EnemyChaser }

func (c chaser) think(e *Enemy, ctx *enemyContext) []*Projectile {
	dx := e.facePlayer(ctx.player)
	e.VX = e.Speed * e.Dir

	if ctx.level > c.jumpAfter && !e.airborne && ctx.player.Y < e.Y && dx < c.jumpRange && dx > -c.jumpRange {
		e.VY = c.jumpForce
		e.airborne = true
	}
	return nil
}

// boss pursues the player without leaving the world and alternates between
// a melee swipe and a slower-firing ranged shot.
type boss struct {
	meleeRange float64
}

func (boss) kind() core.EnemyKind { return core.EnemyBoss }

func (b boss) think(e *Enemy, ctx *enemyContext) []*Projectile {
	dx := e.facePlayer(ctx.player)
	e.VX = e.Speed * e.Dir

	next := e.X + e.VX*ctx.sec
	if next < 0 || next+e.W > ctx.worldW {
		e.VX = 0
		e.X = core.ClampF(e.X, 0, max(0, ctx.worldW-e.W))
	}

	if e.Cooldown > 0 {
		return nil
	}
	ranged := dx >= b.meleeRange || dx <= -b.meleeRange
	return []*Projectile{e.attack(ctx, ranged)}
}
