package sim

import (
	"math"

	"github.com/vovakirdan/junglerun/internal/core"
)

// Snapshot is a value copy of everything a renderer needs.
// It shares no memory with the world.
type Snapshot struct {
	Tick      uint64
	Level     int
	LevelName string
	State     core.GameState
	World     core.Rect // Logical world bounds

	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	PowerUps    []PowerUpView
	Platforms   []core.Rect
}

// PlayerView is the renderable player state.
type PlayerView struct {
	Rect           core.Rect
	VX, VY         float64
	Facing         Facing
	Jump           JumpState
	HealthFraction float64
	Invincible     bool
	Powered        bool
	Powers         [powerCount]float64 // ms remaining per timed power
}

// EnemyView is the renderable state of one enemy.
type EnemyView struct {
	Kind           core.EnemyKind
	Rect           core.Rect
	Dir            float64
	HealthFraction float64
	Airborne       bool
}

// ProjectileView is the renderable state of one projectile.
type ProjectileView struct {
	Owner   Owner
	Rect    core.Rect
	Dir     float64
	Powered bool
	Source  core.EnemyKind
	Trail   []Point
}

// PowerUpView is the renderable state of one collectible.
type PowerUpView struct {
	Kind core.PowerUpKind
	Rect core.Rect
}

// Snapshot returns the current state of every live entity.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:      w.tick,
		Level:     w.level,
		LevelName: w.levelName,
		State:     w.State(),
		World:     core.R(0, 0, w.cfg.World.Width, w.cfg.World.Height),
		Player: PlayerView{
			Rect:           p.Rect,
			VX:             p.VX,
			VY:             p.VY,
			Facing:         p.Facing,
			Jump:           p.Jump,
			HealthFraction: p.HealthFraction(),
			Invincible:     p.Invincible > 0,
			Powered:        p.IsPowered(),
			Powers:         p.Timers,
		},
		Enemies:     make([]EnemyView, 0, len(w.enemies)),
		Projectiles: make([]ProjectileView, 0, len(w.projectiles)),
		PowerUps:    make([]PowerUpView, 0, len(w.powerUps)),
		Platforms:   make([]core.Rect, 0, len(w.platforms)),
	}

	for _, e := range w.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Kind:           e.Kind(),
			Rect:           e.Rect,
			Dir:            e.Dir,
			HealthFraction: e.HealthFraction(),
			Airborne:       e.airborne,
		})
	}
	for _, s := range w.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Owner:   s.Owner,
			Rect:    s.Rect,
			Dir:     s.Dir,
			Powered: s.Powered,
			Source:  s.Source,
			Trail:   s.Trail(),
		})
	}
	for _, u := range w.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{Kind: u.Kind, Rect: u.Rect})
	}
	for _, pl := range w.platforms {
		snap.Platforms = append(snap.Platforms, pl.Rect)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State.Health)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State.ExtraLives) //#nosec G115 -- hash computation
	h = hashRect(h, snap.Player.Rect)
	h = h*31 + math.Float64bits(snap.Player.VX)
	h = h*31 + math.Float64bits(snap.Player.VY)
	h = h*31 + uint64(snap.Player.Jump)
	for _, t := range snap.Player.Powers {
		h = h*31 + math.Float64bits(t)
	}

	for _, e := range snap.Enemies {
		h = h*31 + uint64(e.Kind)
		h = hashRect(h, e.Rect)
		h = h*31 + math.Float64bits(e.HealthFraction)
	}
	for _, p := range snap.Projectiles {
		h = h*31 + uint64(p.Owner)
		h = hashRect(h, p.Rect)
	}
	for _, u := range snap.PowerUps {
		h = h*31 + uint64(u.Kind)
		h = hashRect(h, u.Rect)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	h = h*31 + math.Float64bits(r.H)
	return h
}
