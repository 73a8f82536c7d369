// Package sim is the simulation core: entities, the fixed-tick world step,
// collision resolution, level advancement and the fixed-timestep driver.
// It performs no I/O and spawns no goroutines; external sinks receive
// events and snapshots after each step.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/levels"
)

// LevelSource supplies level descriptors by 1-based index.
// A missing index is reported with levels.ErrNoLevel.
type LevelSource interface {
	Level(index int) (levels.Descriptor, error)
	Count() int
}

// StepResult is returned by World.Step.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// World owns every live entity of the current level and advances them one
// fixed tick at a time. It is single-writer: only Step, Reset and LoadLevel
// mutate it.
type World struct {
	cfg  config.GameConfig
	diff *config.DifficultyManager
	src  LevelSource

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	powerUps    []*PowerUp
	platforms   []Platform

	level     int
	levelName string
	score     int
	tick      uint64
	gameOver  bool
	won       bool
	err       error // Why the run stopped, when a level failed to load
}

// NewWorld creates a world and loads level 1.
func NewWorld(cfg config.GameConfig, src LevelSource) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		src:  src,
	}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset restarts the session: score 0, a fresh player, level 1.
func (w *World) Reset() error {
	p, err := NewPlayer(w.cfg.Player, w.cfg.Projectile)
	if err != nil {
		return fmt.Errorf("sim: player: %w", err)
	}
	w.player = p
	w.score = 0
	w.tick = 0
	w.gameOver = false
	w.won = false
	w.err = nil
	return w.LoadLevel(1)
}

// LoadLevel replaces platforms, enemies and power-ups with the given level
// and clears projectiles. The player keeps health, lives and timers.
// On error the world is left unchanged.
func (w *World) LoadLevel(index int) error {
	d, err := w.src.Level(index)
	if err != nil {
		return err
	}

	platforms := make([]Platform, 0, len(d.Platforms))
	for i, r := range d.Platforms {
		p, err := NewPlatform(r)
		if err != nil {
			return fmt.Errorf("sim: level %d: platform %d: %w", index, i, err)
		}
		platforms = append(platforms, p)
	}

	enemies := make([]*Enemy, 0, len(d.Enemies))
	for i, s := range d.Enemies {
		e, err := NewEnemy(w.cfg, w.diff, s.Kind, s.X, s.Y, index)
		if err != nil {
			return fmt.Errorf("sim: level %d: enemy %d: %w", index, i, err)
		}
		enemies = append(enemies, e)
	}

	powerUps := make([]*PowerUp, 0, len(d.PowerUps))
	for i, s := range d.PowerUps {
		u, err := NewPowerUp(w.cfg.PowerUps, s.Kind, s.X, s.Y)
		if err != nil {
			return fmt.Errorf("sim: level %d: power-up %d: %w", index, i, err)
		}
		powerUps = append(powerUps, u)
	}

	w.level = index
	w.levelName = d.Name
	w.platforms = platforms
	w.enemies = enemies
	w.powerUps = powerUps
	w.projectiles = nil
	w.player.resetForLevel()
	return nil
}

// Step advances the world by one fixed tick of dt milliseconds.
// Once the run is over Step does nothing and returns the final state.
func (w *World) Step(dt float64, in core.Intent) StepResult {
	if w.gameOver || w.won {
		return StepResult{State: w.State()}
	}

	w.tick++
	sec := dt / 1000
	gravity := w.cfg.Physics.Gravity
	worldW := w.cfg.World.Width

	// 1. Player
	shots, events := w.player.update(sec, in, w.platforms, gravity, worldW, w.tick)
	w.projectiles = append(w.projectiles, shots...)

	// 2. Enemies; attacks are collected and appended after the loop
	ctx := enemyContext{
		player:  w.player.Rect,
		level:   w.level,
		worldW:  worldW,
		sec:     sec,
		hostile: w.cfg.Hostile,
	}
	var spawns []*Projectile
	for _, e := range w.enemies {
		if e.Dead {
			continue
		}
		spawns = append(spawns, e.update(&ctx, w.platforms, gravity)...)
	}
	w.projectiles = append(w.projectiles, spawns...)

	// 3. Projectiles
	for _, p := range w.projectiles {
		if !p.Destroyed {
			p.update(sec, worldW)
		}
	}

	// 4. Power-ups
	for _, u := range w.powerUps {
		u.update(sec)
	}

	// 5. Collisions
	events = w.resolveCollisions(events)

	// 6. Purge
	w.purge()

	// 7. Game over, level clear
	switch {
	case w.player.Dead():
		w.gameOver = true
		events = append(events, Event{Kind: EventGameOver, Tick: w.tick, X: w.player.X, Y: w.player.Y, Level: w.level})
	case len(w.enemies) == 0:
		events = w.advance(events)
	}

	return StepResult{State: w.State(), Events: events}
}

// advance moves to the next level, or ends the run with a win when there
// is none.
func (w *World) advance(events []Event) []Event {
	done := w.level
	events = append(events, Event{Kind: EventLevelComplete, Tick: w.tick, Level: done})

	if err := w.LoadLevel(done + 1); err != nil {
		w.won = true
		if !errors.Is(err, levels.ErrNoLevel) {
			w.err = err
		}
		return append(events, Event{Kind: EventWin, Tick: w.tick, Level: done})
	}
	return events
}

// purge drops every entity carrying a terminal flag.
func (w *World) purge() {
	w.enemies = filter(w.enemies, func(e *Enemy) bool { return !e.Dead })
	w.projectiles = filter(w.projectiles, func(p *Projectile) bool { return !p.Destroyed })
	w.powerUps = filter(w.powerUps, func(u *PowerUp) bool { return !u.Collected })
}

// filter keeps matching items in place.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

// State returns the values exposed to the HUD and score storage.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:      w.score,
		Level:      w.level,
		Health:     w.player.Health,
		MaxHealth:  w.player.MaxHealth,
		ExtraLives: w.player.ExtraLives,
		GameOver:   w.gameOver,
		Won:        w.won,
	}
}

// Err returns the load failure that ended the run, if any. A run that
// simply ran out of levels has no error.
func (w *World) Err() error {
	return w.err
}

// Level returns the current 1-based level index.
func (w *World) Level() int {
	return w.level
}

// LevelName returns the name of the current level.
func (w *World) LevelName() string {
	return w.levelName
}

// Tick returns the number of steps run since Reset.
func (w *World) Tick() uint64 {
	return w.tick
}

// Player returns the player. Callers must treat it as read-only.
func (w *World) Player() *Player {
	return w.player
}

// Enemies returns the live enemies. Callers must treat them as read-only.
func (w *World) Enemies() []*Enemy {
	return w.enemies
}

// Projectiles returns the live projectiles. Read-only.
func (w *World) Projectiles() []*Projectile {
	return w.projectiles
}

// PowerUps returns the uncollected power-ups. Read-only.
func (w *World) PowerUps() []*PowerUp {
	return w.powerUps
}

// Platforms returns the level's platforms. Read-only.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.GameConfig {
	return w.cfg
}
