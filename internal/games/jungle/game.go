// Package jungle wires the simulation to a frontend: it owns the level
// catalog, the world and its fixed-timestep driver, and feeds each frame's
// events to the effects feed, the audio player and the logger.
package jungle

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/junglerun/internal/audio"
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/effects"
	"github.com/vovakirdan/junglerun/internal/levels"
	"github.com/vovakirdan/junglerun/internal/sim"
)

// ID is the key under which scores are stored.
const ID = "junglerun"

// Options configures a Game.
type Options struct {
	Config     config.GameConfig
	Difficulty config.DifficultyPreset
	Seed       int64
	StartLevel int                 // 0 or 1 starts at the first level
	Overrides  []levels.Descriptor // File levels served in place of built-in ones
	Audio      audio.Sink          // nil for silence
	Logger     *log.Logger         // nil discards
}

// Game is one play session.
type Game struct {
	cfg        config.GameConfig
	difficulty config.DifficultyPreset
	seed       int64
	startLevel int

	catalog *levels.Catalog
	world   *sim.World
	driver  *sim.Driver
	feed    *effects.Feed
	audio   *audio.Player
	log     *log.Logger

	state  core.GameState
	paused bool
	played time.Duration // Simulated time, excluding pauses
}

// New builds a session and loads the start level.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if opts.Difficulty != "" {
		config.ApplyPreset(&cfg, opts.Difficulty)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	catalog := levels.NewCatalog(cfg, opts.Seed)
	if len(opts.Overrides) > 0 {
		catalog.SetOverrides(opts.Overrides)
	}

	world, err := sim.NewWorld(cfg, catalog)
	if err != nil {
		return nil, fmt.Errorf("jungle: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		difficulty: opts.Difficulty,
		seed:       opts.Seed,
		startLevel: max(opts.StartLevel, 1),
		catalog:    catalog,
		world:      world,
		driver:     sim.NewDriver(world, cfg.Loop),
		feed:       effects.NewFeed(opts.Seed),
		audio:      audio.NewPlayer(opts.Audio),
		log:        logger,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the score key.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Jungle Run"
}

// Reset restarts the session at the start level.
func (g *Game) Reset() error {
	if err := g.world.Reset(); err != nil {
		return fmt.Errorf("jungle: %w", err)
	}
	if g.startLevel > 1 {
		if err := g.world.LoadLevel(g.startLevel); err != nil {
			return fmt.Errorf("jungle: start level %d: %w", g.startLevel, err)
		}
	}
	g.driver.Reset()
	g.feed.Clear()
	g.paused = false
	g.played = 0
	g.state = g.world.State()
	g.log.Debug("session started", "level", g.world.Level(), "name", g.world.LevelName(), "seed", g.seed)
	return nil
}

// Frame advances the session by the wall time since the previous frame.
// The intent is applied to every tick run in this frame.
func (g *Game) Frame(elapsed time.Duration, in core.Intent) sim.FrameResult {
	if g.paused {
		return sim.FrameResult{State: g.State()}
	}

	running := !g.state.Finished()
	res := g.driver.AdvanceDuration(elapsed, in)
	if running {
		g.played += time.Duration(float64(res.Ticks) * g.driver.TickMS() * float64(time.Millisecond))
	}
	if res.Dropped > 0 {
		g.log.Debug("frame over budget", "ticks", res.Ticks, "dropped_ms", res.Dropped)
	}

	g.feed.HandleAll(res.Events)
	g.audio.Handle(res.Events)
	g.logEvents(res.Events)
	g.feed.Update(float64(elapsed) / float64(time.Millisecond))

	g.state = g.world.State()
	return res
}

func (g *Game) logEvents(events []sim.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventEnemyDeath:
			g.log.Debug("enemy defeated", "kind", ev.Enemy, "score", ev.Score, "tick", ev.Tick)
		case sim.EventPowerUp:
			g.log.Debug("power-up collected", "kind", ev.PowerUp, "tick", ev.Tick)
		case sim.EventHit:
			g.log.Debug("player hit", "health", g.world.Player().Health, "tick", ev.Tick)
		case sim.EventLevelComplete:
			g.log.Debug("level complete", "level", ev.Level, "tick", ev.Tick)
		case sim.EventGameOver:
			g.log.Debug("game over", "level", ev.Level, "score", g.world.State().Score)
		case sim.EventWin:
			if err := g.world.Err(); err != nil {
				g.log.Warn("run ended on a broken level", "level", ev.Level+1, "err", err)
				continue
			}
			g.log.Debug("run won", "score", g.world.State().Score)
		}
	}
}

// TogglePause pauses or resumes. Finished runs cannot be paused.
func (g *Game) TogglePause() {
	if g.state.Finished() {
		return
	}
	g.paused = !g.paused
	g.driver.Reset()
}

// Paused reports whether the session is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the HUD values after the last frame.
func (g *Game) State() core.GameState {
	st := g.state
	st.Paused = g.paused
	return st
}

// Snapshot returns a copy of the world for rendering or hashing.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Err returns the level load failure that ended the run, if any.
func (g *Game) Err() error {
	return g.world.Err()
}

// Played returns the simulated play time since Reset.
func (g *Game) Played() time.Duration {
	return g.played
}

// Config returns the configuration after the difficulty preset.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Seed returns the run seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// Difficulty returns the preset the session was built with.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.difficulty
}

// Effects returns the live visual effects.
func (g *Game) Effects() []effects.Effect {
	return g.feed.Effects()
}

// Catalog returns the level catalog.
func (g *Game) Catalog() *levels.Catalog {
	return g.catalog
}

// SetOverrides replaces the file levels. The current level keeps running;
// the next level load uses the new data.
func (g *Game) SetOverrides(overrides []levels.Descriptor) {
	g.catalog.SetOverrides(overrides)
	g.log.Info("level overrides reloaded", "levels", g.catalog.Overrides())
}

// SetMuted silences or restores audio cues.
func (g *Game) SetMuted(muted bool) {
	g.audio.SetMuted(muted)
}

// Muted reports whether audio cues are silenced.
func (g *Game) Muted() bool {
	return g.audio.Muted()
}
