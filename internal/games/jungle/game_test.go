package jungle

import (
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/junglerun/internal/audio"
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/levels"
	"github.com/vovakirdan/junglerun/internal/sim"
)

// frame is a little longer than one tick so every frame runs at least one.
const frame = 17 * time.Millisecond

var groundRect = core.R(0, 800, 1280, 160)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Config.World.Width == 0 {
		opts.Config = config.DefaultGameConfig()
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// shootingRange is a one-walker level right in front of the player.
func shootingRange(index int) levels.Descriptor {
	return levels.Descriptor{
		Index:     index,
		Name:      "Shooting Range",
		Source:    levels.SourceFile,
		Platforms: []core.Rect{groundRect},
		Enemies:   []levels.EnemySpec{{Kind: core.EnemyWalker, X: 600, Y: 672}},
	}
}

func TestNewGameStartsAtFirstLevel(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})

	st := g.State()
	if st.Level != 1 || st.Score != 0 || st.Health != 5 {
		t.Errorf("initial state = %+v", st)
	}
	if g.ID() != "junglerun" || g.Title() == "" {
		t.Error("missing game identity")
	}
}

func TestStartLevelSurvivesReset(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1, StartLevel: 3})
	if g.State().Level != 3 {
		t.Fatalf("Level = %d, expected 3", g.State().Level)
	}

	g.Frame(10*frame, core.Intent{MoveRight: true})
	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.State().Level != 3 || g.Snapshot().Tick != 0 {
		t.Errorf("after reset: level %d tick %d", g.State().Level, g.Snapshot().Tick)
	}
}

func TestStartLevelOutOfRange(t *testing.T) {
	_, err := New(Options{Config: config.DefaultGameConfig(), StartLevel: 1000})
	if err == nil {
		t.Error("expected an error for a start level past the catalog")
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1, Difficulty: config.DifficultyHard})
	if g.State().MaxHealth != 3 {
		t.Errorf("MaxHealth = %d, expected 3 on hard", g.State().MaxHealth)
	}
	if g.Difficulty() != config.DifficultyHard || g.Config().Player.MaxHealth != 3 {
		t.Error("preset not recorded")
	}
}

func TestFrameRunsFixedTicks(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})

	res := g.Frame(100*time.Millisecond, core.Intent{})
	if res.Ticks != 5 {
		t.Errorf("Ticks = %d, expected the per-frame cap of 5", res.Ticks)
	}

	res = g.Frame(50*time.Millisecond, core.Intent{})
	if res.Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", res.Ticks)
	}
	want := 8 * time.Second / 60
	if got := g.Played(); math.Abs(float64(got-want)) > float64(time.Millisecond) {
		t.Errorf("Played() = %v, expected about %v", got, want)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})
	g.Frame(frame, core.Intent{})
	tick := g.Snapshot().Tick

	g.TogglePause()
	res := g.Frame(10*frame, core.Intent{MoveRight: true})
	if res.Ticks != 0 || g.Snapshot().Tick != tick {
		t.Error("paused game kept simulating")
	}
	if !g.State().Paused || !g.Paused() {
		t.Error("State() should report the pause")
	}

	g.TogglePause()
	if res := g.Frame(frame, core.Intent{}); res.Ticks != 1 {
		t.Errorf("resumed frame ran %d ticks, expected 1", res.Ticks)
	}
}

func TestOverridesReplaceLevels(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1, Overrides: []levels.Descriptor{shootingRange(1)}})
	if g.Snapshot().LevelName != "Shooting Range" {
		t.Fatalf("LevelName = %q, expected the override", g.Snapshot().LevelName)
	}

	g.SetOverrides(nil)
	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.Snapshot().LevelName != "Tutorial" {
		t.Errorf("LevelName = %q, expected the built-in level after clearing", g.Snapshot().LevelName)
	}
}

func TestAutopilotClearsShootingRange(t *testing.T) {
	rec := &audio.Recorder{}
	g := newTestGame(t, Options{
		Seed:      1,
		Overrides: []levels.Descriptor{shootingRange(1)},
		Audio:     rec,
	})
	pilot := NewAutopilot()

	var events []sim.Event
	for range 180 {
		res := g.Frame(frame, pilot.Intent(g.Snapshot()))
		events = append(events, res.Events...)
		if g.State().Level == 2 {
			break
		}
	}

	if g.State().Level != 2 || g.State().Score < 100 {
		t.Fatalf("autopilot did not clear the level: %+v", g.State())
	}
	if !slices.ContainsFunc(events, func(e sim.Event) bool { return e.Kind == sim.EventLevelComplete }) {
		t.Error("missing level-complete event")
	}
	names := rec.Names()
	if !slices.Contains(names, "shoot") || !slices.Contains(names, "level-complete") {
		t.Errorf("audio cues = %v", names)
	}
	if len(g.Effects()) == 0 {
		t.Error("expected live effects after a kill")
	}
}

func TestAutopilotDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, Options{Seed: 99})
		pilot := NewAutopilot()
		for range 600 {
			g.Frame(frame, pilot.Intent(g.Snapshot()))
		}
		snap := g.Snapshot()
		return snap.Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("hashes differ: %d vs %d", a, b)
	}
}

func TestAutopilotJumpsOnEdges(t *testing.T) {
	snap := sim.Snapshot{
		Player: sim.PlayerView{Rect: core.R(100, 704, 64, 96), Facing: sim.FacingRight},
		Enemies: []sim.EnemyView{
			{Kind: core.EnemyWalker, Rect: core.R(150, 300, 96, 128)},
		},
	}
	pilot := NewAutopilot()

	first := pilot.Intent(snap)
	second := pilot.Intent(snap)
	third := pilot.Intent(snap)
	if !first.JumpHeld || second.JumpHeld || !third.JumpHeld {
		t.Errorf("jump presses = %v %v %v, expected press, release, press",
			first.JumpHeld, second.JumpHeld, third.JumpHeld)
	}
	if !first.ShootPressed {
		t.Error("autopilot should shoot at a target")
	}
}

func TestAutopilotDodgesHostileShots(t *testing.T) {
	snap := sim.Snapshot{
		Player: sim.PlayerView{Rect: core.R(100, 704, 64, 96)},
		Projectiles: []sim.ProjectileView{
			{Owner: sim.OwnerHostile, Rect: core.R(250, 740, 16, 16), Dir: -1},
		},
	}
	if in := NewAutopilot().Intent(snap); !in.JumpHeld {
		t.Error("autopilot should jump over an incoming shot")
	}

	snap.Projectiles[0].Dir = 1
	if in := NewAutopilot().Intent(snap); in.JumpHeld {
		t.Error("a shot flying away is no threat")
	}
}

func TestRenderHUDAndWorld(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Level 1: Tutorial") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.ContainsRune(hud, HeartFull) {
		t.Errorf("HUD row has no hearts: %q", hud)
	}
	if !strings.ContainsRune(screen.Row(23), GroundGlyph) {
		t.Errorf("bottom row = %q, expected ground", screen.Row(23))
	}
	if !strings.ContainsRune(screen.String(), PlayerGlyph) {
		t.Error("player not drawn")
	}
}

func TestRenderPowersLine(t *testing.T) {
	p := sim.PlayerView{}
	p.Powers[sim.PowerSpeed] = 6500
	p.Powers[sim.PowerShield] = 1

	if got := powersLine(p); got != "Speed 7s  Shield 1s" {
		t.Errorf("powersLine() = %q", got)
	}

	p = sim.PlayerView{Powered: true}
	if got := powersLine(p); got != "POWERED" {
		t.Errorf("powersLine() = %q", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})
	screen := core.NewScreen(80, 24)

	g.TogglePause()
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box missing")
	}

	small := core.NewScreen(20, 6)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screen warning missing")
	}
}
