package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/levels"
)

func newCatalog(seed int64) *levels.Catalog {
	return levels.NewCatalog(config.DefaultGameConfig(), seed)
}

func TestAuthoredLevels(t *testing.T) {
	c := newCatalog(1)

	d, err := c.Level(1)
	if err != nil {
		t.Fatalf("Level(1) failed: %v", err)
	}
	if d.Source != levels.SourceAuthored || d.Name != "Tutorial" {
		t.Errorf("level 1 = %s %q", d.Source, d.Name)
	}
	if len(d.Platforms) != 4 || d.Platforms[0] != core.R(0, 800, 1280, 160) {
		t.Errorf("level 1 platforms = %+v", d.Platforms)
	}
	if len(d.Enemies) != 1 || d.Enemies[0] != (levels.EnemySpec{Kind: core.EnemyChaser, X: 400, Y: 560}) {
		t.Errorf("level 1 enemies = %+v", d.Enemies)
	}
	if len(d.PowerUps) != 1 || d.PowerUps[0].Kind != core.PowerUpHeal {
		t.Errorf("level 1 power-ups = %+v", d.PowerUps)
	}

	boss, err := c.Level(10)
	if err != nil {
		t.Fatalf("Level(10) failed: %v", err)
	}
	if len(boss.Enemies) != 1 || boss.Enemies[0].Kind != core.EnemyBoss {
		t.Errorf("level 10 should hold a single boss, got %+v", boss.Enemies)
	}
	if levels.AuthoredCount() != 10 {
		t.Errorf("AuthoredCount() = %d, expected 10", levels.AuthoredCount())
	}
}

func TestLevelOutOfRange(t *testing.T) {
	c := newCatalog(1)
	for _, idx := range []int{0, -1, 101} {
		if _, err := c.Level(idx); !errors.Is(err, levels.ErrNoLevel) {
			t.Errorf("Level(%d) error = %v, expected ErrNoLevel", idx, err)
		}
	}
	if c.Count() != 100 {
		t.Errorf("Count() = %d, expected 100", c.Count())
	}
}

func TestLevelReturnsCopy(t *testing.T) {
	c := newCatalog(1)
	d, _ := c.Level(2)
	d.Platforms[1] = core.R(0, 0, 1, 1)
	d.Enemies = nil

	again, _ := c.Level(2)
	if again.Platforms[1] == core.R(0, 0, 1, 1) || len(again.Enemies) != 3 {
		t.Error("mutating a returned descriptor changed catalog data")
	}
}

func TestGeneratedLevelsDeterministic(t *testing.T) {
	a := newCatalog(99)
	b := newCatalog(99)
	for idx := 11; idx <= 100; idx++ {
		da, err := a.Level(idx)
		if err != nil {
			t.Fatalf("Level(%d) failed: %v", idx, err)
		}
		db, _ := b.Level(idx)
		if len(da.Platforms) != len(db.Platforms) || len(da.Enemies) != len(db.Enemies) {
			t.Fatalf("level %d differs between identical seeds", idx)
		}
		for i := range da.Platforms {
			if da.Platforms[i] != db.Platforms[i] {
				t.Fatalf("level %d platform %d differs", idx, i)
			}
		}
		for i := range da.Enemies {
			if da.Enemies[i] != db.Enemies[i] {
				t.Fatalf("level %d enemy %d differs", idx, i)
			}
		}
	}
}

func TestGeneratedLevelShape(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := levels.NewGenerator(cfg.World, cfg.Levels.Generator, 5)

	tests := []struct {
		index     int
		enemies   int
		platforms int // including ground, before repair
	}{
		{11, 3, 5},
		{20, 4, 5},
		{40, 5, 6},
		{60, 6, 7},
		{100, 8, 9},
	}

	for _, tc := range tests {
		d := gen.Generate(tc.index)
		if len(d.Enemies) != tc.enemies {
			t.Errorf("level %d: %d enemies, expected %d", tc.index, len(d.Enemies), tc.enemies)
		}
		if len(d.Platforms) != tc.platforms {
			t.Errorf("level %d: %d platforms, expected %d", tc.index, len(d.Platforms), tc.platforms)
		}
		if d.Platforms[0] != core.R(0, 800, 1280, 160) {
			t.Errorf("level %d: first platform should be the ground, got %+v", tc.index, d.Platforms[0])
		}
		if n := len(d.PowerUps); n < 1 || n > 2 {
			t.Errorf("level %d: %d power-ups, expected 1..2", tc.index, n)
		}
		for i, p := range d.Platforms[1:] {
			if p.X < 50 || p.X > 1100 || p.Y < 300 || p.Y > 700 || p.W < 120 || p.W > 220 || p.H != 40 {
				t.Errorf("level %d: platform %d out of range: %+v", tc.index, i+1, p)
			}
		}
	}
}

func TestEveryTenthLevelIsBossOnly(t *testing.T) {
	c := newCatalog(3)
	for idx := 20; idx <= 100; idx += 10 {
		d, err := c.Level(idx)
		if err != nil {
			t.Fatalf("Level(%d) failed: %v", idx, err)
		}
		for i, e := range d.Enemies {
			if e.Kind != core.EnemyBoss {
				t.Errorf("level %d enemy %d is %v, expected boss", idx, i, e.Kind)
			}
		}
	}
}

func TestAllLevelsReachable(t *testing.T) {
	for _, seed := range []int64{1, 2, 42, 12345, -7} {
		c := newCatalog(seed)
		params := c.RepairParams()
		for idx := 1; idx <= c.Count(); idx++ {
			d, err := c.Level(idx)
			if err != nil {
				t.Fatalf("seed %d: Level(%d) failed: %v", seed, idx, err)
			}
			if bad := levels.Unreachable(d, params); len(bad) > 0 {
				t.Errorf("seed %d level %d: unreachable platforms %v", seed, idx, bad)
			}
		}
	}
}

func TestRepairInsertsHelpers(t *testing.T) {
	params := levels.RepairParams{
		GroundY:      800,
		WorldWidth:   1280,
		MaxJumpStep:  200,
		HelperWidth:  120,
		HelperHeight: 20,
	}
	d := levels.Descriptor{
		Index: 50,
		Platforms: []core.Rect{
			core.R(0, 800, 1280, 160),
			core.R(600, 300, 200, 40),
		},
	}

	if bad := levels.Unreachable(d, params); len(bad) != 1 || bad[0] != 1 {
		t.Fatalf("Unreachable() = %v, expected [1]", bad)
	}

	fixed := levels.Repair(d, params)
	if fixed.Helpers != 2 || len(fixed.Platforms) != 4 {
		t.Fatalf("Repair() added %d helpers (%d platforms), expected 2", fixed.Helpers, len(fixed.Platforms))
	}
	for _, h := range fixed.Platforms[2:] {
		if h.X != 640 {
			t.Errorf("helper should be centred under the platform, got x=%g", h.X)
		}
		if h.Y <= 300 || h.Y >= 800 {
			t.Errorf("helper y=%g should lie between platform and ground", h.Y)
		}
	}
	if bad := levels.Unreachable(fixed, params); len(bad) != 0 {
		t.Errorf("repaired level still has unreachable platforms: %v", bad)
	}

	// Idempotent
	again := levels.Repair(fixed, params)
	if len(again.Platforms) != len(fixed.Platforms) {
		t.Errorf("second Repair() changed the level: %d -> %d platforms", len(fixed.Platforms), len(again.Platforms))
	}

	// Original input untouched
	if len(d.Platforms) != 2 {
		t.Error("Repair() mutated its input")
	}
}

func TestRepairClampsHelpersInsideWorld(t *testing.T) {
	params := levels.RepairParams{GroundY: 800, WorldWidth: 1280, MaxJumpStep: 200, HelperWidth: 120, HelperHeight: 20}
	d := levels.Descriptor{Platforms: []core.Rect{
		core.R(0, 800, 1280, 160),
		core.R(1250, 350, 30, 40),
	}}
	fixed := levels.Repair(d, params)
	for _, h := range fixed.Platforms[2:] {
		if h.X < 0 || h.Right() > 1280 {
			t.Errorf("helper outside world: %+v", h)
		}
	}
}

func TestValidateRejectsDegeneratePlatform(t *testing.T) {
	c := newCatalog(1)
	c.SetOverrides([]levels.Descriptor{{
		Index:     12,
		Platforms: []core.Rect{core.R(0, 800, 1280, 160), core.R(10, 10, 0, 40)},
	}})

	_, err := c.Level(12)
	if !errors.Is(err, core.ErrDegenerateRect) {
		t.Errorf("Level(12) error = %v, expected ErrDegenerateRect", err)
	}
	var ve levels.ValidationError
	if !errors.As(err, &ve) || ve.Code != "DEGENERATE_PLATFORM" {
		t.Errorf("expected DEGENERATE_PLATFORM validation error, got %v", err)
	}
}

const yamlLevel = `
name: Canopy
platforms:
  - { x: 0, y: 800, w: 1280, h: 160 }
  - { x: 200, y: 650, w: 200, h: 40 }
enemies:
  - { kind: godzilla, x: 220, y: 500 }
  - { kind: chaser, x: 900, y: 700 }
powerups:
  - { kind: golden_banana, x: 250, y: 600 }
`

const tmxLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="platforms">
  <object id="1" x="0" y="800" width="1280" height="160"/>
 </objectgroup>
 <objectgroup id="2" name="enemies">
  <object id="2" name="boss" x="800" y="560" width="192" height="192"/>
 </objectgroup>
</map>
`

func TestLoaderAndOverrides(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "level_12.yaml"), yamlLevel)
	mustWrite(t, filepath.Join(dir, "13-arena.tmx"), tmxLevel)
	mustWrite(t, filepath.Join(dir, "broken_14.yaml"), "platforms: [")
	mustWrite(t, filepath.Join(dir, "notes.txt"), "ignored")

	loaded, errs := levels.NewLoader(dir).LoadAll()
	if len(errs) != 1 {
		t.Errorf("LoadAll() errors = %v, expected exactly one", errs)
	}
	if len(loaded) != 2 || loaded[0].Index != 12 || loaded[1].Index != 13 {
		t.Fatalf("LoadAll() = %+v", loaded)
	}
	if loaded[0].Enemies[0].Kind != core.EnemyWalker || loaded[0].PowerUps[0].Kind != core.PowerUpExtraLife {
		t.Errorf("legacy kind names not resolved: %+v", loaded[0])
	}

	c := newCatalog(1)
	c.SetOverrides(loaded)
	if got := c.Overrides(); len(got) != 2 || got[0] != 12 {
		t.Errorf("Overrides() = %v", got)
	}

	d, err := c.Level(12)
	if err != nil {
		t.Fatalf("Level(12) failed: %v", err)
	}
	if d.Source != levels.SourceFile || d.Name != "Canopy" {
		t.Errorf("level 12 = %s %q, expected file override", d.Source, d.Name)
	}

	d13, err := c.Level(13)
	if err != nil {
		t.Fatalf("Level(13) failed: %v", err)
	}
	if len(d13.Enemies) != 1 || d13.Enemies[0].Kind != core.EnemyBoss {
		t.Errorf("level 13 enemies = %+v", d13.Enemies)
	}
}

func TestToFormatRoundTrip(t *testing.T) {
	c := newCatalog(1)
	d, _ := c.Level(3)
	f := levels.ToFormat(d)
	if len(f.Platforms) != len(d.Platforms) || f.Enemies[0].Kind != "walker" || f.PowerUps[0].Kind != "fire" {
		t.Errorf("ToFormat() = %+v", f)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := levels.NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Non-level files are ignored
	mustWrite(t, filepath.Join(dir, "readme.md"), "x")
	path := filepath.Join(dir, "level_20.yaml")
	mustWrite(t, path, yamlLevel)

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "level_20.yaml" {
			t.Errorf("event for %q, expected level_20.yaml", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
