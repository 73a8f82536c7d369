package levels

import "github.com/vovakirdan/junglerun/internal/core"

// ground is shared by every authored level.
var ground = core.R(0, 800, 1280, 160)

func walker(x, y float64) EnemySpec { return EnemySpec{Kind: core.EnemyWalker, X: x, Y: y} }
func chaser(x, y float64) EnemySpec { return EnemySpec{Kind: core.EnemyChaser, X: x, Y: y} }
func boss(x, y float64) EnemySpec   { return EnemySpec{Kind: core.EnemyBoss, X: x, Y: y} }

func pickup(k core.PowerUpKind, x, y float64) PowerUpSpec {
	return PowerUpSpec{Kind: k, X: x, Y: y}
}

// authored holds the hand-built opening levels, in play order.
var authored = []Descriptor{
	{
		Name: "Tutorial",
		Platforms: []core.Rect{
			ground,
			core.R(200, 600, 200, 40),
			core.R(600, 500, 200, 40),
			core.R(1000, 600, 200, 40),
		},
		Enemies:  []EnemySpec{chaser(400, 560)},
		PowerUps: []PowerUpSpec{pickup(core.PowerUpHeal, 600, 700)},
	},
	{
		Name: "Basic Platforming",
		Platforms: []core.Rect{
			ground,
			core.R(100, 600, 160, 40),
			core.R(400, 500, 160, 40),
			core.R(700, 400, 160, 40),
			core.R(1000, 500, 160, 40),
		},
		Enemies:  []EnemySpec{walker(400, 460), walker(800, 360), chaser(1100, 460)},
		PowerUps: []PowerUpSpec{pickup(core.PowerUpExtraLife, 1000, 600)},
	},
	{
		Name: "Multiple Paths",
		Platforms: []core.Rect{
			ground,
			core.R(100, 600, 120, 40),
			core.R(300, 500, 120, 40),
			core.R(500, 400, 120, 40),
			core.R(700, 500, 120, 40),
			core.R(900, 600, 120, 40),
			core.R(1100, 500, 120, 40),
		},
		Enemies:  []EnemySpec{walker(400, 560), walker(600, 360), chaser(1000, 560)},
		PowerUps: []PowerUpSpec{pickup(core.PowerUpFire, 400, 560)},
	},
	{
		Name: "Vertical Challenge",
		Platforms: []core.Rect{
			ground,
			core.R(200, 700, 200, 40),
			core.R(200, 500, 200, 40),
			core.R(200, 300, 200, 40),
			core.R(600, 600, 200, 40),
			core.R(600, 400, 200, 40),
			core.R(1000, 700, 200, 40),
			core.R(1000, 500, 200, 40),
		},
		Enemies: []EnemySpec{walker(400, 660), walker(400, 460), chaser(700, 560), chaser(1100, 660)},
	},
	{
		Name: "First Mini-Boss",
		Platforms: []core.Rect{
			ground,
			core.R(100, 600, 200, 40),
			core.R(500, 500, 200, 40),
			core.R(900, 600, 200, 40),
		},
		Enemies: []EnemySpec{walker(400, 560), walker(700, 460), boss(1000, 560)},
	},
	{
		Name: "Stepping Stones",
		Platforms: []core.Rect{
			ground,
			core.R(200, 600, 160, 40),
			core.R(600, 500, 160, 40),
			core.R(1000, 600, 160, 40),
		},
		Enemies: []EnemySpec{walker(400, 560), walker(800, 460), chaser(1100, 560)},
	},
	{
		Name: "Enemy Waves",
		Platforms: []core.Rect{
			ground,
			core.R(100, 600, 200, 40),
			core.R(400, 500, 200, 40),
			core.R(700, 400, 200, 40),
			core.R(1000, 500, 200, 40),
		},
		Enemies: []EnemySpec{walker(400, 560), walker(600, 460), walker(800, 360), chaser(1100, 560)},
	},
	{
		Name: "Precision Platforming",
		Platforms: []core.Rect{
			ground,
			core.R(100, 600, 80, 40),
			core.R(300, 500, 80, 40),
			core.R(500, 400, 80, 40),
			core.R(700, 500, 80, 40),
			core.R(900, 600, 80, 40),
			core.R(1100, 700, 80, 40),
		},
		Enemies: []EnemySpec{walker(400, 660), walker(600, 460), chaser(1000, 560)},
	},
	{
		Name: "Enemy Coordination",
		Platforms: []core.Rect{
			ground,
			core.R(200, 600, 200, 40),
			core.R(600, 500, 200, 40),
			core.R(1000, 600, 200, 40),
		},
		Enemies: []EnemySpec{walker(400, 560), walker(700, 460), chaser(400, 560), chaser(1100, 560)},
	},
	{
		Name: "First Boss",
		Platforms: []core.Rect{
			ground,
			core.R(200, 600, 200, 40),
			core.R(600, 500, 200, 40),
			core.R(1000, 600, 200, 40),
		},
		Enemies: []EnemySpec{boss(800, 560)},
	},
}

// AuthoredCount returns how many hand-built levels exist.
func AuthoredCount() int {
	return len(authored)
}

// authoredLevel returns a copy of the authored level at 1-based index.
func authoredLevel(index int) (Descriptor, bool) {
	if index < 1 || index > len(authored) {
		return Descriptor{}, false
	}
	d := authored[index-1].Clone()
	d.Index = index
	d.Source = SourceAuthored
	return d, true
}
