package levels

import (
	"fmt"
	"math"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
)

// generatorSpan is the level index at which generated levels reach full difficulty.
const generatorSpan = 100

// Generator builds procedural levels. Output depends only on the run seed
// and the level index.
type Generator struct {
	world config.WorldConfig
	gen   config.GeneratorConfig
	seed  int64
}

// NewGenerator creates a generator for the given world and ranges.
func NewGenerator(world config.WorldConfig, gen config.GeneratorConfig, seed int64) *Generator {
	return &Generator{world: world, gen: gen, seed: seed}
}

// Generate builds level index. The ground platform is always first.
func (g *Generator) Generate(index int) Descriptor {
	rng := core.DeriveRNG(g.seed, index)

	d := Descriptor{
		Index:  index,
		Name:   fmt.Sprintf("Jungle Depth %d", index),
		Source: SourceGenerated,
	}
	d.Platforms = append(d.Platforms, core.R(0, g.world.GroundY, g.world.Width, g.world.Height-g.world.GroundY))

	difficulty := config.Progress(index, generatorSpan)
	enemyCount := int(math.Floor(3 + difficulty*5))
	platformCount := int(math.Floor(4 + difficulty*4))

	for i := 0; i < platformCount; i++ {
		x := g.intBetween(rng, g.gen.MinX, g.gen.MaxX)
		y := g.intBetween(rng, g.gen.MinY, g.gen.MaxY)
		w := g.intBetween(rng, g.gen.MinWidth, g.gen.MaxWidth)
		d.Platforms = append(d.Platforms, core.R(x, y, w, g.gen.PlatformHeight))
	}

	for i := 0; i < enemyCount; i++ {
		p := d.Platforms[rng.Intn(len(d.Platforms))]
		hi := math.Min(p.X+p.W-100, g.world.Width-100)
		x := g.intBetween(rng, p.X+50, hi)
		d.Enemies = append(d.Enemies, EnemySpec{
			Kind: g.enemyKind(rng, index),
			X:    x,
			Y:    p.Y - g.gen.EnemyLift,
		})
	}

	// Power-ups never sit on the ground
	count := rng.IntRange(1, 2)
	for i := 0; i < count; i++ {
		p := d.Platforms[rng.IntRange(1, len(d.Platforms)-1)]
		x := g.intBetween(rng, p.X+20, p.X+p.W-50)
		kind := core.AllPowerUps[rng.Intn(len(core.AllPowerUps))]
		d.PowerUps = append(d.PowerUps, PowerUpSpec{
			Kind: kind,
			X:    x,
			Y:    p.Y - g.gen.PowerUpLift,
		})
	}

	return d
}

// enemyKind picks the kind for one generated enemy.
func (g *Generator) enemyKind(rng *core.SimpleRNG, index int) core.EnemyKind {
	switch {
	case index%10 == 0:
		return core.EnemyBoss
	case index > 50 && rng.Float64() < 0.3:
		return core.EnemyBoss
	case rng.Float64() < 0.6:
		return core.EnemyWalker
	default:
		return core.EnemyChaser
	}
}

// intBetween returns a whole number in [lo, hi]. Inverted bounds yield lo.
func (g *Generator) intBetween(rng *core.SimpleRNG, lo, hi float64) float64 {
	return float64(rng.IntRange(int(math.Ceil(lo)), int(math.Floor(hi))))
}
