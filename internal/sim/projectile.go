package sim

import (
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
)

// Owner tells who fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota + 1
	OwnerHostile
)

// Point is a recorded trail position.
type Point struct {
	X, Y float64
}

// Projectile moves horizontally at a constant speed until it leaves the
// world or hits something. Destroyed is terminal.
type Projectile struct {
	Body
	Owner     Owner
	Dir       float64 // -1 or +1
	Damage    int
	Powered   bool           // Player shots only
	Source    core.EnemyKind // Hostile shots only
	Destroyed bool

	trail    []Point // Ring buffer, oldest at trailPos when full
	trailPos int
	trailCap int
}

// newPlayerShot creates a player projectile; powered selects the faster,
// stronger variant.
func newPlayerShot(cfg config.ProjectileConfig, x, y, dir float64, powered bool) *Projectile {
	speed, damage := cfg.Speed, cfg.Damage
	if powered {
		speed, damage = cfg.PoweredSpeed, cfg.PoweredDamage
	}
	p := &Projectile{
		Owner:    OwnerPlayer,
		Dir:      dir,
		Damage:   damage,
		Powered:  powered,
		trailCap: cfg.TrailLength,
	}
	p.Rect = core.R(x, y, cfg.Width, cfg.Height)
	p.VX = speed * dir
	if p.trailCap > 0 {
		p.trail = make([]Point, 0, p.trailCap)
	}
	return p
}

// newHostileShot creates an enemy projectile. Ranged shots are faster and
// hit harder than melee swipes.
func newHostileShot(cfg config.HostileConfig, attacker *Enemy, ranged bool) *Projectile {
	speed, damage := cfg.MeleeSpeed, cfg.MeleeDamage
	if ranged {
		speed, damage = cfg.RangedSpeed, cfg.RangedDamage
	}
	x := attacker.Right()
	if attacker.Dir < 0 {
		x = attacker.X - cfg.Width
	}
	p := &Projectile{
		Owner:  OwnerHostile,
		Dir:    attacker.Dir,
		Damage: damage,
		Source: attacker.Kind(),
	}
	p.Rect = core.R(x, attacker.Y+attacker.H/2-cfg.Height/2, cfg.Width, cfg.Height)
	p.VX = speed * attacker.Dir
	return p
}

// update moves the projectile and expires it past either world edge.
func (p *Projectile) update(sec, worldW float64) {
	p.pushTrail()
	p.X += p.VX * sec
	if p.X < -p.W || p.X > worldW {
		p.Destroyed = true
	}
}

func (p *Projectile) pushTrail() {
	if p.trailCap <= 0 {
		return
	}
	pt := Point{X: p.X, Y: p.Y}
	if len(p.trail) < p.trailCap {
		p.trail = append(p.trail, pt)
		return
	}
	p.trail[p.trailPos] = pt
	p.trailPos = (p.trailPos + 1) % p.trailCap
}

// Trail returns recent positions, oldest first.
func (p *Projectile) Trail() []Point {
	out := make([]Point, 0, len(p.trail))
	if len(p.trail) < p.trailCap {
		return append(out, p.trail...)
	}
	out = append(out, p.trail[p.trailPos:]...)
	return append(out, p.trail[:p.trailPos]...)
}
