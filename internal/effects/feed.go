package effects

import (
	"math"
	"strconv"

	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/sim"
)

// burst describes a radial spray of particles.
type burst struct {
	count              int
	speedMin, speedMax float64
	lifeMin, lifeMax   float64 // ms
	sizeMin, sizeMax   float64
}

var (
	explosion   = burst{count: 20, speedMin: 50, speedMax: 200, lifeMin: 300, lifeMax: 800, sizeMin: 2, sizeMax: 6}
	muzzleFlash = burst{count: 5, speedMin: 30, speedMax: 100, lifeMin: 150, lifeMax: 150, sizeMin: 4, sizeMax: 4}
	sparkle     = burst{count: 15, speedMin: 20, speedMax: 80, lifeMin: 500, lifeMax: 500, sizeMin: 3, sizeMax: 3}
)

// sparkleLift gives power-up particles an initial upward push.
const sparkleLift = 100

// maxEffects bounds the feed; the oldest effects go first.
const maxEffects = 512

// Feed turns simulation events into effects and ages them every frame.
// It is not safe for concurrent use; the frontend owns it.
type Feed struct {
	rng     *core.SimpleRNG
	effects []Effect
}

// NewFeed creates an empty feed. The seed only affects particle spread.
func NewFeed(seed int64) *Feed {
	return &Feed{rng: core.DeriveRNG(seed, 0xeff)}
}

// HandleAll spawns effects for a batch of events.
func (f *Feed) HandleAll(events []sim.Event) {
	for _, ev := range events {
		f.Handle(ev)
	}
}

// Handle spawns the effects of one event. Events without a visual are
// ignored.
func (f *Feed) Handle(ev sim.Event) {
	switch ev.Kind {
	case sim.EventEnemyDeath:
		f.explode(ev.X, ev.Y, enemyColor(ev.Enemy))
		f.add(NewPopup("+"+strconv.Itoa(ev.Score), ev.X, ev.Y, core.ColorGold))
	case sim.EventShoot:
		f.flash(ev.X, ev.Y, ev.Dir, ev.Powered)
	case sim.EventPowerUp:
		f.sparkle(ev.X, ev.Y, PowerUpColor(ev.PowerUp))
	}
}

func (f *Feed) explode(x, y float64, base core.Color) {
	palette := []core.Color{base, core.ColorOrange, core.ColorGold, core.ColorBrightWhite}
	for i := range explosion.count {
		angle := 2 * math.Pi * float64(i) / float64(explosion.count)
		speed := f.rng.FloatRange(explosion.speedMin, explosion.speedMax)
		c := palette[f.rng.Intn(len(palette))]
		size := f.rng.FloatRange(explosion.sizeMin, explosion.sizeMax)
		life := f.rng.FloatRange(explosion.lifeMin, explosion.lifeMax)
		f.add(NewParticle(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, size, c, life))
	}
}

func (f *Feed) flash(x, y, dir float64, powered bool) {
	palette := []core.Color{core.ColorBrightYellow, core.ColorOrange, core.ColorBrightWhite}
	if powered {
		palette = []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorGold}
	}
	heading := 0.0
	if dir < 0 {
		heading = math.Pi
	}
	for range muzzleFlash.count {
		angle := heading + (f.rng.Float64()-0.5)*0.5
		speed := f.rng.FloatRange(muzzleFlash.speedMin, muzzleFlash.speedMax)
		c := palette[f.rng.Intn(len(palette))]
		f.add(NewParticle(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, muzzleFlash.sizeMin, c, muzzleFlash.lifeMin))
	}
}

func (f *Feed) sparkle(x, y float64, c core.Color) {
	for i := range sparkle.count {
		angle := 2 * math.Pi * float64(i) / float64(sparkle.count)
		speed := f.rng.FloatRange(sparkle.speedMin, sparkle.speedMax)
		f.add(NewParticle(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed-sparkleLift, sparkle.sizeMin, c, sparkle.lifeMin))
	}
}

func (f *Feed) add(e Effect) {
	if len(f.effects) >= maxEffects {
		f.effects = f.effects[1:]
	}
	f.effects = append(f.effects, e)
}

// Update ages every effect by dt milliseconds and drops the expired ones.
func (f *Feed) Update(dt float64) {
	live := f.effects[:0]
	for _, e := range f.effects {
		e.Update(dt)
		if !e.Expired() {
			live = append(live, e)
		}
	}
	clear(f.effects[len(live):])
	f.effects = live
}

// Effects returns the live effects, oldest first. Read-only.
func (f *Feed) Effects() []Effect {
	return f.effects
}

// Len returns the number of live effects.
func (f *Feed) Len() int {
	return len(f.effects)
}

// Clear drops every effect, for example on restart.
func (f *Feed) Clear() {
	clear(f.effects)
	f.effects = f.effects[:0]
}

func enemyColor(k core.EnemyKind) core.Color {
	switch k {
	case core.EnemyWalker:
		return core.ColorGreen
	case core.EnemyChaser:
		return core.ColorBrown
	case core.EnemyBoss:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

// PowerUpColor returns the display colour of a collectible kind.
func PowerUpColor(k core.PowerUpKind) core.Color {
	switch k {
	case core.PowerUpHeal:
		return core.ColorBrightYellow
	case core.PowerUpExtraLife:
		return core.ColorGold
	case core.PowerUpFire:
		return core.ColorBrightRed
	case core.PowerUpSpeed:
		return core.ColorBrightCyan
	case core.PowerUpShield:
		return core.ColorBrightBlue
	case core.PowerUpMultiShot:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}
