package sim

import (
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
)

// JumpState is the jump ladder: Grounded -> SingleJumped -> DoubleJumped.
// Only a platform landing returns it to Grounded.
type JumpState uint8

const (
	Grounded JumpState = iota
	SingleJumped
	DoubleJumped
)

// String returns the state name.
func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case SingleJumped:
		return "single"
	case DoubleJumped:
		return "double"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction the player looks at.
type Facing int8

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Power indexes the four timed power-ups.
type Power uint8

const (
	PowerFire Power = iota
	PowerSpeed
	PowerShield
	PowerMultiShot
	powerCount
)

// String returns the HUD label of the power.
func (p Power) String() string {
	switch p {
	case PowerFire:
		return "Fire"
	case PowerSpeed:
		return "Speed"
	case PowerShield:
		return "Shield"
	case PowerMultiShot:
		return "Multi"
	default:
		return "?"
	}
}

// powerFor maps a timed collectible to its timer slot.
func powerFor(k core.PowerUpKind) (Power, bool) {
	switch k {
	case core.PowerUpFire:
		return PowerFire, true
	case core.PowerUpSpeed:
		return PowerSpeed, true
	case core.PowerUpShield:
		return PowerShield, true
	case core.PowerUpMultiShot:
		return PowerMultiShot, true
	}
	return 0, false
}

// Player is the controlled actor. It persists across level transitions.
type Player struct {
	Body
	Health     int
	MaxHealth  int
	ExtraLives int
	Facing     Facing
	Jump       JumpState

	ShootCooldown float64             // ms, fire allowed at <= 0
	Timers        [powerCount]float64 // ms remaining, 0 = inactive
	Invincible    float64             // ms remaining
	Powered       float64             // ms remaining of the legacy powered state

	jumpHeld bool // JumpHeld on the previous tick, for edge detection

	cfg  config.PlayerConfig
	shot config.ProjectileConfig
}

// NewPlayer creates a player at its start position with full health.
func NewPlayer(cfg config.PlayerConfig, shot config.ProjectileConfig) (*Player, error) {
	r, err := core.NewRect(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Player{
		Body:       Body{Rect: r},
		Health:     cfg.MaxHealth,
		MaxHealth:  cfg.MaxHealth,
		ExtraLives: cfg.ExtraLives,
		Facing:     FacingRight,
		cfg:        cfg,
		shot:       shot,
	}, nil
}

// resetForLevel moves the player back to the start pose. Health, lives and
// timers carry over.
func (p *Player) resetForLevel() {
	p.X, p.Y = p.cfg.StartX, p.cfg.StartY
	p.VX, p.VY = 0, 0
	p.Jump = Grounded
}

// Active reports whether a timed power is running.
func (p *Player) Active(pw Power) bool {
	return p.Timers[pw] > 0
}

// IsPowered reports whether shots use the powered variant.
// Fire and the legacy powered state are independent sources.
func (p *Player) IsPowered() bool {
	return p.Powered > 0 || p.Active(PowerFire)
}

// Dead reports whether the player is out of health and lives.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// HealthFraction returns health/maxHealth within [0, 1].
func (p *Player) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Health)/float64(p.MaxHealth), 0, 1)
}

// update advances the player one tick. It returns spawned projectiles and
// the events caused by this tick's input.
func (p *Player) update(sec float64, in core.Intent, platforms []Platform, gravity, worldW float64, tick uint64) ([]*Projectile, []Event) {
	var events []Event

	speed := p.cfg.Speed
	if p.Active(PowerSpeed) {
		speed *= p.cfg.SpeedBoost
	}
	switch {
	case in.MoveLeft:
		p.VX = -speed
		p.Facing = FacingLeft
	case in.MoveRight:
		p.VX = speed
		p.Facing = FacingRight
	default:
		p.VX = 0
	}

	// Jump fires on the press edge only
	if in.JumpHeld && !p.jumpHeld {
		switch p.Jump {
		case Grounded:
			p.VY = p.cfg.JumpForce
			p.Jump = SingleJumped
			events = append(events, Event{Kind: EventJump, Tick: tick, X: p.X, Y: p.Y})
		case SingleJumped:
			p.VY = p.cfg.JumpForce * p.cfg.DoubleJumpFactor
			p.Jump = DoubleJumped
			events = append(events, Event{Kind: EventJump, Tick: tick, X: p.X, Y: p.Y})
		}
	}
	p.jumpHeld = in.JumpHeld

	p.fall(gravity, sec)
	if p.landOn(platforms) {
		p.Jump = Grounded
	}
	p.wrap(worldW)

	var shots []*Projectile
	if in.ShootPressed && p.ShootCooldown <= 0 {
		shots = p.shoot()
		x, y := shots[0].X, shots[0].Y
		events = append(events, Event{
			Kind:    EventShoot,
			Tick:    tick,
			X:       x,
			Y:       y,
			Dir:     float64(p.Facing),
			Powered: p.IsPowered(),
		})
	}

	p.countdown(sec * 1000)
	return shots, events
}

// wrap teleports the player to the opposite edge after leaving the world
// horizontally.
func (p *Player) wrap(worldW float64) {
	switch {
	case p.X < 0:
		p.X = worldW - p.W
	case p.Right() > worldW:
		p.X = 0
	}
}

// shoot spawns one projectile, or three with MultiShot, and starts the
// cooldown. The caller checks the cooldown.
func (p *Player) shoot() []*Projectile {
	dir := float64(p.Facing)
	x := p.X
	if p.Facing == FacingRight {
		x = p.Right()
	}
	y := p.Y + p.H/2 - p.shot.Height/2
	powered := p.IsPowered()

	shots := []*Projectile{newPlayerShot(p.shot, x, y, dir, powered)}
	if p.Active(PowerMultiShot) {
		spread := p.cfg.MultiShotSpread
		shots = append(shots,
			newPlayerShot(p.shot, x, y-spread, dir, powered),
			newPlayerShot(p.shot, x, y+spread, dir, powered),
		)
	}
	p.ShootCooldown = p.cfg.ShootDelayMS
	return shots
}

// countdown decrements every timer, clamping at zero on the tick it
// crosses so no negative remainder ever leaks out.
func (p *Player) countdown(ms float64) {
	p.ShootCooldown = decay(p.ShootCooldown, ms)
	for i := range p.Timers {
		p.Timers[i] = decay(p.Timers[i], ms)
	}
	p.Invincible = decay(p.Invincible, ms)
	p.Powered = decay(p.Powered, ms)
}

// timerEpsilon is the float residue below which a timer counts as expired.
const timerEpsilon = 1e-6

func decay(timer, ms float64) float64 {
	left := timer - ms
	if left < timerEpsilon {
		return 0
	}
	return left
}

// TakeDamage applies a hit. It is a no-op while Shield or invincibility is
// active. The legacy powered state absorbs the health loss but still
// starts invincibility. An extra life is spent instead of dying.
// Reports whether health was reduced.
func (p *Player) TakeDamage(amount int) bool {
	if p.Active(PowerShield) || p.Invincible > 0 {
		return false
	}
	hurt := false
	if p.Powered <= 0 && amount > 0 {
		p.Health -= amount
		hurt = true
		if p.Health <= 0 && p.ExtraLives > 0 {
			p.ExtraLives--
			p.Health = p.MaxHealth
		}
		if p.Health < 0 {
			p.Health = 0
		}
	}
	p.Invincible = p.cfg.InvincibleMS
	return hurt
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// Activate starts or refreshes a timed power. Remaining time is replaced,
// never stacked.
func (p *Player) Activate(pw Power, durationMS float64) {
	p.Timers[pw] = durationMS
}

// PowerUp starts the legacy powered state.
func (p *Player) PowerUp() {
	p.Powered = p.cfg.PoweredMS
}
