// Package effects owns short-lived visual effects spawned from simulation
// events: particles and score popups. Effects never feed back into the
// simulation.
package effects

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/junglerun/internal/core"
)

// Effect is a transient visual. Particle and Popup are the only variants.
type Effect interface {
	// Update advances the effect by dt milliseconds.
	Update(dt float64)
	// Expired reports whether the effect can be dropped.
	Expired() bool

	effect()
}

// particleGravity pulls particles down, in world units per second squared.
const particleGravity = 500

// Particle is a single coloured speck with ballistic motion. Its alpha
// fades linearly over its lifetime.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.Color

	fade    *gween.Tween
	alpha   float64
	expired bool
}

// NewParticle creates a particle living for lifeMS milliseconds.
func NewParticle(x, y, vx, vy, size float64, c core.Color, lifeMS float64) *Particle {
	return &Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Size:  size,
		Color: c,
		fade:  gween.New(1, 0, float32(lifeMS/1000), ease.Linear),
		alpha: 1,
	}
}

func (*Particle) effect() {}

// Update moves the particle and advances its fade.
func (p *Particle) Update(dt float64) {
	if p.expired {
		return
	}
	sec := dt / 1000
	p.X += p.VX * sec
	p.Y += p.VY * sec
	p.VY += particleGravity * sec

	alpha, done := p.fade.Update(float32(sec))
	p.alpha = float64(alpha)
	p.expired = done
}

// Expired reports whether the particle's life has run out.
func (p *Particle) Expired() bool {
	return p.expired
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	return core.ClampF(p.alpha, 0, 1)
}

// Popup timing: text rises popupRise units over popupMS.
const (
	popupRise = 100
	popupMS   = 1000
)

// Popup is floating text such as "+100" above a defeated enemy.
type Popup struct {
	Text  string
	X     float64
	Color core.Color

	originY float64
	rise    *gween.Tween
	offset  float64
	expired bool
}

// NewPopup creates text rising from (x, y).
func NewPopup(text string, x, y float64, c core.Color) *Popup {
	return &Popup{
		Text:    text,
		X:       x,
		Color:   c,
		originY: y,
		rise:    gween.New(0, popupRise, popupMS/1000.0, ease.Linear),
	}
}

func (*Popup) effect() {}

// Update advances the rise.
func (p *Popup) Update(dt float64) {
	if p.expired {
		return
	}
	offset, done := p.rise.Update(float32(dt / 1000))
	p.offset = float64(offset)
	p.expired = done
}

// Expired reports whether the popup finished rising.
func (p *Popup) Expired() bool {
	return p.expired
}

// Y returns the current vertical position.
func (p *Popup) Y() float64 {
	return p.originY - p.offset
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Popup) Alpha() float64 {
	return core.ClampF(1-p.offset/popupRise, 0, 1)
}
