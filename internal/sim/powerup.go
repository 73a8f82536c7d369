package sim

import (
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
)

// PowerUp is a static collectible. Collected is terminal.
type PowerUp struct {
	core.Rect
	Kind      core.PowerUpKind
	Collected bool
}

// NewPowerUp places a collectible of the configured size.
func NewPowerUp(cfg config.PowerUpConfig, kind core.PowerUpKind, x, y float64) (*PowerUp, error) {
	r, err := core.NewRect(x, y, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &PowerUp{Rect: r, Kind: kind}, nil
}

// update is a no-op; collectibles do not move.
func (u *PowerUp) update(float64) {}

// apply gives the effect to the player.
func (u *PowerUp) apply(p *Player, cfg config.PowerUpConfig) {
	switch u.Kind {
	case core.PowerUpHeal:
		p.Heal(cfg.HealAmount)
	case core.PowerUpExtraLife:
		p.ExtraLives++
		p.Heal(cfg.ExtraLifeHeal)
	default:
		if pw, ok := powerFor(u.Kind); ok {
			p.Activate(pw, cfg.DurationMS)
		}
	}
}
