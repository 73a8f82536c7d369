package sim

import (
	"github.com/vovakirdan/junglerun/internal/core"
)

// Body is the physical state shared by every moving entity.
// Position and size are in world units, velocity in units per second.
type Body struct {
	core.Rect
	VX, VY float64
}

// fall applies gravity and integrates position with semi-implicit Euler.
func (b *Body) fall(gravity, sec float64) {
	b.VY += gravity * sec
	b.X += b.VX * sec
	b.Y += b.VY * sec
}

// landOn snaps the body onto the first platform whose top it has just
// crossed while moving down. Only top landings exist; sides and
// undersides never collide. Reports whether a snap happened.
func (b *Body) landOn(platforms []Platform) bool {
	landed := false
	for _, p := range platforms {
		if b.VY <= 0 {
			break
		}
		bottom := b.Bottom()
		if bottom > p.Y && bottom < p.Bottom() && b.Right() > p.X && b.X < p.Right() {
			b.Y = p.Y - b.H
			b.VY = 0
			landed = true
		}
	}
	return landed
}

// Platform is a static rectangle. It is immutable after level load.
type Platform struct {
	core.Rect
}

// NewPlatform validates the rectangle and wraps it.
func NewPlatform(r core.Rect) (Platform, error) {
	if _, err := core.NewRect(r.X, r.Y, r.W, r.H); err != nil {
		return Platform{}, err
	}
	return Platform{Rect: r}, nil
}
