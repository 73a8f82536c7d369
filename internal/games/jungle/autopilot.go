package jungle

import (
	"math"

	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/sim"
)

// Autopilot distances in world units.
const (
	chaseDistance  = 250 // Walk toward targets farther than this
	dodgeDistance  = 220 // Jump over hostile shots closer than this
	aboveThreshold = 40  // Target counts as above when higher by this much
)

// Autopilot is a simple deterministic player used by the headless
// simulate command and by tests. It walks toward the nearest enemy, keeps
// shooting, jumps at targets above and over incoming hostile shots.
type Autopilot struct {
	jumpHeld bool
}

// NewAutopilot creates an autopilot.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Intent picks the input for the next frame.
func (a *Autopilot) Intent(snap sim.Snapshot) core.Intent {
	var in core.Intent
	if snap.State.Finished() {
		a.jumpHeld = false
		return in
	}

	p := snap.Player
	px, _ := p.Rect.Center()
	wantJump := threatened(snap)

	if target, ok := nearestEnemy(snap, px); ok {
		tx, _ := target.Rect.Center()
		dx := tx - px
		switch {
		case dx > chaseDistance:
			in.MoveRight = true
		case dx < -chaseDistance:
			in.MoveLeft = true
		case dx > 0 && p.Facing == sim.FacingLeft:
			in.MoveRight = true
		case dx < 0 && p.Facing == sim.FacingRight:
			in.MoveLeft = true
		}
		in.ShootPressed = true
		if target.Rect.Bottom() < p.Rect.Y-aboveThreshold && p.Jump != sim.DoubleJumped {
			wantJump = true
		}
	}

	// Jumps trigger on the press edge, so release between presses
	in.JumpHeld = wantJump && !a.jumpHeld
	a.jumpHeld = in.JumpHeld
	return in
}

func nearestEnemy(snap sim.Snapshot, px float64) (sim.EnemyView, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, e := range snap.Enemies {
		cx, _ := e.Rect.Center()
		if d := math.Abs(cx - px); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return sim.EnemyView{}, false
	}
	return snap.Enemies[best], true
}

// threatened reports whether a hostile shot is closing in at body height.
func threatened(snap sim.Snapshot) bool {
	p := snap.Player.Rect
	px, _ := p.Center()
	for _, s := range snap.Projectiles {
		if s.Owner != sim.OwnerHostile {
			continue
		}
		if s.Rect.Bottom() <= p.Y || s.Rect.Y >= p.Bottom() {
			continue
		}
		sx, _ := s.Rect.Center()
		dx := px - sx
		if math.Abs(dx) < dodgeDistance && core.Sign(dx) == core.Sign(s.Dir) {
			return true
		}
	}
	return false
}
