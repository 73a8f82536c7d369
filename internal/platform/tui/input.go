package tui

import (
	"time"

	"github.com/vovakirdan/junglerun/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for a short window after its last press. The initial
// auto-repeat delay is longer than the window; movement stutters once at
// the start of a long press.
const (
	defaultHoldWindow = 180 * time.Millisecond
	jumpHoldWindow    = 120 * time.Millisecond
)

// heldInput turns discrete key events into a per-frame Intent.
type heldInput struct {
	window    time.Duration
	left      time.Time
	right     time.Time
	jump      time.Time
	shootOnce bool
}

func newHeldInput(window time.Duration) heldInput {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return heldInput{window: window}
}

// Press records a key event at now.
func (h *heldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionMoveLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionMoveRight:
		h.right = now
		h.left = time.Time{}
	case core.ActionJump:
		h.jump = now
	case core.ActionShoot:
		h.shootOnce = true
	}
}

// Intent returns the input for the frame at now. A shot press is consumed
// by the first frame that sees it.
func (h *heldInput) Intent(now time.Time) core.Intent {
	in := core.Intent{
		MoveLeft:     held(h.left, now, h.window),
		MoveRight:    held(h.right, now, h.window),
		JumpHeld:     held(h.jump, now, min(h.window, jumpHoldWindow)),
		ShootPressed: h.shootOnce,
	}
	h.shootOnce = false
	return in
}

// Clear releases every key.
func (h *heldInput) Clear() {
	*h = heldInput{window: h.window}
}

func held(at, now time.Time, window time.Duration) bool {
	if at.IsZero() {
		return false
	}
	age := now.Sub(at)
	return age >= 0 && age < window
}
