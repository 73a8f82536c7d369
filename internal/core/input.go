package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform layer maps keys to actions; the simulation only sees an Intent.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionJump             // Space, W, Up
	ActionShoot            // J, X, F
	ActionPause            // P, Escape
	ActionRestart          // R key - restart after game over
	ActionQuit             // Q, Ctrl+C
	ActionHelp             // ? - toggle full help
	ActionMute             // M - silence audio cues
	ActionScreenshot       // Ctrl+S - dump the frame to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	case ActionMute:
		return "Mute"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Intent is the per-frame input snapshot consumed by the simulation.
// The same Intent is applied to every fixed tick of a frame.
type Intent struct {
	MoveLeft     bool
	MoveRight    bool
	JumpHeld     bool
	ShootPressed bool
}

// Bits packs the intent into a small integer for hashing and replay logs.
func (in Intent) Bits() uint8 {
	var b uint8
	if in.MoveLeft {
		b |= 1
	}
	if in.MoveRight {
		b |= 2
	}
	if in.JumpHeld {
		b |= 4
	}
	if in.ShootPressed {
		b |= 8
	}
	return b
}

// IntentFromBits is the inverse of Intent.Bits.
func IntentFromBits(b uint8) Intent {
	return Intent{
		MoveLeft:     b&1 != 0,
		MoveRight:    b&2 != 0,
		JumpHeld:     b&4 != 0,
		ShootPressed: b&8 != 0,
	}
}
