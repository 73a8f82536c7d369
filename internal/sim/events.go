package sim

import "github.com/vovakirdan/junglerun/internal/core"

// EventKind identifies a discrete simulation event.
// Events are emitted once, on the tick that causes them, and are never
// derived from re-reading state.
type EventKind uint8

const (
	EventJump EventKind = iota + 1
	EventShoot
	EventHit
	EventEnemyDeath
	EventPowerUp
	EventLevelComplete
	EventGameOver
	EventWin
)

// String returns the trigger name used by audio cues and logs.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventEnemyDeath:
		return "enemy-death"
	case EventPowerUp:
		return "power-up"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for external sinks.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Tick    uint64
	X, Y    float64          // World position of the cause
	Dir     float64          // Shot direction for EventShoot
	Score   int              // Points awarded (EventEnemyDeath)
	Enemy   core.EnemyKind   // EventEnemyDeath
	PowerUp core.PowerUpKind // EventPowerUp
	Level   int              // Level that was completed or reached
	Powered bool             // EventShoot with the powered variant
}
