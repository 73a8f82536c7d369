// Package levels provides level layouts for the simulation: an authored
// table, a procedural generator, a reachability repair pass and optional
// overrides loaded from YAML or Tiled files.
// This package depends on core and config but the simulation does not
// depend on how levels are produced.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/junglerun/internal/core"
)

// ErrNoLevel is returned for an index outside the available range.
var ErrNoLevel = errors.New("levels: no such level")

// Source tells where a descriptor came from.
type Source string

const (
	SourceAuthored  Source = "authored"
	SourceGenerated Source = "generated"
	SourceFile      Source = "file"
)

// EnemySpec places one enemy.
type EnemySpec struct {
	Kind core.EnemyKind
	X, Y float64
}

// PowerUpSpec places one collectible.
type PowerUpSpec struct {
	Kind core.PowerUpKind
	X, Y float64
}

// Descriptor is the static data of one level.
// Platforms are in landing-scan order; the first is usually the ground.
type Descriptor struct {
	Index     int
	Name      string
	Source    Source
	Platforms []core.Rect
	Enemies   []EnemySpec
	PowerUps  []PowerUpSpec
	Helpers   int    // Platforms inserted by the reachability repair
	FilePath  string // Set for file overrides
}

// Clone returns a deep copy so callers can never mutate provider data.
func (d Descriptor) Clone() Descriptor {
	out := d
	out.Platforms = append([]core.Rect(nil), d.Platforms...)
	out.Enemies = append([]EnemySpec(nil), d.Enemies...)
	out.PowerUps = append([]PowerUpSpec(nil), d.PowerUps...)
	return out
}

// ValidationError contains details about an invalid descriptor.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks sizes and kinds of every entry.
func (d Descriptor) Validate() error {
	if len(d.Platforms) == 0 {
		return ValidationError{
			Code:    "NO_PLATFORMS",
			Message: fmt.Sprintf("level %d has no platforms", d.Index),
		}
	}
	for i, p := range d.Platforms {
		if _, err := core.NewRect(p.X, p.Y, p.W, p.H); err != nil {
			return ValidationError{
				Code:    "DEGENERATE_PLATFORM",
				Message: fmt.Sprintf("level %d: platform %d: %v", d.Index, i, err),
				Err:     err,
			}
		}
	}
	for i, e := range d.Enemies {
		switch e.Kind {
		case core.EnemyWalker, core.EnemyChaser, core.EnemyBoss:
		default:
			return ValidationError{
				Code:    "UNKNOWN_ENEMY",
				Message: fmt.Sprintf("level %d: enemy %d has unknown kind %d", d.Index, i, e.Kind),
			}
		}
	}
	for i, p := range d.PowerUps {
		if p.Kind < core.PowerUpHeal || p.Kind > core.PowerUpMultiShot {
			return ValidationError{
				Code:    "UNKNOWN_POWERUP",
				Message: fmt.Sprintf("level %d: power-up %d has unknown kind %d", d.Index, i, p.Kind),
			}
		}
	}
	return nil
}
