// Package core provides fundamental types and utilities shared by the
// simulation, level data and the terminal frontend.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrDegenerateRect is returned when a rectangle has a non-positive size.
var ErrDegenerateRect = errors.New("core: degenerate rectangle")

// Rect represents an axis-aligned bounding box in world units.
// Position is the top-left corner; y grows downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a rectangle and rejects non-positive sizes.
func NewRect(x, y, w, h float64) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, fmt.Errorf("%w: %gx%g at (%g,%g)", ErrDegenerateRect, w, h, x, y)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// R builds a rectangle without validation. Intended for constants and tests.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Valid reports whether both dimensions are positive.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or +1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
