// Package motion models a single bouncing circle and the per-tick rule that moves it.
package motion

import (
	"time"

	"chosenoffset.com/bouncer/internal/palette"
)

// Vec is a position in container units.
type Vec struct {
	X, Y float64
}

// Size is an element's bounding box.
type Size struct {
	Width, Height float64
}

// Step is the per-tick magnitude of travel on each axis. Both components are non-negative.
type Step struct {
	DX, DY float64
}

// Direction holds the sign of travel on each axis, each -1 or +1.
type Direction struct {
	SX, SY int
}

// Visual is the cosmetic part of an element. The engine never reads it.
type Visual struct {
	Color     palette.Color
	Secondary palette.Color
	Glow      palette.Color
	Opacity   float64
}

// Element is one animated circle.
type Element struct {
	ID        int
	Position  Vec // top-left corner
	Size      Size
	Step      Step
	Direction Direction
	Interval  time.Duration // how often Advance runs for this element
	Visual    Visual
}

// Container is the bounds an element bounces inside. Implementations may change
// size at any time; callers re-read it on every tick.
type Container interface {
	Width() float64
	Height() float64
}

// Bounds is a fixed-size Container.
type Bounds struct {
	W, H float64
}

// Width implements Container.
func (b Bounds) Width() float64 { return b.W }

// Height implements Container.
func (b Bounds) Height() float64 { return b.H }
