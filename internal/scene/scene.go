// Package scene keeps the drawable state of every circle. It is the render
// sink the animator reports to; front ends read it each frame.
package scene

import (
	"chosenoffset.com/bouncer/internal/motion"
)

// Sprite is what a front end needs to draw one circle.
type Sprite struct {
	ID       int
	Position motion.Vec
	Size     motion.Size
	Visual   motion.Visual
}

// Center returns the middle of the sprite's bounding box.
func (s Sprite) Center() (x, y float64) {
	return s.Position.X + s.Size.Width/2, s.Position.Y + s.Size.Height/2
}

// Radius returns half the sprite's width.
func (s Sprite) Radius() float64 {
	return s.Size.Width / 2
}

// Scene records creation and move events. It is not safe for concurrent use.
type Scene struct {
	sprites map[int]*Sprite
	order   []int
	moves   uint64
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{sprites: make(map[int]*Sprite)}
}

// ElementCreated adds a sprite for e. A repeated ID replaces the earlier sprite.
func (s *Scene) ElementCreated(e motion.Element) {
	if _, ok := s.sprites[e.ID]; !ok {
		s.order = append(s.order, e.ID)
	}
	s.sprites[e.ID] = &Sprite{
		ID:       e.ID,
		Position: e.Position,
		Size:     e.Size,
		Visual:   e.Visual,
	}
}

// ElementMoved updates a sprite's position. Unknown IDs are ignored.
func (s *Scene) ElementMoved(id int, pos motion.Vec) {
	sp, ok := s.sprites[id]
	if !ok {
		return
	}
	sp.Position = pos
	s.moves++
}

// Sprites returns the sprites in creation order.
func (s *Scene) Sprites() []Sprite {
	out := make([]Sprite, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.sprites[id])
	}
	return out
}

// Sprite looks up one sprite by ID.
func (s *Scene) Sprite(id int) (Sprite, bool) {
	sp, ok := s.sprites[id]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Len returns the number of sprites.
func (s *Scene) Len() int {
	return len(s.order)
}

// Moves returns how many position updates have been applied.
func (s *Scene) Moves() uint64 {
	return s.moves
}
