// Package random produces the bounded draws used to place and decorate circles.
// All draws go through a configurable random source so tests can seed them.
package random

import (
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/bouncer/internal/palette"
)

// Generator handles random draws with a configurable random source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a new Generator with the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a Generator from a seed. A zero seed uses the current time.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.New(rand.NewSource(seed)))
}

// Int returns an integer in [1, ceiling], uniformly distributed.
// Ceilings below 1 are the caller's problem; the result is then meaningless but never panics.
func (g *Generator) Int(ceiling int) int {
	return int(math.Floor(g.rng.Float64()*float64(ceiling))) + 1
}

// Color returns a uniformly chosen palette entry.
func (g *Generator) Color() palette.Color {
	return palette.Colors[g.Int(len(palette.Colors))-1]
}

// AxisDelta returns a signed per-tick delta with magnitude 1..3.
// The sign is negative when a 1..10 draw lands below 5.
func (g *Generator) AxisDelta() int {
	delta := g.Int(3)
	if g.Int(10) >= 5 {
		return delta
	}
	return -delta
}

// Opacity returns one of 0.5, 0.6, 0.7, 0.8 or 0.9.
func (g *Generator) Opacity() float64 {
	return float64(10-g.Int(5)) / 10
}
