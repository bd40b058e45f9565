// Package spawn decides where new circles appear and what they look like.
package spawn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"chosenoffset.com/bouncer/internal/motion"
	"chosenoffset.com/bouncer/internal/random"
)

// ErrInvalidAxis is returned when PlanAxis gets an axis token other than "x" or "y".
var ErrInvalidAxis = errors.New("invalid axis")

// Axis tokens accepted by PlanAxis.
const (
	AxisX = "x"
	AxisY = "y"
)

// AxisPlan is the outcome of placing an element along one axis.
type AxisPlan struct {
	Drawn  float64 // raw draw in [1, extent], before the edge bias
	Biased float64 // final coordinate
}

// Placement is the planned geometry for one new element.
type Placement struct {
	Radius   int
	Size     motion.Size
	Position motion.Vec
	Drawn    motion.Vec // pre-bias draws, see AxisPlan
}

// Planner plans geometry, motion and looks for new elements.
type Planner struct {
	rnd    *random.Generator
	logger *log.Logger
}

// NewPlanner creates a planner drawing from rnd. A nil logger uses log.Default().
func NewPlanner(rnd *random.Generator, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.Default()
	}
	return &Planner{rnd: rnd, logger: logger}
}

// PlanAxis places an element of the given radius along one axis of c.
// A draw in the near half is pushed away from edge 0 by radius, a draw in the
// far half is pulled back from the far edge by radius. Large radii can still
// land outside the container; the motion engine sorts that out.
func (p *Planner) PlanAxis(axis string, radius int, c motion.Container) (AxisPlan, error) {
	var extent float64
	switch strings.ToLower(axis) {
	case AxisX:
		extent = c.Width()
	case AxisY:
		extent = c.Height()
	default:
		p.logger.Error("incorrect axis passed to planner", "axis", axis)
		return AxisPlan{}, fmt.Errorf("%w: %q", ErrInvalidAxis, axis)
	}

	raw := float64(p.rnd.Int(int(extent)))
	plan := AxisPlan{Drawn: raw}
	if raw < extent/2 {
		plan.Biased = raw + float64(radius)
	} else {
		plan.Biased = raw - float64(radius)
	}
	return plan, nil
}

// Plan draws a radius in [1, maxRadius] and places a square element of that
// size inside c, x axis first.
func (p *Planner) Plan(c motion.Container, maxRadius int) Placement {
	radius := p.rnd.Int(maxRadius)
	pl := Placement{
		Radius: radius,
		Size:   motion.Size{Width: float64(radius), Height: float64(radius)},
	}

	// Both tokens are valid, so the errors can only be nil here.
	x, _ := p.PlanAxis(AxisX, radius, c)
	y, _ := p.PlanAxis(AxisY, radius, c)

	pl.Position = motion.Vec{X: x.Biased, Y: y.Biased}
	pl.Drawn = motion.Vec{X: x.Drawn, Y: y.Drawn}
	return pl
}

// PlanVisual picks the fill, gradient and glow colors and an opacity.
func (p *Planner) PlanVisual() motion.Visual {
	return motion.Visual{
		Color:     p.rnd.Color(),
		Secondary: p.rnd.Color(),
		Opacity:   p.rnd.Opacity(),
		Glow:      p.rnd.Color(),
	}
}

// PlanMotion draws a signed delta per axis and splits each into a
// non-negative step and a starting direction.
func (p *Planner) PlanMotion() (motion.Step, motion.Direction) {
	dx, sx := split(p.rnd.AxisDelta())
	dy, sy := split(p.rnd.AxisDelta())
	return motion.Step{DX: dx, DY: dy}, motion.Direction{SX: sx, SY: sy}
}

func split(delta int) (float64, int) {
	if delta < 0 {
		return float64(-delta), -1
	}
	return float64(delta), 1
}
