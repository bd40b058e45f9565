package spawn

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/bouncer/internal/motion"
	"chosenoffset.com/bouncer/internal/random"
)

func newTestPlanner(seed int64) (*Planner, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return NewPlanner(random.NewSeeded(seed), logger), &buf
}

func TestPlanAxisBias(t *testing.T) {
	p, _ := newTestPlanner(1)
	c := motion.Bounds{W: 800, H: 600}

	for i := 0; i < 2000; i++ {
		for _, axis := range []string{"x", "y", "X", "Y"} {
			plan, err := p.PlanAxis(axis, 40, c)
			require.NoError(t, err)

			extent := c.W
			if axis == "y" || axis == "Y" {
				extent = c.H
			}
			assert.GreaterOrEqual(t, plan.Drawn, 1.0)
			assert.LessOrEqual(t, plan.Drawn, extent)

			if plan.Drawn < extent/2 {
				assert.Equal(t, plan.Drawn+40, plan.Biased, "near half is pushed inward")
			} else {
				assert.Equal(t, plan.Drawn-40, plan.Biased, "far half is pulled inward")
			}
		}
	}
}

func TestPlanAxisInvalid(t *testing.T) {
	p, buf := newTestPlanner(1)

	plan, err := p.PlanAxis("z", 10, motion.Bounds{W: 100, H: 100})
	require.ErrorIs(t, err, ErrInvalidAxis)
	assert.Equal(t, AxisPlan{}, plan)
	assert.Contains(t, buf.String(), "incorrect axis")
	assert.Contains(t, buf.String(), "z")
}

func TestPlanGeometry(t *testing.T) {
	p, _ := newTestPlanner(2)
	c := motion.Bounds{W: 1024, H: 512}

	for i := 0; i < 1000; i++ {
		pl := p.Plan(c, 200)
		assert.GreaterOrEqual(t, pl.Radius, 1)
		assert.LessOrEqual(t, pl.Radius, 200)
		assert.Equal(t, float64(pl.Radius), pl.Size.Width)
		assert.Equal(t, pl.Size.Width, pl.Size.Height)

		// The raw draw is never negative, whatever the bias does afterwards.
		assert.GreaterOrEqual(t, pl.Drawn.X, 1.0)
		assert.GreaterOrEqual(t, pl.Drawn.Y, 1.0)
	}
}

func TestPlanLargeRadiusCanLandOutside(t *testing.T) {
	p, _ := newTestPlanner(3)
	// Radius ceiling far larger than the container.
	c := motion.Bounds{W: 20, H: 20}

	outside := false
	for i := 0; i < 500 && !outside; i++ {
		pl := p.Plan(c, 200)
		if pl.Position.X < 0 || pl.Position.X > c.W-pl.Size.Width {
			outside = true
		}
	}
	assert.True(t, outside, "placement is not clamped into the container")
}

func TestPlanMotion(t *testing.T) {
	p, _ := newTestPlanner(4)
	neg, pos := 0, 0
	for i := 0; i < 2000; i++ {
		step, dir := p.PlanMotion()
		for _, s := range []float64{step.DX, step.DY} {
			assert.GreaterOrEqual(t, s, 1.0)
			assert.LessOrEqual(t, s, 3.0)
		}
		for _, d := range []int{dir.SX, dir.SY} {
			switch d {
			case -1:
				neg++
			case 1:
				pos++
			default:
				t.Fatalf("direction component %d is not a sign", d)
			}
		}
	}
	assert.Positive(t, neg)
	assert.Positive(t, pos)
}

func TestPlanVisual(t *testing.T) {
	p, _ := newTestPlanner(5)
	v := p.PlanVisual()
	assert.NotEmpty(t, v.Color.Name)
	assert.NotEmpty(t, v.Secondary.Name)
	assert.NotEmpty(t, v.Glow.Name)
	assert.GreaterOrEqual(t, v.Opacity, 0.5)
	assert.LessOrEqual(t, v.Opacity, 0.9)
}
