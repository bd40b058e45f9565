package game

import (
	"time"

	"chosenoffset.com/bouncer/internal/animation"
	"chosenoffset.com/bouncer/internal/motion"
)

// PlayArea is the part of the screen below the control panel. It is the
// container the circles bounce in and follows every Layout call.
type PlayArea struct {
	width, height float64
	top           int // screen y of the area's top edge
}

// Width implements motion.Container.
func (a *PlayArea) Width() float64 { return a.width }

// Height implements motion.Container.
func (a *PlayArea) Height() float64 { return a.height }

func (a *PlayArea) resize(screenW, screenH, panelH int) {
	a.top = panelH
	a.width = float64(screenW)
	a.height = float64(max(screenH-panelH, 0))
}

var _ motion.Container = (*PlayArea)(nil)

// Options configure a Manager.
type Options struct {
	Width, Height int // initial screen size, replaced by the first Layout
	TPS           int
	PanelHeight   int

	MaxRadius    int
	MaxCount     int
	MaxCatchUp   int
	DefaultCount int
	DefaultSpeed animation.Speed

	Seed int64

	// OnBounce, when set, runs after a tick that reflected a circle.
	OnBounce func()
}

// tick returns the virtual time that passes per Update.
func (o Options) tick() time.Duration {
	if o.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(o.TPS)
}
