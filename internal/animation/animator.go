// Package animation owns the set of moving circles and their timers.
//
// Every element gets its own recurring task on a Clock. Pausing cancels each
// task and keeps the elements; resuming registers fresh tasks for the kept
// elements, since a cancelled handle cannot be restarted.
package animation

import (
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/bouncer/internal/motion"
	"chosenoffset.com/bouncer/internal/spawn"
	"chosenoffset.com/bouncer/internal/timer"
)

// DefaultMaxRadius is the largest radius a spawned circle can draw.
const DefaultMaxRadius = 200

// Clock registers and cancels recurring tasks. *timer.Loop satisfies it.
type Clock interface {
	Every(interval time.Duration, fn func()) timer.Handle
	Cancel(h timer.Handle) bool
}

// Sink receives rendering commands.
type Sink interface {
	// ElementCreated is called once per spawned element.
	ElementCreated(e motion.Element)
	// ElementMoved is called after every tick with the element's new top-left position.
	ElementMoved(id int, pos motion.Vec)
}

// Animator schedules one recurring tick per element.
// It is not safe for concurrent use; call it from the goroutine driving the Clock.
type Animator struct {
	clock     Clock
	engine    motion.Engine
	planner   *spawn.Planner
	sink      Sink
	logger    *log.Logger
	maxRadius int
	onBounce  func(motion.Element, motion.Reflection)

	active   map[timer.Handle]*motion.Element
	order    []timer.Handle    // registration order of active
	retained []*motion.Element // elements waiting for Resume
	running  bool
	nextID   int
}

// Option configures an Animator.
type Option func(*Animator)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMaxRadius sets the radius ceiling for spawned elements.
func WithMaxRadius(r int) Option {
	return func(a *Animator) {
		if r > 0 {
			a.maxRadius = r
		}
	}
}

// WithBounceHook registers fn to run after any tick that reflected an element.
func WithBounceHook(fn func(motion.Element, motion.Reflection)) Option {
	return func(a *Animator) { a.onBounce = fn }
}

// New creates a running Animator with no elements.
func New(clock Clock, planner *spawn.Planner, sink Sink, opts ...Option) *Animator {
	a := &Animator{
		clock:     clock,
		planner:   planner,
		sink:      sink,
		logger:    log.Default(),
		maxRadius: DefaultMaxRadius,
		active:    make(map[timer.Handle]*motion.Element),
		running:   true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Spawn creates count elements inside c moving at speed. While paused the
// new elements are kept and start moving on the next Resume.
func (a *Animator) Spawn(count int, speed Speed, c motion.Container) {
	for i := 0; i < count; i++ {
		pl := a.planner.Plan(c, a.maxRadius)
		visual := a.planner.PlanVisual()
		step, dir := a.planner.PlanMotion()

		a.nextID++
		el := &motion.Element{
			ID:        a.nextID,
			Position:  pl.Position,
			Size:      pl.Size,
			Step:      step,
			Direction: dir,
			Interval:  speed.Interval(),
			Visual:    visual,
		}
		a.sink.ElementCreated(*el)

		if a.running {
			a.schedule(el, c)
		} else {
			a.retained = append(a.retained, el)
		}
	}
	a.logger.Debug("spawned elements", "count", count, "speed", speed, "running", a.running)
}

// Pause cancels every element's task and keeps the elements as they are.
// Pausing twice is a no-op.
func (a *Animator) Pause() {
	if !a.running {
		return
	}
	kept := make([]*motion.Element, 0, len(a.order))
	for _, h := range a.order {
		a.clock.Cancel(h)
		kept = append(kept, a.active[h])
	}
	a.retained = kept
	a.active = make(map[timer.Handle]*motion.Element)
	a.order = nil
	a.running = false
	a.logger.Debug("animation paused", "elements", len(a.retained))
}

// Resume registers a new task for every kept element, in spawn order, using
// each element's own interval. Resuming while running is a no-op.
func (a *Animator) Resume(c motion.Container) {
	if a.running {
		return
	}
	for _, el := range a.retained {
		a.schedule(el, c)
	}
	a.logger.Debug("animation resumed", "elements", len(a.retained))
	a.retained = nil
	a.running = true
}

// Toggle pauses a running animator or resumes a paused one and returns the
// new running state.
func (a *Animator) Toggle(c motion.Container) bool {
	if a.running {
		a.Pause()
	} else {
		a.Resume(c)
	}
	return a.running
}

// Running reports whether elements are currently scheduled.
func (a *Animator) Running() bool {
	return a.running
}

// Active returns the number of registered tasks.
func (a *Animator) Active() int {
	return len(a.active)
}

// Elements returns a copy of every element, in spawn order.
func (a *Animator) Elements() []motion.Element {
	out := make([]motion.Element, 0, len(a.order)+len(a.retained))
	for _, h := range a.order {
		out = append(out, *a.active[h])
	}
	for _, el := range a.retained {
		out = append(out, *el)
	}
	return out
}

func (a *Animator) schedule(el *motion.Element, c motion.Container) {
	h := a.clock.Every(el.Interval, func() { a.tick(el, c) })
	a.active[h] = el
	a.order = append(a.order, h)
}

func (a *Animator) tick(el *motion.Element, c motion.Container) {
	r := a.engine.Advance(el, c)
	a.sink.ElementMoved(el.ID, el.Position)
	if r.Any() && a.onBounce != nil {
		a.onBounce(*el, r)
	}
}
