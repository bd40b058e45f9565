// Package game hosts the animation: it wires the control panel to the
// animator, drives the timer loop from the engine's updates and draws the
// circles.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/bouncer/internal/animation"
	"chosenoffset.com/bouncer/internal/motion"
	"chosenoffset.com/bouncer/internal/random"
	"chosenoffset.com/bouncer/internal/render"
	"chosenoffset.com/bouncer/internal/scene"
	"chosenoffset.com/bouncer/internal/spawn"
	"chosenoffset.com/bouncer/internal/timer"
	"chosenoffset.com/bouncer/internal/ui/controls"
)

// Manager implements render.Game for the bouncing circles.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Loop     *timer.Loop
	Animator *animation.Animator
	Scene    *scene.Scene
	Panel    *controls.Panel

	area    *PlayArea
	tick    time.Duration
	logger  *log.Logger
	pending []spawnRequest
}

type spawnRequest struct {
	count int
	speed animation.Speed
}

// NewManager creates a manager with an empty scene and a running animator.
func NewManager(r render.Renderer, input render.InputManager, opts Options, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}

	m := &Manager{
		ScreenWidth:  opts.Width,
		ScreenHeight: opts.Height,
		Renderer:     r,
		InputMgr:     input,
		Loop:         timer.NewLoop(timer.WithMaxCatchUp(opts.MaxCatchUp)),
		Scene:        scene.New(),
		Panel:        controls.NewPanel(r, logger, opts.PanelHeight, opts.MaxCount, opts.DefaultCount, opts.DefaultSpeed),
		area:         &PlayArea{},
		tick:         opts.tick(),
		logger:       logger,
	}
	m.area.resize(opts.Width, opts.Height, opts.PanelHeight)

	animOpts := []animation.Option{
		animation.WithLogger(logger),
		animation.WithMaxRadius(opts.MaxRadius),
	}
	if opts.OnBounce != nil {
		bounce := opts.OnBounce
		animOpts = append(animOpts, animation.WithBounceHook(func(motion.Element, motion.Reflection) { bounce() }))
	}
	planner := spawn.NewPlanner(random.NewSeeded(opts.Seed), logger)
	m.Animator = animation.New(m.Loop, planner, m.Scene, animOpts...)
	return m
}

// Area returns the container the circles bounce in.
func (m *Manager) Area() motion.Container {
	return m.area
}

// Start spawns count circles moving at speed.
func (m *Manager) Start(count int, speed animation.Speed) {
	if count <= 0 {
		return
	}
	m.Animator.Spawn(count, speed, m.area)
	m.logger.Info("spawned", "count", count, "speed", speed, "total", m.Scene.Len())
}

// Queue spawns count circles on the next Update, once the engine has
// reported the real screen size through Layout.
func (m *Manager) Queue(count int, speed animation.Speed) {
	m.pending = append(m.pending, spawnRequest{count: count, speed: speed})
}

// Toggle pauses or resumes the animation.
func (m *Manager) Toggle() {
	running := m.Animator.Toggle(m.area)
	m.Panel.SetRunning(running)
	if running {
		m.logger.Info("animation resumed", "circles", m.Animator.Active())
	} else {
		m.logger.Info("animation paused", "circles", m.Scene.Len())
	}
}

// Update handles the panel and advances every circle's timer by one tick.
func (m *Manager) Update() error {
	for _, req := range m.pending {
		m.Start(req.count, req.speed)
	}
	m.pending = nil

	switch m.Panel.Update(m.InputMgr) {
	case controls.ActionQuit:
		m.logger.Debug("quit requested")
		return render.ErrQuit
	case controls.ActionSpawn:
		m.Start(m.Panel.Count(), m.Panel.Speed())
	case controls.ActionToggle:
		m.Toggle()
	}

	m.Loop.Advance(m.tick)
	return nil
}

// Layout handles window resize. The play area follows the new size on the
// circles' next tick.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.area.resize(outsideWidth, outsideHeight, m.Panel.Height())
		m.logger.Debug("layout changed", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}
