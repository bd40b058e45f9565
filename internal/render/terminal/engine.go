package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/bouncer/internal/render"
)

const defaultTPS = 30

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	screen   tcell.Screen
	canvas   *Canvas
	renderer *Renderer
	input    *Input
	logger   *log.Logger
	tps      int
}

// NewEngine creates an engine drawing to screen. The screen is initialized by RunGame.
func NewEngine(screen tcell.Screen, cellW, cellH int, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		screen:   screen,
		canvas:   NewCanvas(screen, cellW, cellH),
		renderer: NewRenderer(cellW, cellH),
		input:    NewInput(cellW, cellH),
		logger:   logger,
		tps:      defaultTPS,
	}
}

// Renderer returns the renderer that draws on this engine's screen.
func (e *Engine) Renderer() render.Renderer {
	return e.renderer
}

// Input returns the input manager fed by this engine's events.
func (e *Engine) Input() render.InputManager {
	return e.input
}

// SetWindowSize is a no-op; the terminal decides the size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op.
func (e *Engine) SetWindowTitle(title string) {}

// SetWindowResizable is a no-op; terminals can always be resized.
func (e *Engine) SetWindowResizable(resizable bool) {}

// SetTPS sets how many updates run per second.
func (e *Engine) SetTPS(tps int) {
	if tps > 0 {
		e.tps = tps
	}
}

// RunGame drives game until it returns an error or render.ErrQuit.
func (e *Engine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	e.screen.EnableMouse()
	defer e.screen.Fini()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	e.logger.Debug("terminal loop started", "tps", e.tps)
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
			}
			e.input.Handle(ev)
		case <-ticker.C:
			done, err := e.frame(game)
			if done {
				return err
			}
		}
	}
}

// frame runs one update and draw. It reports whether the loop should stop.
func (e *Engine) frame(game render.Game) (bool, error) {
	w, h := e.canvas.Size()
	game.Layout(w, h)

	err := game.Update()
	e.input.EndFrame()
	if errors.Is(err, render.ErrQuit) {
		return true, nil
	}
	if err != nil {
		return true, err
	}

	e.canvas.Clear()
	game.Draw(e.canvas)
	e.screen.Show()
	return false, nil
}
