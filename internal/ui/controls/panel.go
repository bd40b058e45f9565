// Package controls implements the control strip: a count field, a speed
// selector, a Start button and a Stop/Resume button.
package controls

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/charmbracelet/log"

	"chosenoffset.com/bouncer/internal/animation"
	"chosenoffset.com/bouncer/internal/render"
)

// Action is what the user asked for during one update.
type Action int

const (
	ActionNone Action = iota
	ActionSpawn
	ActionToggle
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionSpawn:
		return "spawn"
	case ActionToggle:
		return "toggle"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

const (
	maxDigits    = 6
	buttonHeight = 24
)

var (
	panelColor    = color.RGBA{30, 30, 40, 255}
	fieldColor    = color.RGBA{60, 60, 75, 255}
	buttonColor   = color.RGBA{70, 110, 170, 255}
	disabledColor = color.RGBA{70, 70, 70, 255}
	textColor     = color.RGBA{255, 255, 255, 255}
	dimTextColor  = color.RGBA{150, 150, 150, 255}
)

// Panel is the control strip drawn across the top of the screen.
type Panel struct {
	renderer render.Renderer
	logger   *log.Logger
	height   int
	maxCount int

	countText      string
	speedIndex     int
	running        bool
	lastMouseClick bool

	countField rect
	speedField rect
	startBtn   rect
	toggleBtn  rect
}

// NewPanel creates a panel of the given height. The count field starts at
// count and the selector at speed, or the first preset if speed is not one.
func NewPanel(r render.Renderer, logger *log.Logger, height, maxCount, count int, speed animation.Speed) *Panel {
	if logger == nil {
		logger = log.Default()
	}
	p := &Panel{
		renderer: r,
		logger:   logger,
		height:   height,
		maxCount: maxCount,
		running:  true,
	}
	if count > 0 {
		p.countText = strconv.Itoa(count)
	}
	if idx := animation.PresetIndex(speed); idx >= 0 {
		p.speedIndex = idx
	}
	p.layout()
	return p
}

func (p *Panel) layout() {
	y := (p.height - buttonHeight) / 2
	if y < 0 {
		y = 0
	}
	p.countField = rect{x: 10, y: y, w: 80, h: buttonHeight}
	p.speedField = rect{x: 100, y: y, w: 120, h: buttonHeight}
	p.startBtn = rect{x: 230, y: y, w: 70, h: buttonHeight}
	p.toggleBtn = rect{x: 310, y: y, w: 80, h: buttonHeight}
}

// Height returns the height of the strip in pixels.
func (p *Panel) Height() int {
	return p.height
}

// SetRunning updates the button states to match the animator.
func (p *Panel) SetRunning(running bool) {
	p.running = running
}

// StartEnabled reports whether the Start button accepts presses.
func (p *Panel) StartEnabled() bool {
	return p.running
}

// ToggleLabel returns the label of the Stop/Resume button.
func (p *Panel) ToggleLabel() string {
	if p.running {
		return "Stop"
	}
	return "Resume"
}

// Count returns the requested number of circles, clamped to the maximum.
// Zero means the field holds nothing usable.
func (p *Panel) Count() int {
	n, err := strconv.Atoi(p.countText)
	if err != nil || n <= 0 {
		return 0
	}
	if p.maxCount > 0 && n > p.maxCount {
		return p.maxCount
	}
	return n
}

// CountText returns the raw content of the count field.
func (p *Panel) CountText() string {
	return p.countText
}

// Speed returns the selected speed.
func (p *Panel) Speed() animation.Speed {
	return animation.Presets[p.speedIndex].Speed
}

// Update reads this frame's input and returns the resulting action.
func (p *Panel) Update(input render.InputManager) Action {
	if input.IsKeyJustPressed(render.KeyEscape) || input.IsKeyJustPressed(render.KeyQ) {
		return ActionQuit
	}

	p.editCount(input)

	if input.IsKeyJustPressed(render.KeyLeft) {
		p.selectSpeed(p.speedIndex - 1)
	}
	if input.IsKeyJustPressed(render.KeyRight) {
		p.selectSpeed(p.speedIndex + 1)
	}

	mouseX, mouseY := input.GetCursorPosition()
	mousePressed := input.IsMouseButtonPressed(render.MouseButtonLeft)
	mouseClicked := mousePressed && !p.lastMouseClick
	p.lastMouseClick = mousePressed

	if mouseClicked {
		switch {
		case pointInRect(mouseX, mouseY, p.speedField):
			if mouseX < p.speedField.x+p.speedField.w/2 {
				p.selectSpeed(p.speedIndex - 1)
			} else {
				p.selectSpeed(p.speedIndex + 1)
			}
		case pointInRect(mouseX, mouseY, p.startBtn):
			return p.submit()
		case pointInRect(mouseX, mouseY, p.toggleBtn):
			return ActionToggle
		}
	}

	if input.IsKeyJustPressed(render.KeyEnter) {
		return p.submit()
	}
	if input.IsKeyJustPressed(render.KeySpace) {
		return ActionToggle
	}
	return ActionNone
}

func (p *Panel) editCount(input render.InputManager) {
	for _, r := range input.AppendInputChars(nil) {
		if r >= '0' && r <= '9' && len(p.countText) < maxDigits {
			p.countText += string(r)
		}
	}
	if input.IsKeyJustPressed(render.KeyBackspace) && len(p.countText) > 0 {
		p.countText = p.countText[:len(p.countText)-1]
	}
	if input.IsKeyJustPressed(render.KeyUp) {
		p.countText = strconv.Itoa(p.Count() + 1)
	}
	if input.IsKeyJustPressed(render.KeyDown) {
		if n := p.Count(); n > 1 {
			p.countText = strconv.Itoa(n - 1)
		}
	}
}

func (p *Panel) selectSpeed(idx int) {
	if idx < 0 || idx >= len(animation.Presets) {
		return
	}
	p.speedIndex = idx
}

// submit turns a Start press into a spawn request when the button is enabled
// and the field holds a usable count.
func (p *Panel) submit() Action {
	if !p.running {
		p.logger.Debug("start ignored while paused")
		return ActionNone
	}
	if p.Count() == 0 {
		p.logger.Warn("enter a positive number of circles", "count", p.countText)
		return ActionNone
	}
	return ActionSpawn
}

// Draw renders the strip along the top of screen.
func (p *Panel) Draw(screen render.Image) {
	w, _ := screen.Size()
	p.renderer.FillRect(screen, 0, 0, float32(w), float32(p.height), panelColor)

	p.drawBox(screen, p.countField, fieldColor, p.countText+"_", textColor)
	p.drawBox(screen, p.speedField, fieldColor, fmt.Sprintf("< %s >", animation.Presets[p.speedIndex].Name), textColor)

	if p.running {
		p.drawBox(screen, p.startBtn, buttonColor, "Start", textColor)
	} else {
		p.drawBox(screen, p.startBtn, disabledColor, "Start", dimTextColor)
	}
	p.drawBox(screen, p.toggleBtn, buttonColor, p.ToggleLabel(), textColor)
}

func (p *Panel) drawBox(screen render.Image, r rect, fill color.Color, label string, clr color.Color) {
	p.renderer.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill)
	tw, th := p.renderer.MeasureText(label, 1.0)
	p.renderer.DrawText(screen, label, r.x+(r.w-tw)/2, r.y+(r.h-th)/2, clr, 1.0)
}

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
