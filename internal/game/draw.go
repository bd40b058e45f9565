package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/bouncer/internal/render"
	"chosenoffset.com/bouncer/internal/scene"
)

var (
	backgroundColor = color.RGBA{245, 245, 240, 255}
	statusColor     = color.RGBA{90, 90, 90, 255}
)

// Draw renders the circles and the control panel.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	for _, s := range m.Scene.Sprites() {
		m.drawSprite(screen, s)
	}

	m.Panel.Draw(screen)
	m.drawStatus(screen)
}

// drawSprite approximates the radial gradient with two filled circles and
// draws the glow as a ring around them.
func (m *Manager) drawSprite(screen render.Image, s scene.Sprite) {
	cx, cy := s.Center()
	x, y := float32(cx), float32(cy)+float32(m.area.top)
	r := float32(s.Radius())
	op := s.Visual.Opacity

	m.Renderer.StrokeCircle(screen, x, y, r+2, 3, s.Visual.Glow.WithAlpha(op/2))
	m.Renderer.FillCircle(screen, x, y, r, s.Visual.Secondary.WithAlpha(op))
	m.Renderer.FillCircle(screen, x, y, r*0.6, s.Visual.Color.WithAlpha(op))
}

func (m *Manager) drawStatus(screen render.Image) {
	state := "running"
	if !m.Animator.Running() {
		state = "paused"
	}
	text := fmt.Sprintf("%d circles, %s", m.Scene.Len(), state)
	w, _ := m.Renderer.MeasureText(text, 1.0)
	m.Renderer.DrawText(screen, text, m.ScreenWidth-w-10, (m.Panel.Height()-13)/2, statusColor, 1.0)
}
