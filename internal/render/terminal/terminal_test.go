package terminal

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/bouncer/internal/render"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func background(t *testing.T, screen tcell.Screen, col, row int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

var red = color.RGBA{R: 255, A: 255}

func TestCanvasSize(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := NewCanvas(screen, 8, 16)

	w, h := c.Size()
	assert.Equal(t, 160, w)
	assert.Equal(t, 160, h)
	assert.Equal(t, 160, c.Bounds().Dx())
}

func TestFillCirclePaintsCellsInside(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := NewCanvas(screen, 8, 16)
	r := NewRenderer(8, 16)

	// Center of cell (5, 2) with a radius covering its neighbours.
	r.FillCircle(c, 44, 40, 10, red)

	want := tcell.NewRGBColor(255, 0, 0)
	assert.Equal(t, want, background(t, screen, 5, 2))
	assert.Equal(t, want, background(t, screen, 4, 2))
	assert.Equal(t, want, background(t, screen, 6, 2))
	assert.NotEqual(t, want, background(t, screen, 5, 4))
	assert.NotEqual(t, want, background(t, screen, 0, 0))
}

func TestFillCircleSmallerThanCell(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := NewCanvas(screen, 8, 16)
	r := NewRenderer(8, 16)

	r.FillCircle(c, 17, 33, 1, red)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), background(t, screen, 2, 2))
}

func TestFillCircleSkipsTransparent(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := NewCanvas(screen, 8, 16)
	r := NewRenderer(8, 16)

	r.FillCircle(c, 44, 40, 10, color.RGBA{})
	assert.NotEqual(t, tcell.NewRGBColor(0, 0, 0), background(t, screen, 5, 2))
}

func TestStrokeCircleDrawsRing(t *testing.T) {
	screen := newScreen(t, 40, 20)
	c := NewCanvas(screen, 8, 16)
	r := NewRenderer(8, 16)

	r.StrokeCircle(c, 164, 168, 64, 2, red)

	ch, _, _, _ := screen.GetContent(20+8, 10)
	assert.Equal(t, glowRune, ch, "cell on the ring")
	ch, _, _, _ = screen.GetContent(20, 10)
	assert.NotEqual(t, glowRune, ch, "center stays empty")
}

func TestFillRectAndText(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := NewCanvas(screen, 8, 16)
	r := NewRenderer(8, 16)

	r.FillRect(c, 0, 0, 160, 32, red)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), background(t, screen, 19, 1))
	assert.NotEqual(t, tcell.NewRGBColor(255, 0, 0), background(t, screen, 0, 2))

	r.DrawText(c, "Start", 16, 16, color.White, 1)
	for i, want := range "Start" {
		ch, _, _, _ := screen.GetContent(2+i, 1)
		assert.Equal(t, want, ch)
	}

	w, h := r.MeasureText("Start", 1)
	assert.Equal(t, 40, w)
	assert.Equal(t, 16, h)
}

func TestInputKeys(t *testing.T) {
	in := NewInput(8, 16)

	in.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	in.Handle(tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone))
	in.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	in.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	assert.True(t, in.IsKeyJustPressed(render.KeyEnter))
	assert.True(t, in.IsKeyJustPressed(render.KeySpace))
	assert.True(t, in.IsKeyJustPressed(render.KeyEscape))
	assert.False(t, in.IsKeyJustPressed(render.KeyQ))
	assert.Equal(t, []rune{'4', ' '}, in.AppendInputChars(nil))

	in.EndFrame()
	assert.False(t, in.IsKeyJustPressed(render.KeyEnter))
	assert.Empty(t, in.AppendInputChars(nil))
}

func TestInputMouse(t *testing.T) {
	in := NewInput(8, 16)

	in.Handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	x, y := in.GetCursorPosition()
	assert.Equal(t, 28, x)
	assert.Equal(t, 40, y)
	assert.True(t, in.IsMouseButtonJustPressed(render.MouseButtonLeft))
	assert.True(t, in.IsMouseButtonPressed(render.MouseButtonLeft))

	in.EndFrame()
	in.Handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	assert.False(t, in.IsMouseButtonJustPressed(render.MouseButtonLeft), "held button is not a new click")

	in.Handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, in.IsMouseButtonPressed(render.MouseButtonLeft))
}

type stubGame struct {
	updates int
	draws   int
	layoutW int
	err     error
}

func (g *stubGame) Update() error {
	g.updates++
	return g.err
}

func (g *stubGame) Draw(screen render.Image) {
	g.draws++
	screen.Fill(color.Black)
}

func (g *stubGame) Layout(w, h int) (int, int) {
	g.layoutW = w
	return w, h
}

func TestEngineFrame(t *testing.T) {
	screen := newScreen(t, 20, 10)
	e := NewEngine(screen, 8, 16, log.New(&bytes.Buffer{}))
	game := &stubGame{}

	done, err := e.frame(game)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, game.updates)
	assert.Equal(t, 1, game.draws)
	assert.Equal(t, 160, game.layoutW)

	game.err = render.ErrQuit
	done, err = e.frame(game)
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, 1, game.draws, "no draw after quit")

	boom := errors.New("boom")
	game.err = boom
	done, err = e.frame(game)
	assert.True(t, done)
	assert.ErrorIs(t, err, boom)
}

func TestEngineRunGameQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	e := NewEngine(screen, 8, 16, log.New(&bytes.Buffer{}))
	e.SetTPS(200)

	game := &stubGame{err: render.ErrQuit}
	require.NoError(t, e.RunGame(game))
	assert.Equal(t, 1, game.updates)
}
