package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/bouncer/internal/render"
)

// Input implements render.InputManager from tcell events. Events are fed in
// between updates with Handle and dropped with EndFrame once the update ran.
type Input struct {
	cellW, cellH int

	pressed map[render.Key]bool
	chars   []rune
	cursorX int
	cursorY int
	buttons tcell.ButtonMask
	clicked tcell.ButtonMask
}

// NewInput creates an input manager for cells of the given pixel size.
func NewInput(cellW, cellH int) *Input {
	return &Input{
		cellW:   cellW,
		cellH:   cellH,
		pressed: make(map[render.Key]bool),
	}
}

// Handle records one tcell event.
func (in *Input) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		in.cursorX = col*in.cellW + in.cellW/2
		in.cursorY = row*in.cellH + in.cellH/2
		buttons := ev.Buttons()
		in.clicked |= buttons &^ in.buttons
		in.buttons = buttons
	}
}

func (in *Input) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		in.pressed[render.KeyEnter] = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		in.pressed[render.KeyBackspace] = true
	case tcell.KeyUp:
		in.pressed[render.KeyUp] = true
	case tcell.KeyDown:
		in.pressed[render.KeyDown] = true
	case tcell.KeyLeft:
		in.pressed[render.KeyLeft] = true
	case tcell.KeyRight:
		in.pressed[render.KeyRight] = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.pressed[render.KeyEscape] = true
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case ' ':
			in.pressed[render.KeySpace] = true
		case 'q', 'Q':
			in.pressed[render.KeyQ] = true
		}
		if unicode.IsPrint(r) {
			in.chars = append(in.chars, r)
		}
	}
}

// EndFrame forgets the keys, characters and clicks of the finished update.
func (in *Input) EndFrame() {
	clear(in.pressed)
	in.chars = in.chars[:0]
	in.clicked = 0
}

// IsKeyPressed reports whether key was pressed this frame. Terminals do not
// report key releases, so held keys look like repeated presses.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.pressed[key]
}

// IsKeyJustPressed reports whether key was pressed this frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.pressed[key]
}

// GetCursorPosition returns the pixel center of the last reported mouse cell.
func (in *Input) GetCursorPosition() (x, y int) {
	return in.cursorX, in.cursorY
}

// IsMouseButtonPressed reports whether button is held.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return in.buttons&buttonMask(button) != 0
}

// IsMouseButtonJustPressed reports whether button went down this frame.
func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.clicked&buttonMask(button) != 0
}

// AppendInputChars appends the printable runes typed this frame.
func (in *Input) AppendInputChars(runes []rune) []rune {
	return append(runes, in.chars...)
}

func buttonMask(button render.MouseButton) tcell.ButtonMask {
	switch button {
	case render.MouseButtonRight:
		return tcell.Button2
	case render.MouseButtonMiddle:
		return tcell.Button3
	default:
		return tcell.Button1
	}
}
