package motion

// Slack subtracted from the far bounds before a reflection triggers.
// The near bounds (left, top) have none.
const (
	RightSlack  = 10
	BottomSlack = 5
)

// Reflection reports which axes flipped direction during an Advance.
type Reflection struct {
	X, Y bool
}

// Any reports whether either axis reflected.
func (r Reflection) Any() bool {
	return r.X || r.Y
}

// Engine advances elements one tick at a time.
type Engine struct{}

// Advance moves e by one step inside c.
//
// The boundary test and the move both use the position read at the start of
// the tick, so an element past an edge flips and then moves one step from
// where it was. It can remain outside for a tick before coming back.
func (Engine) Advance(e *Element, c Container) Reflection {
	var r Reflection

	px := e.Position.X
	if px < 0 || px > c.Width()-e.Size.Width-RightSlack {
		e.Direction.SX *= -1
		r.X = true
	}
	newX := float64(e.Direction.SX)*e.Step.DX + px

	py := e.Position.Y
	if py < 0 || py > c.Height()-e.Size.Height-BottomSlack {
		e.Direction.SY *= -1
		r.Y = true
	}
	newY := float64(e.Direction.SY)*e.Step.DY + py

	e.Position = Vec{X: newX, Y: newY}
	return r
}
