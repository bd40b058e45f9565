// Package terminal implements the render interfaces on a tcell screen.
//
// Drawing happens in pixel coordinates like any other backend. Each terminal
// cell stands for a CellWidth x CellHeight block of pixels and is painted when
// its center falls inside a shape.
package terminal

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/bouncer/internal/render"
)

const (
	glowRune = '░'
	fillRune = ' '
)

// Canvas is a render.Image backed by a tcell screen.
type Canvas struct {
	screen       tcell.Screen
	cellW, cellH int
}

// NewCanvas wraps screen with the given cell size in pixels.
func NewCanvas(screen tcell.Screen, cellW, cellH int) *Canvas {
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Bounds returns the pixel bounds covered by the screen.
func (c *Canvas) Bounds() image.Rectangle {
	w, h := c.Size()
	return image.Rect(0, 0, w, h)
}

// Size returns the pixel size covered by the screen.
func (c *Canvas) Size() (width, height int) {
	cols, rows := c.screen.Size()
	return cols * c.cellW, rows * c.cellH
}

// Fill paints every cell with clr.
func (c *Canvas) Fill(clr color.Color) {
	style := tcell.StyleDefault.Background(toTcell(clr))
	cols, rows := c.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.SetContent(x, y, fillRune, nil, style)
		}
	}
}

// Clear resets the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Dispose does nothing; the screen belongs to the engine.
func (c *Canvas) Dispose() {}

// cellCenter returns the pixel center of a cell.
func (c *Canvas) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(c.cellW), (float64(row) + 0.5) * float64(c.cellH)
}

// cellRange returns the cells whose area overlaps the pixel span [lo, hi], clipped to n.
func cellRange(lo, hi float64, size, n int) (int, int) {
	first := int(math.Floor(lo / float64(size)))
	last := int(math.Floor(hi / float64(size)))
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	return first, last
}

// Renderer implements render.Renderer on a Canvas.
type Renderer struct {
	cellW, cellH int
}

// NewRenderer creates a terminal renderer for cells of the given pixel size.
func NewRenderer(cellW, cellH int) *Renderer {
	return &Renderer{cellW: cellW, cellH: cellH}
}

// FillCircle paints the cells whose centers lie inside the circle. A circle
// smaller than a cell still paints the cell under its center.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	c := dst.(*Canvas)
	if transparent(clr) {
		return
	}
	style := tcell.StyleDefault.Background(toTcell(clr))
	cols, rows := c.screen.Size()
	cx, cy, rr := float64(x), float64(y), float64(radius)

	painted := false
	x0, x1 := cellRange(cx-rr, cx+rr, c.cellW, cols)
	y0, y1 := cellRange(cy-rr, cy+rr, c.cellH, rows)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			px, py := c.cellCenter(col, row)
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= rr*rr {
				c.screen.SetContent(col, row, fillRune, nil, style)
				painted = true
			}
		}
	}
	if !painted {
		col := int(math.Floor(cx / float64(c.cellW)))
		row := int(math.Floor(cy / float64(c.cellH)))
		if col >= 0 && col < cols && row >= 0 && row < rows {
			c.screen.SetContent(col, row, fillRune, nil, style)
		}
	}
}

// StrokeCircle marks the cells near the circle's outline with a shade rune.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	c := dst.(*Canvas)
	if transparent(clr) {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(clr))
	cols, rows := c.screen.Size()
	cx, cy, rr := float64(x), float64(y), float64(radius)
	half := math.Max(float64(strokeWidth), float64(max(c.cellW, c.cellH))) / 2

	x0, x1 := cellRange(cx-rr-half, cx+rr+half, c.cellW, cols)
	y0, y1 := cellRange(cy-rr-half, cy+rr+half, c.cellH, rows)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			px, py := c.cellCenter(col, row)
			d := math.Hypot(px-cx, py-cy)
			if math.Abs(d-rr) <= half {
				c.screen.SetContent(col, row, glowRune, nil, style)
			}
		}
	}
}

// FillRect paints the cells whose centers lie inside the rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	c := dst.(*Canvas)
	if transparent(clr) {
		return
	}
	style := tcell.StyleDefault.Background(toTcell(clr))
	cols, rows := c.screen.Size()
	fx, fy := float64(x), float64(y)
	fw, fh := float64(width), float64(height)

	x0, x1 := cellRange(fx, fx+fw, c.cellW, cols)
	y0, y1 := cellRange(fy, fy+fh, c.cellH, rows)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			px, py := c.cellCenter(col, row)
			if px >= fx && px <= fx+fw && py >= fy && py <= fy+fh {
				c.screen.SetContent(col, row, fillRune, nil, style)
			}
		}
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	c := dst.(*Canvas)
	cols, rows := c.screen.Size()
	row := y / c.cellH
	if row < 0 || row >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(clr))
	col := x / c.cellW
	for _, ch := range text {
		if col >= cols {
			break
		}
		if col >= 0 {
			c.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

// MeasureText returns the pixel size of text; one rune per cell.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return len([]rune(text)) * r.cellW, r.cellH
}

func transparent(clr color.Color) bool {
	_, _, _, a := clr.RGBA()
	return a == 0
}

// toTcell converts a (premultiplied) color to a 24-bit tcell color.
func toTcell(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
