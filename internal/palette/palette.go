// Package palette holds the fixed set of colors a circle can be painted with.
package palette

import "image/color"

// Color is a named palette entry.
type Color struct {
	Name string
	RGBA color.RGBA
}

// WithAlpha returns the color with its alpha channel scaled by opacity (0-1).
func (c Color) WithAlpha(opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	// Premultiplied, as ebiten and image/color expect.
	return color.RGBA{
		R: uint8(float64(c.RGBA.R) * opacity),
		G: uint8(float64(c.RGBA.G) * opacity),
		B: uint8(float64(c.RGBA.B) * opacity),
		A: uint8(float64(c.RGBA.A) * opacity),
	}
}

// Colors is the enumerated palette, in the order random draws index it.
var Colors = []Color{
	{Name: "red", RGBA: color.RGBA{255, 0, 0, 255}},
	{Name: "green", RGBA: color.RGBA{0, 128, 0, 255}},
	{Name: "blue", RGBA: color.RGBA{0, 0, 255, 255}},
	{Name: "black", RGBA: color.RGBA{0, 0, 0, 255}},
	{Name: "purple", RGBA: color.RGBA{128, 0, 128, 255}},
	{Name: "darkblue", RGBA: color.RGBA{0, 0, 139, 255}},
	{Name: "gold", RGBA: color.RGBA{255, 215, 0, 255}},
	{Name: "indigo", RGBA: color.RGBA{75, 0, 130, 255}},
	{Name: "chocolate", RGBA: color.RGBA{210, 105, 30, 255}},
}

// Lookup finds a palette color by name.
func Lookup(name string) (Color, bool) {
	for _, c := range Colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}
