package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteNames(t *testing.T) {
	want := []string{"red", "green", "blue", "black", "purple", "darkblue", "gold", "indigo", "chocolate"}
	var got []string
	for _, c := range Colors {
		got = append(got, c.Name)
	}
	assert.Equal(t, want, got)

	gold, ok := Lookup("gold")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{255, 215, 0, 255}, gold.RGBA)

	_, ok = Lookup("magenta")
	assert.False(t, ok)
}

func TestWithAlpha(t *testing.T) {
	red, _ := Lookup("red")

	tests := []struct {
		name    string
		opacity float64
		want    color.RGBA
	}{
		{name: "opaque", opacity: 1, want: color.RGBA{255, 0, 0, 255}},
		{name: "half", opacity: 0.5, want: color.RGBA{127, 0, 0, 127}},
		{name: "clamped low", opacity: -1, want: color.RGBA{}},
		{name: "clamped high", opacity: 3, want: color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, red.WithAlpha(tt.opacity))
		})
	}
}
