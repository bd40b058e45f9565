package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

const iconInfo = "›"

// printKeyValue writes an aligned "label value" line.
func printKeyValue(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(label), styleValue.Render(value))
}

// printHint writes a dimmed hint line.
func printHint(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleDim.Render(iconInfo), styleDim.Render(fmt.Sprintf(format, args...)))
}
