package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dustward/internal/core"
)

// ansiCodes maps core.Color (an ordinal) to its ANSI 256-color code.
// Index order must match the core color constant order.
var ansiCodes = []string{
	"",    // ColorDefault
	"1",   // ColorRed
	"2",   // ColorGreen
	"3",   // ColorYellow
	"4",   // ColorBlue
	"5",   // ColorMagenta
	"6",   // ColorCyan
	"7",   // ColorWhite
	"9",   // ColorBrightRed
	"10",  // ColorBrightGreen
	"11",  // ColorBrightYellow
	"12",  // ColorBrightBlue
	"13",  // ColorBrightMagenta
	"14",  // ColorBrightCyan
	"15",  // ColorBrightWhite
	"208", // ColorOrange
	"245", // ColorGray
	"180", // ColorSand
	"240", // ColorDimGray
}

var colorStyles = buildStyles()

func buildStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		if code == "" {
			styles[i] = lipgloss.NewStyle()
			continue
		}
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(colorStyles) {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are emitted as one styled run to keep
// the ANSI escape overhead down, which matters at desert-sized frames.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		run.Reset()
		runColor := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(runColor).Render(run.String()))
	}
	return sb.String()
}
