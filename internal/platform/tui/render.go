package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. Index is the color.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "240",
}

// cellStyles holds one lipgloss style per palette entry.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		s := lipgloss.NewStyle()
		if code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		styles[i] = s
	}
	return styles
}()

// styleFor returns the style of a color, or the default style for colors
// outside the palette.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of equal color so every run costs one
// escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}
