package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// palette maps core colors to terminal colors. Orange and gray come from
// the 256-color table.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:       "1",
	core.ColorGreen:     "2",
	core.ColorYellow:    "3",
	core.ColorBlue:      "4",
	core.ColorMagenta:   "5",
	core.ColorCyan:      "6",
	core.ColorWhite:     "7",
	core.ColorBrightRed: "9",
	core.ColorOrange:    "208",
	core.ColorGray:      "245",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, fg := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Runs of cells with the same color share one style so that the escape
// sequences are emitted once per run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
