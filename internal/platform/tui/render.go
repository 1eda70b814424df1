package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swiftbox/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// colorStyles maps core colours to ANSI 256 styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorBlue:         fg("4"),
	core.ColorMagenta:      fg("5").Bold(true),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightRed:    fg("9").Bold(true),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightWhite:  fg("15").Bold(true),
	core.ColorOrange:       fg("208").Bold(true),
	core.ColorGray:         fg("245"),
	core.ColorBeige:        fg("223"),
	core.ColorGold:         fg("220").Bold(true),
}

// RenderScreen converts a Screen into styled text, one escape sequence per
// run of equally coloured cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
