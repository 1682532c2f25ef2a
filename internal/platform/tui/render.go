package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-down/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of one color share a single style run.
func RenderScreen(s *core.Screen) string {
	return renderScreenWith(s, func(c core.Color) lipgloss.Style {
		if style, ok := colorStyles[c]; ok {
			return style
		}
		return colorStyles[core.ColorDefault]
	})
}

func renderScreenWith(s *core.Screen, styleOf func(core.Color) lipgloss.Style) string {
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
			sb.WriteString(styleOf(color).Render(run.String()))
		}
	}
	return sb.String()
}

// sessionStyles renders through a per-session lipgloss renderer so SSH
// clients get colors matching their own terminal.
func sessionStyles(r *lipgloss.Renderer) func(core.Color) lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(colorStyles))
	for c, style := range colorStyles {
		styles[c] = r.NewStyle().Inherit(style)
	}
	return func(c core.Color) lipgloss.Style {
		if style, ok := styles[c]; ok {
			return style
		}
		return styles[core.ColorDefault]
	}
}
