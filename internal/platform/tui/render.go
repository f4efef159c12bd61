package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cave-bat/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorStone:      lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	core.ColorStoneDark:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorStoneLight: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorBat:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBatRim:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorWater:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorBlood:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorTextDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
