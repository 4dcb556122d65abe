package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/superdudu/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),  // Brown
	core.ColorBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("173")), // Peru
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // Green
	core.ColorMoving:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // Gray
	core.ColorBubu:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	core.ColorDudu:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Bold(true),
	core.ColorGoomba:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorKoopa:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorCoin:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPowerUp: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("24")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
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
