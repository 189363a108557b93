package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flippy-bird/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// styleFor returns the lipgloss style for a color pair.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code := cs.fg.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code := cs.bg.ANSI(); code != "" {
		style = style.Background(lipgloss.Color(code))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
