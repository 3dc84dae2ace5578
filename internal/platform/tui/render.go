package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// cellColors is the style key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles.
// Transparent colors leave the terminal default in place.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(key cellColors) lipgloss.Style {
	if style, ok := c[key]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if !key.fg.IsTransparent() {
		style = style.Foreground(lipgloss.Color(key.fg.Hex()))
	}
	if !key.bg.IsTransparent() {
		style = style.Background(lipgloss.Color(key.bg.Hex()))
	}
	c[key] = style
	return style
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
