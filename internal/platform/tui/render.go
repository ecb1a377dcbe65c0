package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"orbrun/internal/core"
)

// styleCache memoizes lipgloss styles per color. Level materials use a
// bounded palette so the cache stays small across frames. The SSH server
// renders one session per goroutine, so access is mutex-guarded.
var (
	styleMu    sync.Mutex
	styleCache = map[core.RGB]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

func styleFor(c core.RGB) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).FG

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !startColor.IsSet() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
