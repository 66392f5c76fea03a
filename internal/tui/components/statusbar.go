package components

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. source names the loaded
// dataset, cached marks whether the data came from the in-memory cache.
func RenderStatusBar(width int, source string, cached bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]eload  [q]uit"
	right := ""
	if source != "" {
		if cached {
			right = fmt.Sprintf("%s (cached) ", source)
		} else {
			right = fmt.Sprintf("%s ", source)
		}
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
