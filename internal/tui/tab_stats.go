package tui

import (
	"fmt"
	"strings"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/tui/components"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Column statistics over the cleaned dataset.
	var statBody strings.Builder
	header := fmt.Sprintf("%-12s %8s %12s %12s %12s %12s %12s",
		"Column", "Count", "Mean", "Std", "Min", "Median", "Max")
	statBody.WriteString(headStyle.Render(header))
	statBody.WriteString("\n")
	for _, cs := range a.colStats {
		statBody.WriteString(nameStyle.Render(fmt.Sprintf("%-12s", cs.Column)))
		statBody.WriteString(numStyle.Render(fmt.Sprintf(" %8s %12.2f %12.2f %12.2f %12.2f %12.2f",
			cli.FormatNumber(int64(cs.Count)), cs.Mean, cs.Std, cs.Min, cs.Median, cs.Max)))
		statBody.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Column Statistics", statBody.String(), cw))
	b.WriteString("\n")

	// Classification split.
	var classBody strings.Builder
	limit := 10
	if len(a.classes) < limit {
		limit = len(a.classes)
	}
	innerW := components.CardInnerWidth(cw)
	labelW := 14
	barW := innerW - labelW - 10
	if barW < 10 {
		barW = 10
	}
	if barW > 50 {
		barW = 50
	}
	for _, cc := range a.classes[:limit] {
		classBody.WriteString(components.ShareBar(
			truncStr(cc.Classification, labelW),
			cc.SharePercent/100,
			labelW, barW))
		classBody.WriteString(numStyle.Render(fmt.Sprintf("  %s", cli.FormatNumber(int64(cc.Count)))))
		classBody.WriteString("\n")
	}
	title := fmt.Sprintf("Top Classifications (%d of %d)", limit, len(a.classes))
	b.WriteString(components.ContentCard(title, classBody.String(), cw))

	return b.String()
}
