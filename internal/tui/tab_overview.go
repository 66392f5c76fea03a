package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/tui/components"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	fellShare := ""
	if stats.TotalRecords > 0 {
		fellShare = fmt.Sprintf("%.1f%% observed falling",
			float64(stats.FellCount)/float64(stats.TotalRecords)*100)
	}

	cards := []components.Metric{
		{Label: "Landings", Value: cli.FormatNumber(int64(stats.TotalRecords)), Detail: fmt.Sprintf("%d dropped in cleaning", a.result.Dropped)},
		{Label: "Years", Value: cli.FormatYearRange(stats.MinYear, stats.MaxYear), Detail: fmt.Sprintf("%d distinct years", len(a.yearly))},
		{Label: "Heaviest", Value: cli.FormatMass(stats.MaxMassKg), Detail: stats.HeaviestName},
		{Label: "Fell", Value: cli.FormatNumber(int64(stats.FellCount)), Detail: fellShare},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Landings per year chart
	if len(a.yearly) > 0 {
		vals := make([]float64, len(a.yearly))
		labels := make([]string, len(a.yearly))
		for i, yc := range a.yearly {
			vals[i] = float64(yc.Count)
			labels[i] = strconv.Itoa(yc.Year)
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			"Landings per Year",
			components.BarChart(vals, labels, t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Top heaviest + Fell vs Found split
	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	massStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var topBody strings.Builder
	if len(a.top) > 0 {
		maxMass := a.top[0].MassKg
		nameW := innerW / 3
		if nameW < 10 {
			nameW = 10
		}
		barMaxLen := innerW - nameW - 12
		if barMaxLen < 1 {
			barMaxLen = 1
		}
		for _, r := range a.top {
			barLen := 0
			if maxMass > 0 {
				barLen = int(r.MassKg / maxMass * float64(barMaxLen))
			}
			fmt.Fprintf(&topBody, "%s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.Name, nameW))),
				barStyle.Render(strings.Repeat("█", barLen)),
				massStyle.Render(cli.FormatMass(r.MassKg)))
		}
	}

	var splitBody strings.Builder
	splitInnerW := components.CardInnerWidth(halves[1])
	total := stats.FellCount + stats.FoundCount
	if total > 0 {
		barW := splitInnerW - 22
		if barW < 10 {
			barW = 10
		}
		fellStyle := lipgloss.NewStyle().Foreground(t.Fell)
		foundStyle := lipgloss.NewStyle().Foreground(t.Found)
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		fellLen := stats.FellCount * barW / total
		foundLen := stats.FoundCount * barW / total
		fmt.Fprintf(&splitBody, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-6s", "Fell")),
			fellStyle.Render(strings.Repeat("█", fellLen)),
			labelStyle.Render(cli.FormatNumber(int64(stats.FellCount))))
		fmt.Fprintf(&splitBody, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-6s", "Found")),
			foundStyle.Render(strings.Repeat("█", foundLen)),
			labelStyle.Render(cli.FormatNumber(int64(stats.FoundCount))))

		splitBody.WriteString("\n")
		fmt.Fprintf(&splitBody, "%s %s\n",
			labelStyle.Render("Valid "),
			nameStyle.Render(cli.FormatNumber(int64(stats.ValidCount))))
		fmt.Fprintf(&splitBody, "%s %s\n",
			labelStyle.Render("Relict"),
			nameStyle.Render(cli.FormatNumber(int64(stats.RelictCount))))
	}

	topTitle := fmt.Sprintf("Top %d Heaviest", len(a.top))
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(topTitle, topBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Fell vs Found", splitBody.String(), cw))
	} else {
		topCard := components.ContentCard(topTitle, topBody.String(), halves[0])
		splitCard := components.ContentCard("Fell vs Found", splitBody.String(), halves[1])
		b.WriteString(components.CardRow([]string{topCard, splitCard}))
	}

	return b.String()
}
