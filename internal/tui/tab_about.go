package tui

import (
	"strings"

	"github.com/strewnlab/meteorscope/internal/tui/components"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderAboutTab(cw int) string {
	t := theme.Active

	termStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var glossary strings.Builder
	entries := []struct{ term, def string }{
		{"Fell", "The fall was witnessed and the meteorite recovered shortly after."},
		{"Found", "The meteorite was discovered later, with no observed fall."},
		{"Valid", "A typical meteorite with an intact classification."},
		{"Relict", "A highly degraded object of probable meteoritic origin."},
		{"Mass (kg)", "Recovered mass. Source data reports grams; values here are divided by 1000."},
	}
	for _, e := range entries {
		glossary.WriteString(termStyle.Render(e.term))
		glossary.WriteString("\n")
		glossary.WriteString(bodyStyle.Render("  " + e.def))
		glossary.WriteString("\n\n")
	}

	var cleaning strings.Builder
	cleaning.WriteString(bodyStyle.Render("Rows are dropped when any of year, latitude, longitude or mass is missing,"))
	cleaning.WriteString("\n")
	cleaning.WriteString(bodyStyle.Render("and when the landing year lies in the future. The count of dropped rows is"))
	cleaning.WriteString("\n")
	cleaning.WriteString(bodyStyle.Render("shown on the Overview tab."))

	var credit strings.Builder
	credit.WriteString(bodyStyle.Render("Data: NASA Open Data Portal, \"Meteorite Landings\" (Meteoritical Society)."))
	credit.WriteString("\n")
	credit.WriteString(dimStyle.Render("https://data.nasa.gov/Space-Science/Meteorite-Landings/gh4g-9sfh"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Glossary", glossary.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Cleaning Rules", cleaning.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Data Source", credit.String(), cw))

	return b.String()
}
