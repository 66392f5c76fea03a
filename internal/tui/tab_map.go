package tui

import (
	"fmt"
	"strings"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/tui/components"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMapTab(cw, contentH int) string {
	t := theme.Active
	region := components.Regions[a.regionIdx]

	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Card border and legend eat into the height budget.
	mapW := components.CardInnerWidth(cw)
	mapH := contentH - 6
	if mapH < 5 {
		mapH = 5
	}

	plotted := 0
	for _, r := range a.result.Records {
		if r.Latitude >= region.MinLat && r.Latitude <= region.MaxLat &&
			r.Longitude >= region.MinLong && r.Longitude <= region.MaxLong {
			plotted++
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Region: "))
	b.WriteString(accentStyle.Render(region.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   %s landings   [z] next region", cli.FormatNumber(int64(plotted)))))
	b.WriteString("\n")
	b.WriteString(components.GeoMap(a.result.Records, region, mapW, mapH))
	b.WriteString("\n")
	b.WriteString(components.GeoMapLegend())

	return components.ContentCard("", b.String(), cw)
}
