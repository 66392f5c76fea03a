package components

import (
	"strings"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Region bounds a rectangular slice of the world in degrees.
type Region struct {
	Name    string
	MinLat  float64
	MaxLat  float64
	MinLong float64
	MaxLong float64
}

// Regions are the zoom presets for the map tab, cycled in order.
var Regions = []Region{
	{Name: "World", MinLat: -90, MaxLat: 90, MinLong: -180, MaxLong: 180},
	{Name: "Europe", MinLat: 35, MaxLat: 70, MinLong: -10, MaxLong: 40},
	{Name: "Africa", MinLat: -35, MaxLat: 37, MinLong: -20, MaxLong: 52},
	{Name: "Americas", MinLat: -56, MaxLat: 70, MinLong: -170, MaxLong: -35},
	{Name: "Asia & Oceania", MinLat: -47, MaxLat: 75, MinLong: 40, MaxLong: 180},
}

// cell accumulates the landings projected onto one character.
type cell struct {
	count     int
	fell      bool
	maxMassKg float64
}

// massGlyph picks a marker by the heaviest landing in a cell.
func massGlyph(massKg float64) rune {
	switch {
	case massKg >= 10000:
		return '█'
	case massKg >= 100:
		return '●'
	case massKg >= 1:
		return '•'
	default:
		return '·'
	}
}

// GeoMap renders landings as an equirectangular scatter grid. Cells where
// at least one meteorite was observed falling use the Fell color, cells
// holding only finds use the Found color.
func GeoMap(records []model.Record, region Region, width, height int) string {
	if width < 10 || height < 5 {
		return ""
	}

	t := theme.Active

	grid := make([]cell, width*height)
	spanLat := region.MaxLat - region.MinLat
	spanLong := region.MaxLong - region.MinLong
	if spanLat <= 0 || spanLong <= 0 {
		return ""
	}

	plotted := 0
	for _, r := range records {
		if r.Latitude < region.MinLat || r.Latitude > region.MaxLat ||
			r.Longitude < region.MinLong || r.Longitude > region.MaxLong {
			continue
		}
		x := int((r.Longitude - region.MinLong) / spanLong * float64(width))
		// Latitude grows north, rows grow down.
		y := int((region.MaxLat - r.Latitude) / spanLat * float64(height))
		if x >= width {
			x = width - 1
		}
		if y >= height {
			y = height - 1
		}
		c := &grid[y*width+x]
		c.count++
		if r.Fell() {
			c.fell = true
		}
		if r.MassKg > c.maxMassKg {
			c.maxMassKg = r.MassKg
		}
		plotted++
	}

	if plotted == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim)
		return empty.Render("no landings in this region")
	}

	fellStyle := lipgloss.NewStyle().Foreground(t.Fell)
	foundStyle := lipgloss.NewStyle().Foreground(t.Found)

	var b strings.Builder
	for y := 0; y < height; y++ {
		var line strings.Builder
		run := func(style lipgloss.Style, runes []rune) {
			if len(runes) > 0 {
				line.WriteString(style.Render(string(runes)))
			}
		}
		var pending []rune
		var pendingFell bool
		flush := func() {
			if pendingFell {
				run(fellStyle, pending)
			} else {
				run(foundStyle, pending)
			}
			pending = pending[:0]
		}
		for x := 0; x < width; x++ {
			c := grid[y*width+x]
			if c.count == 0 {
				flush()
				line.WriteRune(' ')
				continue
			}
			if len(pending) > 0 && c.fell != pendingFell {
				flush()
			}
			pendingFell = c.fell
			pending = append(pending, massGlyph(c.maxMassKg))
		}
		flush()
		b.WriteString(line.String())
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// GeoMapLegend renders the marker and color legend under the map.
func GeoMapLegend() string {
	t := theme.Active

	dim := lipgloss.NewStyle().Foreground(t.TextMuted)
	fell := lipgloss.NewStyle().Foreground(t.Fell)
	found := lipgloss.NewStyle().Foreground(t.Found)

	return fell.Render("●") + dim.Render(" fell   ") +
		found.Render("●") + dim.Render(" found   ") +
		dim.Render("· <1kg  • <100kg  ● <10t  █ ≥10t")
}
