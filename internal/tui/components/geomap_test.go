package components

import (
	"strings"
	"testing"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Plain output keeps the grid assertions readable
	lipgloss.SetColorProfile(termenv.Ascii)
	theme.SetActive("terminal")
}

func TestGeoMapGridPlacement(t *testing.T) {
	records := []model.Record{
		{Name: "NorthWest", Latitude: 89, Longitude: -179, MassKg: 0.5, FallStatus: model.FallStatusFound},
		{Name: "SouthEast", Latitude: -89, Longitude: 179, MassKg: 20000, FallStatus: model.FallStatusFell},
	}

	out := GeoMap(records, Regions[0], 20, 10)
	lines := strings.Split(out, "\n")

	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "·") {
		t.Errorf("expected light glyph at top-left, got %q", lines[0])
	}
	last := []rune(lines[len(lines)-1])
	if len(last) == 0 || last[len(last)-1] != '█' {
		t.Errorf("expected heavy glyph at bottom-right, got %q", lines[len(lines)-1])
	}
}

func TestGeoMapRegionFilter(t *testing.T) {
	records := []model.Record{
		{Name: "Hoba", Latitude: -19.6, Longitude: 17.9, MassKg: 60000},
		{Name: "Aachen", Latitude: 50.8, Longitude: 6.1, MassKg: 0.021},
	}

	europe := Regions[1]
	out := GeoMap(records, europe, 30, 12)

	glyphs := 0
	for _, r := range out {
		switch r {
		case '·', '•', '●', '█':
			glyphs++
		}
	}
	if glyphs != 1 {
		t.Errorf("expected only the European landing plotted, got %d glyphs", glyphs)
	}
}

func TestGeoMapEmptyRegion(t *testing.T) {
	records := []model.Record{
		{Name: "Hoba", Latitude: -19.6, Longitude: 17.9, MassKg: 60000},
	}

	out := GeoMap(records, Regions[1], 30, 12)
	if !strings.Contains(out, "no landings") {
		t.Errorf("expected empty-region message, got %q", out)
	}
}

func TestGeoMapTinyViewport(t *testing.T) {
	records := []model.Record{{Latitude: 0, Longitude: 0, MassKg: 1}}
	if out := GeoMap(records, Regions[0], 4, 2); out != "" {
		t.Errorf("expected empty output for tiny viewport, got %q", out)
	}
}

func TestMassGlyphBuckets(t *testing.T) {
	cases := []struct {
		massKg float64
		want   rune
	}{
		{0.02, '·'},
		{1, '•'},
		{99.9, '•'},
		{100, '●'},
		{9999, '●'},
		{10000, '█'},
		{60000, '█'},
	}
	for _, c := range cases {
		if got := massGlyph(c.massKg); got != c.want {
			t.Errorf("massGlyph(%v) = %q, want %q", c.massKg, got, c.want)
		}
	}
}
