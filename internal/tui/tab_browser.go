package tui

import (
	"fmt"
	"strings"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/tui/components"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minBrowseRows = 5
	maxBrowseRows = 50
)

// browserState tracks the row browser tab.
type browserState struct {
	cursor int
	offset int
	rows   int // visible page size, adjusted with + / -

	searching   bool
	searchInput textinput.Model
	searchQuery string
}

func newBrowserState(rows int) browserState {
	if rows < minBrowseRows {
		rows = 10
	}
	if rows > maxBrowseRows {
		rows = maxBrowseRows
	}
	return browserState{rows: rows}
}

func (s *browserState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.offset > s.cursor {
		s.offset = s.cursor
	}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "meteorite name..."
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// updateBrowserKeys handles browser tab keys. Reports whether the key was
// consumed so tab shortcuts still work for everything else.
func (a *App) updateBrowserKeys(key string) (bool, tea.Cmd) {
	records := a.browseRecords()

	switch key {
	case "/":
		a.browser.searching = true
		a.browser.searchInput = newSearchInput()
		a.browser.searchInput.Focus()
		return true, a.browser.searchInput.Cursor.BlinkCmd()
	case "esc":
		if a.browser.searchQuery != "" {
			a.browser.searchQuery = ""
			a.browser.cursor = 0
			a.browser.offset = 0
		}
		return true, nil
	case "j", "down":
		if a.browser.cursor < len(records)-1 {
			a.browser.cursor++
		}
		return true, nil
	case "k", "up":
		if a.browser.cursor > 0 {
			a.browser.cursor--
		}
		return true, nil
	case "g":
		a.browser.cursor = 0
		a.browser.offset = 0
		return true, nil
	case "G":
		a.browser.cursor = len(records) - 1
		if a.browser.cursor < 0 {
			a.browser.cursor = 0
		}
		return true, nil
	case "+", "=":
		if a.browser.rows < maxBrowseRows {
			a.browser.rows++
		}
		return true, nil
	case "-", "_":
		if a.browser.rows > minBrowseRows {
			a.browser.rows--
		}
		return true, nil
	}
	return false, nil
}

// updateBrowserSearch handles key events while typing a search query.
func (a App) updateBrowserSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.browser.searchQuery = strings.TrimSpace(a.browser.searchInput.Value())
		a.browser.searching = false
		a.browser.cursor = 0
		a.browser.offset = 0
		return a, nil
	case "esc":
		a.browser.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.browser.searchInput, cmd = a.browser.searchInput.Update(msg)
	return a, cmd
}

// browseRecords returns the records filtered by the active search query.
func (a App) browseRecords() []model.Record {
	if a.browser.searchQuery == "" {
		return a.result.Records
	}
	q := strings.ToLower(a.browser.searchQuery)
	var out []model.Record
	for _, r := range a.result.Records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

func (a App) renderBrowserTab(cw, contentH int) string {
	t := theme.Active
	records := a.browseRecords()
	st := a.browser

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	fellStyle := lipgloss.NewStyle().Foreground(t.Fell)
	foundStyle := lipgloss.NewStyle().Foreground(t.Found)

	var b strings.Builder

	if st.searching {
		b.WriteString(dimStyle.Render("Search: "))
		b.WriteString(st.searchInput.View())
		b.WriteString("\n\n")
	} else if st.searchQuery != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Filter: %q  (%s rows, esc clears)",
			st.searchQuery, cli.FormatNumber(int64(len(records))))))
		b.WriteString("\n\n")
	}

	if len(records) == 0 {
		b.WriteString(dimStyle.Render("No rows match."))
		return components.ContentCard("Browser", b.String(), cw)
	}

	// Window the visible slice so the page never exceeds the terminal.
	page := st.rows
	if avail := contentH - 8; avail > 0 && page > avail {
		page = avail
	}
	if page < 1 {
		page = 1
	}
	offset := st.offset
	if st.cursor < offset {
		offset = st.cursor
	}
	if st.cursor >= offset+page {
		offset = st.cursor - page + 1
	}
	end := offset + page
	if end > len(records) {
		end = len(records)
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 56
	if nameW < 12 {
		nameW = 12
	}
	if nameW > 28 {
		nameW = 28
	}

	header := fmt.Sprintf("%-*s %-10s %5s %6s %10s %9s %9s",
		nameW, "Name", "Class", "Fall", "Year", "Mass (kg)", "Lat", "Long")
	b.WriteString(headStyle.Render(truncStr(header, innerW)))
	b.WriteString("\n")

	for i := offset; i < end; i++ {
		r := records[i]

		fall := foundStyle.Render(fmt.Sprintf("%-5s", r.FallStatus))
		if r.Fell() {
			fall = fellStyle.Render(fmt.Sprintf("%-5s", r.FallStatus))
		}

		line := fmt.Sprintf("%-*s %-10s ",
			nameW, truncStr(r.Name, nameW),
			truncStr(r.Classification, 10))
		rest := fmt.Sprintf(" %6d %10s %9.4f %9.4f",
			r.Year, cli.FormatMassKg(r.MassKg), r.Latitude, r.Longitude)

		if i == st.cursor {
			b.WriteString(selStyle.Render(truncStr(line+r.FallStatus+rest, innerW)))
		} else {
			b.WriteString(rowStyle.Render(line) + fall + rowStyle.Render(rest))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.ProgressBar(float64(end)/float64(len(records)), 20))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("rows %d-%d of %s   [j/k] move  [+/-] page size (%d)  [/] search",
		offset+1, end, cli.FormatNumber(int64(len(records))), st.rows)))

	return components.ContentCard("Browser", b.String(), cw)
}
