// Package tui provides the interactive Bubble Tea dashboard for meteorscope.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/strewnlab/meteorscope/internal/config"
	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/pipeline"
	"github.com/strewnlab/meteorscope/internal/tui/components"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the data pipeline finishes, successfully or not.
type DataLoadedMsg struct {
	Result   *pipeline.LoadResult
	Err      error
	LoadTime time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	// Data source
	spec  pipeline.Spec
	cache *pipeline.Cache

	// Load state
	result   *pipeline.LoadResult
	loadErr  error
	loaded   bool
	loading  bool
	loadTime time.Duration

	// Pre-computed aggregations
	summary  model.SummaryStats
	top      []model.Record
	yearly   []model.YearCount
	classes  []model.ClassCount
	colStats []model.ColumnStats

	topN int

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	browser   browserState
	regionIdx int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 170

	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model. spec may be empty when no source is
// configured yet, in which case the first-run setup form collects one.
func NewApp(spec pipeline.Spec, cache *pipeline.Cache, topN, browseRows int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	if topN <= 0 {
		topN = 10
	}

	a := App{
		spec:      spec,
		cache:     cache,
		topN:      topN,
		needSetup: !config.Exists(),
		browser:   newBrowserState(browseRows),
		spinner:   sp,
	}

	// The form binds pointers into setupVals, so it must outlive the
	// value copies Bubble Tea makes of App.
	if a.needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}

	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	} else if a.spec.Path != "" {
		cmds = append(cmds, loadDataCmd(a.spec, a.cache, false))
	}

	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	records := a.result.Records

	a.summary, _ = pipeline.Summarize(records)
	a.top = pipeline.TopHeaviest(records, a.topN)
	a.yearly = pipeline.YearlyCounts(records)
	a.classes = pipeline.ClassCounts(records)
	a.colStats = pipeline.Describe(records)

	a.browser.clamp(len(records))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case DataLoadedMsg:
		a.loading = false
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, nil
		}
		a.loadErr = nil
		a.result = msg.Result
		a.loaded = true
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if a.loading || (!a.loaded && !a.needSetup) {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Browser search mode intercepts all keys when active
	if a.activeTab == tabBrowser && a.browser.searching {
		return a.updateBrowserSearch(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Reload: r reuses the memoized cache, R drops it and re-reads the source
	if key == "r" && !a.loading {
		a.loading = true
		return a, tea.Batch(a.spinner.Tick, loadDataCmd(a.spec, a.cache, false))
	}
	if key == "R" && !a.loading {
		a.loading = true
		return a, tea.Batch(a.spinner.Tick, loadDataCmd(a.spec, a.cache, true))
	}

	if !a.loaded {
		return a, nil
	}

	// Per-tab keybindings
	switch a.activeTab {
	case tabMap:
		if key == "z" {
			a.regionIdx = (a.regionIdx + 1) % len(components.Regions)
			return a, nil
		}
		if key == "Z" {
			a.regionIdx = (a.regionIdx - 1 + len(components.Regions)) % len(components.Regions)
			return a, nil
		}
	case tabBrowser:
		if handled, cmd := a.updateBrowserKeys(key); handled {
			return a, cmd
		}
	}

	// Tab navigation
	if idx := components.TabIdxByKey(keyRune(key)); idx >= 0 {
		a.activeTab = idx
		return a, nil
	}
	switch key {
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabMap
	tabBrowser
	tabStats
	tabAbout
)

func keyRune(key string) rune {
	if len(key) != 1 {
		return 0
	}
	return rune(key[0])
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		spec, err := a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		if err == nil && spec.Path != "" {
			a.spec = spec
			a.loading = true
			return a, tea.Batch(a.spinner.Tick, loadDataCmd(a.spec, a.cache, false))
		}
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.loadErr != nil && !a.loaded {
		return a.viewLoadError()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  meteorscope needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("☄ meteorscope"))
	b.WriteString(subtitleStyle.Render(" · Meteorite Landings"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading " + a.spec.Identity() + "..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// viewLoadError shows the load failure without killing the program, so the
// user can fix the source and press r.
func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not load data"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(ErrorMessage(a.loadErr)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[r] retry   [q] quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("☄ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o m b s a", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move row cursor (browser)"},
		{"g G", "First / Last row (browser)"},
		{"z Z", "Cycle map region"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"/", "Search by name (browser)"},
		{"+ -", "More / Fewer rows (browser)"},
		{"r", "Reload (memoized)"},
		{"R", "Re-read the source"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"

	// A failed reload keeps showing the last good data plus a banner.
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		header += errStyle.Render(" reload failed: "+truncStr(ErrorMessage(a.loadErr), w-18)) + "\n"
	}

	statusBar := components.RenderStatusBar(w, a.spec.Identity(), a.result.FromCache)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabMap:
		content = a.renderMapTab(cw, contentH)
	case tabBrowser:
		content = a.renderBrowserTab(cw, contentH)
	case tabStats:
		content = a.renderStatsTab(cw)
	case tabAbout:
		content = a.renderAboutTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ErrorMessage maps pipeline errors to a single friendly line.
func ErrorMessage(err error) string {
	var schemaErr *model.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Sprintf("The source is missing the %q column. Check that it is a meteorite-landings export.", schemaErr.Column)
	}

	var connErr *model.ConnectionError
	if errors.As(err, &connErr) {
		return fmt.Sprintf("Could not read %s: %v", connErr.Path, connErr.Err)
	}

	var emptyErr *model.EmptyResultError
	if errors.As(err, &emptyErr) {
		return "The source loaded but no usable rows survived " + emptyErr.Stage + "."
	}

	var renderErr *model.RenderError
	if errors.As(err, &renderErr) {
		return fmt.Sprintf("Could not draw the %s view: %v", renderErr.View, renderErr.Err)
	}

	return err.Error()
}

// loadDataCmd runs the pipeline in the background. force drops the memoized
// entry first so the source is re-read.
func loadDataCmd(spec pipeline.Spec, cache *pipeline.Cache, force bool) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		if force && cache != nil {
			cache.Invalidate(spec.Identity())
		}
		res, err := pipeline.Load(spec, cache)
		return DataLoadedMsg{
			Result:   res,
			Err:      err,
			LoadTime: time.Since(start),
		}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
