package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/pipeline"
	"github.com/strewnlab/meteorscope/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	applyTheme()

	// Force TrueColor so lipgloss styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	// First run may have no source yet; the setup form collects one.
	spec, err := resolveSpec()
	if err != nil {
		spec = pipeline.Spec{}
	}

	app := tui.NewApp(spec, loadCache, topN(), browseRows())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
