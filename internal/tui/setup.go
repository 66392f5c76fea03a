package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/strewnlab/meteorscope/internal/config"
	"github.com/strewnlab/meteorscope/internal/pipeline"
	"github.com/strewnlab/meteorscope/internal/store"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run form answers.
type setupValues struct {
	csvPath   string
	dbPath    string
	table     string
	themeName string
}

// newSetupForm builds the first-run setup form. Either a CSV path or a
// SQLite path is enough; when both are given the CSV wins.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.themeName = theme.Active.Name
	vals.table = store.DefaultTable

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("☄ Welcome to meteorscope").
				Description("Point it at a meteorite-landings dataset to get started."),

			huh.NewInput().
				Title("CSV file").
				Description("Path to a landings CSV export (leave blank to use SQLite)").
				Value(&vals.csvPath),

			huh.NewInput().
				Title("SQLite database").
				Description("Path to a landings SQLite file").
				Value(&vals.dbPath),

			huh.NewInput().
				Title("Table").
				Description("Table name inside the SQLite database").
				Value(&vals.table),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		),
	)
}

// saveSetupConfig persists the form answers and returns the load spec they
// describe. An empty spec means no source was entered.
func (a *App) saveSetupConfig() (pipeline.Spec, error) {
	vals := *a.setupVals

	cfg := loadConfigOrDefault()
	cfg.Source.CSVPath = strings.TrimSpace(vals.csvPath)
	cfg.Source.DBPath = strings.TrimSpace(vals.dbPath)
	cfg.Source.Table = strings.TrimSpace(vals.table)
	cfg.Appearance.Theme = vals.themeName

	theme.SetActive(cfg.Appearance.Theme)

	if err := config.Save(cfg); err != nil {
		return pipeline.Spec{}, fmt.Errorf("save config: %w", err)
	}

	switch {
	case cfg.Source.CSVPath != "":
		if _, err := os.Stat(cfg.Source.CSVPath); err != nil {
			return pipeline.Spec{}, err
		}
		return pipeline.Spec{Kind: pipeline.SourceCSV, Path: cfg.Source.CSVPath}, nil
	case cfg.Source.DBPath != "":
		table := cfg.Source.Table
		if table == "" {
			table = store.DefaultTable
		}
		return pipeline.Spec{Kind: pipeline.SourceSQLite, Path: cfg.Source.DBPath, Table: table}, nil
	}

	return pipeline.Spec{}, nil
}
