// Package cmd implements the meteorscope CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/strewnlab/meteorscope/internal/config"
	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/pipeline"
	"github.com/strewnlab/meteorscope/internal/store"
	"github.com/strewnlab/meteorscope/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagCSV     string
	flagDB      string
	flagTable   string
	flagTop     int
	flagRows    int
	flagNoCache bool
	flagQuiet   bool
)

// loadCache memoizes loads across commands within one process.
var loadCache = pipeline.NewCache()

var rootCmd = &cobra.Command{
	Use:   "meteorscope",
	Short: "Meteorite Landings dashboard",
	Long:  "Explore NASA's Meteorite Landings dataset: summaries, charts, maps, and an interactive TUI.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  %s\n", friendlyError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVarP(&flagCSV, "csv", "c", "", "Path to a landings CSV export")
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to a landings SQLite database")
	rootCmd.PersistentFlags().StringVarP(&flagTable, "table", "t", "", "Table name inside the SQLite database")
	rootCmd.PersistentFlags().IntVarP(&flagTop, "top", "n", 0, "How many heaviest landings to show")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Rows per page in the browser")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Re-read the source instead of reusing the memoized load")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// resolveSpec picks the data source: flags beat environment beats config.
// When both CSV and SQLite are given, the CSV wins.
func resolveSpec() (pipeline.Spec, error) {
	cfg := loadConfigOrDefault()

	csvPath := flagCSV
	if csvPath == "" {
		csvPath = config.GetCSVPath(cfg)
	}
	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.GetDBPath(cfg)
	}
	table := flagTable
	if table == "" {
		table = cfg.Source.Table
	}
	if table == "" {
		table = store.DefaultTable
	}

	switch {
	case csvPath != "":
		return pipeline.Spec{Kind: pipeline.SourceCSV, Path: csvPath}, nil
	case dbPath != "":
		return pipeline.Spec{Kind: pipeline.SourceSQLite, Path: dbPath, Table: table}, nil
	}

	return pipeline.Spec{}, errors.New("no data source: pass --csv or --db, or run `meteorscope tui` to set one up")
}

func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// loadData is the shared loading path used by all commands.
func loadData() (*pipeline.LoadResult, error) {
	spec, err := resolveSpec()
	if err != nil {
		return nil, err
	}

	if flagNoCache {
		loadCache.Invalidate(spec.Identity())
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading %s...\n", spec.Identity())
	}

	result, err := pipeline.Load(spec, loadCache)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %d rows read, %d dropped in cleaning\n",
			result.SourceRows, result.Dropped)
	}

	return result, nil
}

// topN resolves the heaviest-landings count from flag then config.
func topN() int {
	if flagTop > 0 {
		return flagTop
	}
	cfg := loadConfigOrDefault()
	if cfg.Display.TopN > 0 {
		return cfg.Display.TopN
	}
	return 10
}

func browseRows() int {
	if flagRows > 0 {
		return flagRows
	}
	cfg := loadConfigOrDefault()
	if cfg.Display.BrowseRows > 0 {
		return cfg.Display.BrowseRows
	}
	return 10
}

func applyTheme() {
	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)
}

// friendlyError maps the pipeline error taxonomy to one readable line.
func friendlyError(err error) string {
	var schemaErr *model.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Sprintf("The source has no %q column. Is this a meteorite-landings export?", schemaErr.Column)
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
