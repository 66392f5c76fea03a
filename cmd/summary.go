package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dataset summary metrics",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	stats, err := pipeline.Summarize(result.Records)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("METEORITE LANDINGS"))
	fmt.Println()

	fellPct := 0.0
	if stats.TotalRecords > 0 {
		fellPct = float64(stats.FellCount) / float64(stats.TotalRecords) * 100
	}

	rows := [][]string{
		{"Landings", cli.FormatNumber(int64(stats.TotalRecords))},
		{"Source rows", cli.FormatNumber(int64(result.SourceRows))},
		{"Dropped in cleaning", cli.FormatNumber(int64(result.Dropped))},
		{"---"},
		{"Year range", cli.FormatYearRange(stats.MinYear, stats.MaxYear)},
		{"Heaviest", fmt.Sprintf("%s (%s)", stats.HeaviestName, cli.FormatMass(stats.MaxMassKg))},
		{"---"},
		{"Fell", fmt.Sprintf("%s  (%s)", cli.FormatNumber(int64(stats.FellCount)), cli.FormatPercent(fellPct))},
		{"Found", cli.FormatNumber(int64(stats.FoundCount))},
		{"Valid", cli.FormatNumber(int64(stats.ValidCount))},
		{"Relict", cli.FormatNumber(int64(stats.RelictCount))},
	}

	fmt.Println(cli.RenderTable(cli.Table{Rows: rows}))

	if result.FromCache {
		fmt.Println(cli.Muted("  (memoized load)"))
	}

	return nil
}
