package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var yearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Landings per year",
	RunE:  runYearly,
}

func init() {
	rootCmd.AddCommand(yearlyCmd)
}

func runYearly(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	counts := pipeline.YearlyCounts(result.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("LANDINGS PER YEAR"))
	fmt.Println()

	// Sparkline over the whole series, table for the most recent years.
	vals := make([]float64, len(counts))
	maxCount := 0
	for i, yc := range counts {
		vals[i] = float64(yc.Count)
		if yc.Count > maxCount {
			maxCount = yc.Count
		}
	}
	if len(vals) > 0 {
		fmt.Printf("  %s\n", cli.RenderSparkline(vals))
		fmt.Println(cli.Muted(fmt.Sprintf("  %d years, oldest left", len(counts))))
		fmt.Println()
	}

	tail := counts
	const recentYears = 25
	if len(tail) > recentYears {
		tail = tail[len(tail)-recentYears:]
	}

	rows := make([][]string, 0, len(tail))
	for _, yc := range tail {
		rows = append(rows, []string{
			fmt.Sprintf("%d", yc.Year),
			cli.FormatNumber(int64(yc.Count)),
			cli.RenderHorizontalBar(float64(yc.Count), float64(maxCount), 30),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Landings", ""},
		Rows:    rows,
	}))

	return nil
}
