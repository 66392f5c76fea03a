package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Landings by classification",
	RunE:  runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func runClasses(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	counts := pipeline.ClassCounts(result.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CLASSIFICATIONS"))
	fmt.Println()

	limit := topN()
	if len(counts) < limit {
		limit = len(counts)
	}

	maxCount := 0
	if len(counts) > 0 {
		maxCount = counts[0].Count
	}

	rows := make([][]string, 0, limit)
	for _, cc := range counts[:limit] {
		rows = append(rows, []string{
			cc.Classification,
			cli.FormatNumber(int64(cc.Count)),
			cli.FormatPercent(cc.SharePercent),
			cli.RenderHorizontalBar(float64(cc.Count), float64(maxCount), 25),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Class", "Count", "Share", ""},
		Rows:    rows,
	}))

	if len(counts) > limit {
		fmt.Println(cli.Muted(fmt.Sprintf("  ...and %d more classes (--top to widen)", len(counts)-limit)))
	}

	return nil
}
