package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Column statistics for the cleaned dataset",
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	stats := pipeline.Describe(result.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("COLUMN STATISTICS"))
	fmt.Println()

	rows := make([][]string, 0, len(stats))
	for _, cs := range stats {
		rows = append(rows, []string{
			cs.Column,
			cli.FormatNumber(int64(cs.Count)),
			fmt.Sprintf("%.2f", cs.Mean),
			fmt.Sprintf("%.2f", cs.Std),
			fmt.Sprintf("%.2f", cs.Min),
			fmt.Sprintf("%.2f", cs.Median),
			fmt.Sprintf("%.2f", cs.Max),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Column", "Count", "Mean", "Std", "Min", "Median", "Max"},
		Rows:    rows,
	}))

	return nil
}
