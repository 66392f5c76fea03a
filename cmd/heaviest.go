package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var heaviestCmd = &cobra.Command{
	Use:   "heaviest",
	Short: "Top heaviest meteorites",
	RunE:  runHeaviest,
}

func init() {
	rootCmd.AddCommand(heaviestCmd)
}

func runHeaviest(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	n := topN()
	top := pipeline.TopHeaviest(result.Records, n)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP %d HEAVIEST", len(top))))
	fmt.Println()

	maxMass := 0.0
	if len(top) > 0 {
		maxMass = top[0].MassKg
	}

	rows := make([][]string, 0, len(top))
	for i, r := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Name,
			r.Classification,
			fmt.Sprintf("%d", r.Year),
			cli.FormatMass(r.MassKg),
			cli.RenderHorizontalBar(r.MassKg, maxMass, 20),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Name", "Class", "Year", "Mass", ""},
		Rows:    rows,
	}))

	return nil
}
