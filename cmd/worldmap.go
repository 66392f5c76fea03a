package cmd

import (
	"errors"
	"fmt"

	"github.com/strewnlab/meteorscope/internal/cli"
	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/tui/components"

	"github.com/spf13/cobra"
)

var flagMapWidth int

var worldmapCmd = &cobra.Command{
	Use:   "worldmap",
	Short: "ASCII world map of landing sites",
	RunE:  runWorldmap,
}

func init() {
	worldmapCmd.Flags().IntVar(&flagMapWidth, "width", 100, "Map width in columns")
	rootCmd.AddCommand(worldmapCmd)
}

func runWorldmap(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	applyTheme()

	if flagMapWidth < 40 {
		return &model.RenderError{
			View: "worldmap",
			Err:  errors.New("needs at least 40 columns"),
		}
	}

	// Equirectangular cells are about twice as tall as wide.
	height := flagMapWidth / 4
	if height < 10 {
		height = 10
	}

	world := components.Regions[0]

	fmt.Println()
	fmt.Println(cli.RenderTitle("LANDING SITES"))
	fmt.Println()
	fmt.Println(components.GeoMap(result.Records, world, flagMapWidth, height))
	fmt.Println()
	fmt.Println(components.GeoMapLegend())

	return nil
}
