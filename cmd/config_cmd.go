package cmd

import (
	"fmt"

	"github.com/strewnlab/meteorscope/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Source]")
	if cfg.Source.CSVPath != "" {
		fmt.Printf("    CSV:   %s\n", cfg.Source.CSVPath)
	}
	if cfg.Source.DBPath != "" {
		fmt.Printf("    DB:    %s\n", cfg.Source.DBPath)
		fmt.Printf("    Table: %s\n", cfg.Source.Table)
	}
	if cfg.Source.CSVPath == "" && cfg.Source.DBPath == "" {
		fmt.Println("    not configured (METEORSCOPE_CSV / METEORSCOPE_DB also work)")
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Top N:       %d\n", cfg.Display.TopN)
	fmt.Printf("    Browse rows: %d\n", cfg.Display.BrowseRows)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}
