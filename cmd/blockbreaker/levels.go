package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the configured campaign",
	Long: `Validate the configuration and list the levels new games will play.

Levels come from the "levels" section of breakout.yaml when present,
otherwise the built-in campaign is used.

Examples:
  blockbreaker levels
  blockbreaker levels --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	levels, err := breakout.LevelsFromConfig(cfg.Levels)
	if err != nil {
		return fmt.Errorf("invalid levels: %w", err)
	}

	source := "built-in"
	if len(cfg.Levels) > 0 {
		source = "configured"
	}
	fmt.Fprintf(os.Stdout, "Campaign (%s, %d levels):\n\n", source, len(levels))

	fmt.Printf("  %-3s  %-12s  %-16s  %-7s  %s\n", "#", "ID", "Name", "Size", "Breakable")
	fmt.Printf("  %-3s  %-12s  %-16s  %-7s  %s\n", "-", "--", "----", "----", "---------")
	for i, l := range levels {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-3d  %-12s  %-16s  %-7s  %d\n", i+1, l.ID, l.Name, size, l.CountBreakable())
	}
	return nil
}
