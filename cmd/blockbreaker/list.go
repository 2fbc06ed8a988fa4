package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		line := g.Title
		if g.Description != "" {
			line += " - " + g.Description
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, line)
	}

	fmt.Println()
	fmt.Println("Run 'blockbreaker play' to play, or 'blockbreaker play --autoplay' to watch.")
}
