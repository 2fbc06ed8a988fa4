package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
	"github.com/vovakirdan/blockbreaker/internal/registry"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores. The game defaults to breakout.

Examples:
  blockbreaker scores
  blockbreaker scores breakout_autoplay
  blockbreaker scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := breakout.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockbreaker list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockbreaker play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "cleared"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-7s  %s\n", i+1, entry.Score, entry.Level, result, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Best level: %d  Wins: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel, stats.Wins)
	}
}
