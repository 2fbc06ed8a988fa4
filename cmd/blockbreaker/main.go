// blockbreaker is a terminal Breakout game.
//
// Usage:
//
//	blockbreaker play            - Play the campaign
//	blockbreaker menu            - Start menu to pick a mode interactively
//	blockbreaker serve           - Start SSH server for remote play
//	blockbreaker scores [game]   - Show high scores
//	blockbreaker levels          - Show the configured campaign
//	blockbreaker list            - List available game modes
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.blockbreaker/scores.db)
//	--config <path>      - Use a custom breakout.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write diagnostics to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// logger is configured from --log-file before any command runs.
var logger = log.New(io.Discard)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block Breaker - Breakout in your terminal",
	Long: `Block Breaker is a terminal Breakout game. Steer the paddle with the
mouse or the arrow keys, launch the ball and clear every breakable block
to advance through the campaign.

Available commands:
  play     - Play the campaign directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show the configured campaign
  list     - Show all game modes

Examples:
  blockbreaker play
  blockbreaker play --level 3 --difficulty hard
  blockbreaker play --autoplay
  blockbreaker menu
  blockbreaker serve --ssh :2222
  blockbreaker scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockbreaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setupRuntime validates global flags and configures logging and the game package.
func setupRuntime(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// The terminal belongs to the game, so logs only go to a file
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "blockbreaker",
			Level:           level,
		})
	}

	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}
