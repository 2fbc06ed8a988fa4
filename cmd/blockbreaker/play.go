package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
	"github.com/vovakirdan/blockbreaker/internal/registry"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var (
	flagAutoPlay bool
	flagLevel    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start playing Breakout. Without --level or --autoplay a mode
selector is shown first.

Controls:
  Mouse          - Move paddle
  Click/Space    - Launch ball
  Left/Right/A/D - Nudge paddle
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives, slower ball, wider paddle
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, faster ball
  fixed  - No progression, stays at config's initial level

Examples:
  blockbreaker play
  blockbreaker play --level 3
  blockbreaker play --difficulty hard
  blockbreaker play --autoplay --seed 42
  blockbreaker play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutoPlay, "autoplay", false, "Let the paddle follow the ball")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "1-based level to start on")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := terminalConfig()

	gameID := breakout.GameID
	if flagAutoPlay {
		gameID = breakout.AutoPlayGameID
	}
	breakout.SetStartLevel(flagLevel)

	if !cmd.Flags().Changed("level") && !cmd.Flags().Changed("autoplay") {
		selection, err := tui.RunBreakoutModeSelector(breakout.CampaignLevels(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = selection.Mode.GameID()
		breakout.SetStartLevel(selection.Level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "db", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("game started", "game", gameID, "level", max(flagLevel, 1), "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
