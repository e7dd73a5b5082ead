package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPattern string
	flagPaused  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit and run a board",
	Long: `Start a board sized to the current terminal.

The board starts paused. While paused you can draw cells with the cursor
or the mouse; space starts the simulation.

Controls:
  Space          - Run/pause
  Arrows/hjkl    - Move cursor
  Enter/X/click  - Toggle cell (paused only)
  N              - Step one generation (paused only)
  E              - Clear board (paused only)
  R              - Random board (paused only)
  P              - Next built-in pattern (paused only)
  +/-/0          - Faster/slower/default speed
  ?              - Hide/show controls
  Esc/Q/Ctrl+C   - Quit

Examples:
  life play
  life play --pattern gosper-gun
  life play --pattern ./my-pattern.yaml
  life play --paused=false --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPattern, "pattern", "", "Built-in pattern ID or path to a pattern YAML")
	playCmd.Flags().BoolVar(&flagPaused, "paused", true, "Start paused (overrides start.paused in config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger("life")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	lifeCfg, lib, err := loadBoardConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("paused") {
		lifeCfg.Start.Paused = flagPaused
	}

	opts := game.Options{
		Config:   lifeCfg,
		Patterns: lib,
		Legend:   tui.DefaultKeyMap().Legend(),
	}
	patternRef := flagPattern
	if patternRef == "" {
		patternRef = lifeCfg.Start.Pattern
	}
	if patternRef != "" {
		p, resolveErr := lib.Resolve(patternRef)
		if resolveErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", resolveErr)
			fmt.Fprintln(os.Stderr, "Run 'life patterns' to see built-in patterns.")
			os.Exit(1)
		}
		opts.Start = &p
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage - the board still works
		store = nil
	}

	logger.Info("board started", "width", width, "height", height, "pattern", patternRef)
	runErr := tui.Run(game.New(opts), store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("board failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
