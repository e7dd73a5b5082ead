// life runs Conway's Game of Life in the terminal.
//
// Usage:
//
//	life play              - Edit and run a board in this terminal
//	life menu              - Pick a starting board interactively
//	life serve             - Start SSH server for remote boards
//	life patterns          - List built-in patterns
//	life runs              - Show run history
//
// Global flags:
//
//	--fps <rate>         - Frame rate of the UI loop (default: 60)
//	--seed <value>       - RNG seed for random boards
//	--db <path>          - Run history database (default: ~/.life/runs.db)
//	--config <path>      - Board configuration YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on a bounded board sized to your
terminal. Draw cells while paused, then let the generations run.

Available commands:
  play      - Edit and run a board in this terminal
  menu      - Pick a starting board interactively
  serve     - Start SSH server for remote boards
  patterns  - List built-in patterns
  runs      - Show run history

Examples:
  life play
  life play --pattern glider
  life play --pattern ./my-pattern.yaml --paused=false
  life serve --ssh :2222
  life runs --longest`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of the UI loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for random boards (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to ~/.life/life.log so the alternate screen stays clean.
// The returned close function is never nil.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	out := io.Discard
	closeFn := func() {}

	if dir := config.HomeDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "life.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				out = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger, err := newLogger(out, prefix)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}

// loadBoardConfig loads the board config and pattern library, logging
// where the config came from.
func loadBoardConfig(logger *log.Logger) (config.LifeConfig, *patterns.Library, error) {
	cfg, src, err := config.LoadLife(flagConfig)
	if err != nil {
		return config.LifeConfig{}, nil, err
	}
	logger.Debug("config loaded", "source", src)

	lib, err := patterns.Builtin()
	if err != nil {
		return config.LifeConfig{}, nil, err
	}
	return cfg, lib, nil
}
