// tile2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	tile2048 list              - List board variants
//	tile2048 play [variant]    - Play a variant, or pick one from a menu
//	tile2048 serve             - Start SSH server for remote play
//	tile2048 auto [variant]    - Let a strategy play headlessly and print the result
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tile2048/config.yaml, then ./configs/tile2048.yaml)
//	--fps <rate>        - Override runtime.tick_rate
//	--seed <value>      - Override runtime.seed (0 = random based on time)
//	--log-level <lvl>   - Override log.level
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	_ "github.com/vovakirdan/tile2048/internal/games/t2048" // registers the variants
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string

	// Loaded by the root command before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "2048 in your terminal",
	Long: `tile2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board to merge equal tiles. Every move that changes the board
adds a new 2 (or, rarely, a 4). Reach the target tile to win; the game
ends when no move can change the board.

Available commands:
  list   - Show the board variants
  play   - Play a variant directly, or pick one from a menu
  serve  - Start SSH server for remote play
  auto   - Watch a strategy play without a UI

Examples:
  tile2048 list
  tile2048 play
  tile2048 play 2048-5x5
  tile2048 play --size 8 --win-rank 17
  tile2048 serve --ssh :2222
  tile2048 auto --strategy greedy --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = runtime.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = runtime.seed from config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(autoCmd)
}

// loadConfig reads the config file, applies global flag overrides and
// builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagFPS != 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Runtime.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	return nil
}

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, cfg config.LogConfig) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Prefix,
	})
	if level, err := log.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		l.SetLevel(level)
	}
	return l
}
