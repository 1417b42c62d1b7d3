package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
	"github.com/vovakirdan/tile2048/internal/registry"
)

var (
	flagPreset  string
	flagSize    int
	flagWinRank uint8
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing 2048. Without a variant a menu lists the boards.

Controls:
  Arrows/WASD/HJKL - Slide
  Enter            - Keep playing after reaching the target
  P                - Pause
  R                - New game
  Esc/B            - Back to the menu
  ?                - All keys
  Q/Ctrl+C         - Quit

Board options build a custom board from the config file:
  --preset small|classic|large|huge
  --size N --win-rank K   (target tile is 2^K)

Logs go nowhere while the board is on screen unless --log-file is set.

Examples:
  tile2048 play
  tile2048 play 2048-3x3
  tile2048 play --preset huge
  tile2048 play --size 8 --win-rank 17 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large, huge")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board side length (overrides board.size)")
	playCmd.Flags().Uint8Var(&flagWinRank, "win-rank", 0, "Winning rank, target tile is 2^rank (overrides board.win_rank)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	playLogger, closeLog, err := openPlayLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	var game registry.Game
	switch {
	case len(args) == 1:
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown variant %q, run 'tile2048 list' to see them", args[0])
		}
		game, err = registry.Create(args[0])
	case cmd.Flags().Changed("preset") || cmd.Flags().Changed("size") || cmd.Flags().Changed("win-rank"):
		game, err = customGame()
	}
	if err != nil {
		return err
	}

	for {
		if game == nil {
			res, err := tui.RunMenu(cfg)
			if err != nil {
				return err
			}
			if res.Quit {
				return nil
			}
			cfg = res.Config
			if game, err = registry.Create(res.GameID); err != nil {
				return err
			}
		}

		back, err := tui.Run(game, cfg, playLogger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
		game = nil
	}
}

// customGame builds a game from the config board with the board flags applied.
func customGame() (registry.Game, error) {
	cfg := appConfig
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.BoardPreset(flagPreset)); err != nil {
			return nil, err
		}
	}
	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if flagWinRank != 0 {
		cfg.Board.WinRank = flagWinRank
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v := t2048.VariantFor(cfg)
	logger.Debug("custom board", "variant", v.ID, "size", v.Size, "target", v.Target())
	return t2048.NewGame(v)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.Runtime.TickRate,
		Seed:     appConfig.Runtime.Seed,
	}
}

// openPlayLogger returns the logger used while the TUI owns the terminal.
func openPlayLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, appConfig.Log), func() { f.Close() }, nil
}
