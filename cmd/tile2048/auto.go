package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

var (
	flagStrategy string
	flagMaxMoves int
)

var autoCmd = &cobra.Command{
	Use:   "auto [variant]",
	Short: "Let a strategy play headlessly",
	Long: `Play a game without a UI and print the final board.

Strategies:
  random - any legal move
  greedy - the move that leaves the most empty cells

Without a variant the board from the config file is used. Moves are
logged at debug level.

Examples:
  tile2048 auto
  tile2048 auto 2048-3x3 --strategy random --seed 1
  tile2048 auto --max-moves 200 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&flagStrategy, "strategy", "greedy", "Move strategy: random, greedy")
	autoCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop after this many moves (0 = until game over)")
}

func runAuto(cmd *cobra.Command, args []string) error {
	v := t2048.VariantFor(appConfig)
	if len(args) == 1 {
		var ok bool
		if v, ok = t2048.LookupVariant(args[0]); !ok {
			return fmt.Errorf("unknown variant %q, run 'tile2048 list' to see them", args[0])
		}
	}

	seed := appConfig.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	strategy, err := t2048.ParseStrategy(flagStrategy, rng)
	if err != nil {
		return err
	}
	board, err := t2048.NewBoard(v.Size, rng,
		t2048.WithWinRank(v.WinRank),
		t2048.WithHighTileOdds(v.HighTileOdds),
	)
	if err != nil {
		return err
	}
	if err := board.Generate(); err != nil {
		return err
	}

	logger.Info("autoplay", "variant", v.ID, "strategy", strategy.Name(), "seed", seed)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := t2048.Autoplay(ctx, board, strategy, flagMaxMoves, func(n int, dir t2048.Direction) {
		logger.Debug("move", "n", n, "dir", dir, "best", t2048.Label(board.HighestRank()))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, boardTable(board))
	fmt.Fprintf(out, "%s: %d moves, best tile %s, target %s\n",
		outcome(res), res.Moves, t2048.Label(res.HighestRank), v.Target())
	logger.Info("autoplay finished", "moves", res.Moves, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func outcome(res t2048.AutoplayResult) string {
	switch {
	case res.Won:
		return "won"
	case res.GameOver:
		return "game over"
	}
	return "stopped"
}

var tileStyle = lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Padding(0, 1)

// boardTable renders the board as a bordered table of tile labels.
func boardTable(b *t2048.Board) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(_, _ int) lipgloss.Style { return tileStyle })

	size := b.Size()
	for row := range size {
		labels := make([]string, size)
		for col := range size {
			labels[col] = t2048.Label(b.Cell(row, col))
		}
		t.Row(labels...)
	}
	return t.Render()
}
