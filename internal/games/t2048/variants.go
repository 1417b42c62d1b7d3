// Package t2048 implements the 2048 sliding-tile puzzle: the rank-encoded
// board engine and the arcade game built on top of it.
package t2048

import (
	"fmt"

	"github.com/vovakirdan/tile2048/internal/config"
)

// Variant describes a playable board: its side and the tile that wins it.
type Variant struct {
	ID           string
	Name         string
	Size         int
	WinRank      uint8 // Rank whose tile wins the game (11 = 2048)
	HighTileOdds int   // 1-in-n chance of spawning a 4 instead of a 2
}

// Variants are the built-in boards. Win targets are set so that each one is
// reachable on its board.
var Variants = []Variant{
	{ID: "2048", Name: "Classic 4x4", Size: 4, WinRank: 11, HighTileOdds: DefaultHighTileOdds},
	{ID: "2048-3x3", Name: "Small 3x3", Size: 3, WinRank: 9, HighTileOdds: DefaultHighTileOdds},
	{ID: "2048-5x5", Name: "Large 5x5", Size: 5, WinRank: 13, HighTileOdds: DefaultHighTileOdds},
	{ID: "2048-6x6", Name: "Huge 6x6", Size: 6, WinRank: 15, HighTileOdds: DefaultHighTileOdds},
}

// Validate reports whether a board can be built from the variant.
func (v Variant) Validate() error {
	if v.Size < 1 || v.Size > MaxSize {
		return fmt.Errorf("variant %q: %w: %d", v.ID, ErrInvalidSize, v.Size)
	}
	if v.WinRank == 0 {
		return fmt.Errorf("variant %q: %w", v.ID, ErrInvalidWinRank)
	}
	if v.HighTileOdds < 1 {
		return fmt.Errorf("variant %q: %w: %d", v.ID, ErrInvalidOdds, v.HighTileOdds)
	}
	return nil
}

// Target returns the label of the winning tile.
func (v Variant) Target() string {
	return Label(v.WinRank)
}

// LookupVariant returns the built-in variant with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantFor returns the board described by the configuration: the built-in
// variant with the same size and win rank if there is one, otherwise a
// custom variant.
func VariantFor(cfg config.Config) Variant {
	for _, v := range Variants {
		if v.Size == cfg.Board.Size && v.WinRank == cfg.Board.WinRank && v.HighTileOdds == cfg.Spawn.HighTileOdds {
			return v
		}
	}
	return Variant{
		ID:           fmt.Sprintf("2048-custom-%dx%d", cfg.Board.Size, cfg.Board.Size),
		Name:         fmt.Sprintf("Custom %dx%d", cfg.Board.Size, cfg.Board.Size),
		Size:         cfg.Board.Size,
		WinRank:      cfg.Board.WinRank,
		HighTileOdds: cfg.Spawn.HighTileOdds,
	}
}
