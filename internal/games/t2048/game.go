package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/registry"
)

// Game adapts a Board to the arcade loop: ticks, input actions, pause,
// the win overlay and rendering.
type Game struct {
	variant Variant
	board   *Board
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	won      bool // Showing the win overlay
	winSeen  bool // Win was dismissed; keep playing without showing it again
	lastMove Direction
	moves    int
}

// NewGame creates a game for the given variant.
func NewGame(v Variant) (*Game, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Game{variant: v}, nil
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			g, err := NewGame(v)
			if err != nil {
				panic(fmt.Sprintf("t2048: built-in variant: %v", err))
			}
			return g
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("2048: %s", g.variant.Name)
}

// Variant returns the board variant being played.
func (g *Game) Variant() Variant {
	return g.variant
}

// Board returns the underlying engine. Nil before the first Reset.
func (g *Game) Board() *Board {
	return g.board
}

// Reset starts a new game with a fresh board and the two opening tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	board, err := NewBoard(g.variant.Size, rng,
		WithWinRank(g.variant.WinRank),
		WithHighTileOdds(g.variant.HighTileOdds),
	)
	if err != nil {
		// NewGame validated the variant
		panic(fmt.Sprintf("t2048: reset %s: %v", g.variant.ID, err))
	}
	if err := board.Generate(); err != nil {
		panic(fmt.Sprintf("t2048: reset %s: %v", g.variant.ID, err))
	}

	g.board = board
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.won = false
	g.winSeen = false
	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can fit the board and HUD.
func (g *Game) checkScreenSize() {
	w, h := boardExtent(g.variant.Size)
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.won {
		if in.Has(core.ActionConfirm) {
			g.won = false
			g.winSeen = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.board.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved, err := g.board.Move(dir)
	if err != nil {
		// Move only fails for invalid directions, which directionFor never returns
		return core.StepResult{State: g.State()}
	}
	if moved {
		g.moves++
		g.lastMove = dir
	}
	if !g.winSeen && g.board.IsWin() {
		g.won = true
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor picks the move requested by the frame, if any.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.board != nil && g.board.IsGameOver()
	return core.GameState{
		Won:      g.won,
		GameOver: over,
		Paused:   g.paused || g.tooSmall,
	}
}
