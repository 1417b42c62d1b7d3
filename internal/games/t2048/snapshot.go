package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism tests and replay.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Size        int
	Cells       []uint8 // Row-major ranks
	Moves       int     // Moves that changed the board
	HighestRank uint8
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.board != nil && g.board.IsGameOver():
		state = StateGameOver
	case g.won:
		state = StateWin
	}

	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Size:    g.variant.Size,
		Moves:   g.moves,
		State:   state,
	}
	if g.board != nil {
		snap.Cells = g.board.Cells()
		snap.HighestRank = g.board.HighestRank()
	}
	return snap
}
