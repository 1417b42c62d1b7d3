package t2048

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"time"
)

const (
	// MaxSize is the largest supported board side. The highest reachable rank
	// on a MaxSize board still fits in a uint8.
	MaxSize = 15

	// DefaultWinRank is the rank of the 2048 tile.
	DefaultWinRank uint8 = 11

	// DefaultHighTileOdds gives the 1-in-64 chance of spawning a rank 2 tile.
	DefaultHighTileOdds = 64
)

var (
	ErrInvalidSize      = errors.New("t2048: invalid board size")
	ErrBoardFull        = errors.New("t2048: board is full")
	ErrInvalidDirection = errors.New("t2048: invalid direction")
	ErrCellsLength      = errors.New("t2048: cell count does not match board")
	ErrInvalidRank      = errors.New("t2048: rank out of range")
	ErrInvalidWinRank   = errors.New("t2048: invalid win rank")
	ErrInvalidOdds      = errors.New("t2048: invalid high tile odds")
)

// Board is the board-state engine: an N×N grid of tile ranks.
// A rank k > 0 is a tile showing 2^k; 0 is an empty cell.
// Cells are stored row-major. A Board is not safe for concurrent use.
type Board struct {
	size     int
	cells    []uint8
	rng      *rand.Rand
	winRank  uint8
	highOdds int
	gameOver bool

	// predictions holds the grid each direction would produce.
	// Recomputed by refresh after every mutation of cells.
	predictions [directionCount][]uint8
}

// Option configures a Board at construction.
type Option func(*Board) error

// WithWinRank sets the rank that counts as a win.
func WithWinRank(rank uint8) Option {
	return func(b *Board) error {
		if rank == 0 {
			return ErrInvalidWinRank
		}
		b.winRank = rank
		return nil
	}
}

// WithHighTileOdds sets n so that a spawned tile has a 1-in-n chance of rank 2.
func WithHighTileOdds(n int) Option {
	return func(b *Board) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidOdds, n)
		}
		b.highOdds = n
		return nil
	}
}

// NewBoard creates an empty board of the given side.
// A nil rng is replaced by a time-seeded source.
func NewBoard(size int, rng *rand.Rand, opts ...Option) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, size, MaxSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{
		size:     size,
		cells:    make([]uint8, size*size),
		rng:      rng,
		winRank:  DefaultWinRank,
		highOdds: DefaultHighTileOdds,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	b.refresh()
	return b, nil
}

// Size returns the board side.
func (b *Board) Size() int {
	return b.size
}

// WinRank returns the rank that counts as a win.
func (b *Board) WinRank() uint8 {
	return b.winRank
}

// MaxRank returns the highest rank reachable on this board.
// Every cell holding a tile in a full board can at best form a doubling chain,
// and a spawned rank 2 tile adds one more.
func (b *Board) MaxRank() uint8 {
	return uint8(b.size*b.size + 1)
}

// Cells returns a copy of the grid in row-major order.
func (b *Board) Cells() []uint8 {
	return slices.Clone(b.cells)
}

// Cell returns the rank at (row, col). Out-of-range coordinates read as empty.
func (b *Board) Cell(row, col int) uint8 {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0
	}
	return b.cells[row*b.size+col]
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, rank := range b.cells {
		if rank == 0 {
			n++
		}
	}
	return n
}

// TileCount returns the number of occupied cells.
func (b *Board) TileCount() int {
	return len(b.cells) - b.EmptyCount()
}

// HighestRank returns the largest rank on the board, 0 when empty.
func (b *Board) HighestRank() uint8 {
	if len(b.cells) == 0 {
		return 0
	}
	return slices.Max(b.cells)
}

// emptyCells returns empty cell indices in ascending order.
func (b *Board) emptyCells() []int {
	var idx []int
	for i, rank := range b.cells {
		if rank == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// spawn places one tile without refreshing predictions.
func (b *Board) spawn() (int, error) {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return -1, ErrBoardFull
	}

	idx := empty[b.rng.Intn(len(empty))]
	rank := uint8(1)
	if b.rng.Intn(b.highOdds) == 0 {
		rank = 2
	}
	b.cells[idx] = rank
	return idx, nil
}

// Spawn places exactly one new tile in a random empty cell and returns its index.
func (b *Board) Spawn() (int, error) {
	idx, err := b.spawn()
	if err != nil {
		return -1, err
	}
	b.refresh()
	return idx, nil
}

// Generate places a new tile in a random empty cell: rank 1 usually, rank 2
// with a 1-in-HighTileOdds chance. When the board held no tiles before the
// call a second tile is placed too, so a fresh game opens with two tiles.
func (b *Board) Generate() error {
	if _, err := b.spawn(); err != nil {
		return err
	}
	if b.TileCount() == 1 && len(b.cells) > 1 {
		if _, err := b.spawn(); err != nil {
			return err
		}
	}
	b.refresh()
	return nil
}

// refresh recomputes the move predictions from the current grid.
func (b *Board) refresh() {
	for _, dir := range Directions {
		b.predictions[dir] = SlideCells(b.cells, b.size, dir)
	}
}

// Prediction returns the grid a move in dir would produce, without spawning.
func (b *Board) Prediction(dir Direction) []uint8 {
	if !dir.Valid() {
		return nil
	}
	return slices.Clone(b.predictions[dir])
}

// Predictions returns the predicted grid for every direction.
func (b *Board) Predictions() map[Direction][]uint8 {
	out := make(map[Direction][]uint8, directionCount)
	for _, dir := range Directions {
		out[dir] = slices.Clone(b.predictions[dir])
	}
	return out
}

// CanMove reports whether a move in dir would change the grid.
func (b *Board) CanMove(dir Direction) bool {
	return dir.Valid() && !slices.Equal(b.cells, b.predictions[dir])
}

// LegalMoves lists the directions that would change the grid.
func (b *Board) LegalMoves() []Direction {
	var moves []Direction
	for _, dir := range Directions {
		if b.CanMove(dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// Move slides the board in dir. If the grid changed a new tile is generated.
// Game-over is re-evaluated either way. Once the game is over Move does nothing.
func (b *Board) Move(dir Direction) (bool, error) {
	return b.apply(dir, true)
}

// Slide is Move without the follow-up tile.
func (b *Board) Slide(dir Direction) (bool, error) {
	return b.apply(dir, false)
}

func (b *Board) apply(dir Direction, generate bool) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("move %s: %w", dir, ErrInvalidDirection)
	}
	if b.gameOver {
		return false, nil
	}

	changed := !slices.Equal(b.cells, b.predictions[dir])
	if changed {
		b.cells = slices.Clone(b.predictions[dir])
		if generate {
			if err := b.Generate(); err != nil {
				return true, fmt.Errorf("move %s: %w", dir, err)
			}
		} else {
			b.refresh()
		}
	}

	b.checkGameOver()
	return changed, nil
}

// checkGameOver latches game-over when every prediction is identical,
// which means no direction can change the grid.
func (b *Board) checkGameOver() {
	first := b.predictions[0]
	for _, p := range b.predictions[1:] {
		if !slices.Equal(first, p) {
			return
		}
	}
	b.gameOver = true
}

// IsGameOver reports whether the game has reached its terminal state.
func (b *Board) IsGameOver() bool {
	return b.gameOver
}

// IsWin reports whether any tile has reached the win rank.
func (b *Board) IsWin() bool {
	return b.HighestRank() >= b.winRank
}

// SetCells replaces the grid, clears game-over and recomputes predictions.
// It exists for tests and replay tooling.
func (b *Board) SetCells(cells []uint8) error {
	if len(cells) != len(b.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrCellsLength, len(cells), len(b.cells))
	}
	maxRank := b.MaxRank()
	for i, rank := range cells {
		if rank > maxRank {
			return fmt.Errorf("%w: cell %d has rank %d (max %d)", ErrInvalidRank, i, rank, maxRank)
		}
	}
	b.cells = slices.Clone(cells)
	b.gameOver = false
	b.refresh()
	return nil
}

// Value returns the displayed value of a rank, 0 for empty.
// Ranks of 63 and above do not fit an int and report 0.
func Value(rank uint8) int {
	if rank == 0 || rank >= 63 {
		return 0
	}
	return 1 << rank
}

// Label returns the text shown for a tile of the given rank.
func Label(rank uint8) string {
	switch {
	case rank == 0:
		return ""
	case rank >= 63:
		return "2^" + strconv.Itoa(int(rank))
	default:
		return strconv.Itoa(Value(rank))
	}
}
