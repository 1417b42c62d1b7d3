package t2048

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func newTestBoard(t *testing.T, size int, seed int64, opts ...Option) *Board {
	t.Helper()
	b, err := NewBoard(size, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", size, err)
	}
	return b
}

// ascendingFill returns a full grid of distinct ranks 1..size² in row-major order.
// No two neighbours are equal, so nothing can slide or merge.
func ascendingFill(size int) []uint8 {
	cells := make([]uint8, size*size)
	for i := range cells {
		cells[i] = uint8(i + 1)
	}
	return cells
}

func TestNewBoardIsEmpty(t *testing.T) {
	for size := 3; size <= 10; size++ {
		b := newTestBoard(t, size, 1)

		if b.Size() != size {
			t.Errorf("Size() = %d, want %d", b.Size(), size)
		}
		if got := b.Cells(); !slices.Equal(got, make([]uint8, size*size)) {
			t.Errorf("size %d: cells = %v, want %d zeros", size, got, size*size)
		}
		if b.EmptyCount() != size*size {
			t.Errorf("size %d: EmptyCount() = %d, want %d", size, b.EmptyCount(), size*size)
		}
		if b.IsWin() || b.IsGameOver() {
			t.Errorf("size %d: fresh board should be neither won nor over", size)
		}
	}
}

func TestNewBoardRejectsBadInput(t *testing.T) {
	for _, size := range []int{0, -3, MaxSize + 1} {
		if _, err := NewBoard(size, nil); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}

	if _, err := NewBoard(4, nil, WithWinRank(0)); !errors.Is(err, ErrInvalidWinRank) {
		t.Errorf("WithWinRank(0) error = %v, want ErrInvalidWinRank", err)
	}
	if _, err := NewBoard(4, nil, WithHighTileOdds(0)); !errors.Is(err, ErrInvalidOdds) {
		t.Errorf("WithHighTileOdds(0) error = %v, want ErrInvalidOdds", err)
	}
}

func TestGenerateOpensWithTwoTiles(t *testing.T) {
	for size := 3; size <= 10; size++ {
		b := newTestBoard(t, size, int64(size))

		if err := b.Generate(); err != nil {
			t.Fatalf("size %d: Generate: %v", size, err)
		}

		if got := b.EmptyCount(); got != size*size-2 {
			t.Errorf("size %d: EmptyCount() = %d, want %d", size, got, size*size-2)
		}
		for i, rank := range b.Cells() {
			if rank > 2 {
				t.Errorf("size %d: cell %d has rank %d, want 1 or 2", size, i, rank)
			}
		}
	}
}

func TestGenerateAddsOneTileAfterOpening(t *testing.T) {
	b := newTestBoard(t, 4, 7)
	if err := b.Generate(); err != nil {
		t.Fatal(err)
	}
	if err := b.Generate(); err != nil {
		t.Fatal(err)
	}
	if b.TileCount() != 3 {
		t.Errorf("TileCount() = %d, want 3", b.TileCount())
	}
}

func TestGenerateOnSingleCellBoard(t *testing.T) {
	b := newTestBoard(t, 1, 1)

	if err := b.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.TileCount() != 1 {
		t.Errorf("TileCount() = %d, want 1", b.TileCount())
	}
	if err := b.Generate(); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Generate on full board error = %v, want ErrBoardFull", err)
	}
}

func TestGenerateFullBoard(t *testing.T) {
	b := newTestBoard(t, 3, 1)
	if err := b.SetCells(ascendingFill(3)); err != nil {
		t.Fatal(err)
	}

	if err := b.Generate(); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Generate error = %v, want ErrBoardFull", err)
	}
	if _, err := b.Spawn(); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Spawn error = %v, want ErrBoardFull", err)
	}
}

func TestSpawnPlacesExactlyOneTile(t *testing.T) {
	b := newTestBoard(t, 4, 3)

	idx, err := b.Spawn()
	if err != nil {
		t.Fatal(err)
	}
	if b.TileCount() != 1 {
		t.Errorf("TileCount() = %d, want 1", b.TileCount())
	}
	if b.Cells()[idx] == 0 {
		t.Errorf("Spawn returned index %d but the cell is empty", idx)
	}
}

func TestHighTileOdds(t *testing.T) {
	b := newTestBoard(t, 4, 5, WithHighTileOdds(1))

	for range 6 {
		if _, err := b.Spawn(); err != nil {
			t.Fatal(err)
		}
	}
	for i, rank := range b.Cells() {
		if rank != 0 && rank != 2 {
			t.Errorf("cell %d has rank %d, want 2 with 1-in-1 odds", i, rank)
		}
	}
}

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name    string
		line    []uint8
		reverse bool
		want    []uint8
	}{
		{"empty", nil, false, []uint8{}},
		{"single", []uint8{3}, false, []uint8{3}},
		{"pair", []uint8{1, 1}, false, []uint8{2}},
		{"no chain merge", []uint8{1, 1, 1, 1}, false, []uint8{2, 2}},
		{"no chain merge reverse", []uint8{1, 1, 1, 1}, true, []uint8{2, 2}},
		{"odd run merges from leading edge", []uint8{1, 1, 1}, false, []uint8{2, 1}},
		{"odd run merges from trailing edge", []uint8{1, 1, 1}, true, []uint8{1, 2}},
		{"merged tile does not remerge", []uint8{2, 1, 1}, false, []uint8{2, 2}},
		{"no merge", []uint8{1, 2, 3, 4}, false, []uint8{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeLine(tt.line, tt.reverse)
			if !slices.Equal(got, tt.want) {
				t.Errorf("mergeLine(%v, %v) = %v, want %v", tt.line, tt.reverse, got, tt.want)
			}
		})
	}
}

func TestSlideCellsRow(t *testing.T) {
	tests := []struct {
		name string
		row  []uint8
		dir  Direction
		want []uint8
	}{
		{"left packs and merges", []uint8{1, 1, 2}, DirLeft, []uint8{2, 2, 0}},
		{"right mirrors left", []uint8{2, 1, 1}, DirRight, []uint8{0, 2, 2}},
		{"four equal tiles", []uint8{1, 1, 1, 1}, DirLeft, []uint8{2, 2, 0, 0}},
		{"gap closes", []uint8{1, 0, 0, 1}, DirLeft, []uint8{2, 0, 0, 0}},
		{"right merges nearest the wall first", []uint8{1, 1, 1, 0}, DirRight, []uint8{0, 0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := len(tt.row)
			cells := make([]uint8, size*size)
			copy(cells, tt.row)

			got := SlideCells(cells, size, tt.dir)[:size]
			if !slices.Equal(got, tt.want) {
				t.Errorf("slide %s %v = %v, want %v", tt.dir, tt.row, got, tt.want)
			}
		})
	}
}

func TestSlideCellsAllDirections(t *testing.T) {
	tests := []struct {
		dir   Direction
		cells []uint8
		want  []uint8
	}{
		{
			dir: DirLeft,
			cells: []uint8{
				1, 1, 0, 0,
				2, 0, 2, 0,
				1, 1, 1, 1,
				0, 0, 0, 1,
			},
			want: []uint8{
				2, 0, 0, 0,
				3, 0, 0, 0,
				2, 2, 0, 0,
				1, 0, 0, 0,
			},
		},
		{
			dir: DirRight,
			cells: []uint8{
				1, 1, 0, 0,
				2, 0, 2, 0,
				1, 1, 1, 1,
				0, 0, 0, 1,
			},
			want: []uint8{
				0, 0, 0, 2,
				0, 0, 0, 3,
				0, 0, 2, 2,
				0, 0, 0, 1,
			},
		},
		{
			dir: DirUp,
			cells: []uint8{
				1, 2, 1, 0,
				1, 0, 1, 0,
				0, 2, 1, 0,
				0, 0, 1, 1,
			},
			want: []uint8{
				2, 3, 2, 1,
				0, 0, 2, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
		},
		{
			dir: DirDown,
			cells: []uint8{
				1, 2, 1, 1,
				1, 0, 1, 0,
				0, 2, 1, 0,
				0, 0, 1, 0,
			},
			want: []uint8{
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 2, 0,
				2, 3, 2, 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			before := slices.Clone(tt.cells)
			got := SlideCells(tt.cells, 4, tt.dir)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SlideCells %s:\ngot  %v\nwant %v", tt.dir, got, tt.want)
			}
			if !slices.Equal(tt.cells, before) {
				t.Error("SlideCells modified its input")
			}
		})
	}
}

func TestCellIndex(t *testing.T) {
	// Line 1, first position from the packing edge, on a 3x3 board.
	tests := []struct {
		dir  Direction
		want int
	}{
		{DirUp, 1},    // row 0, col 1
		{DirDown, 7},  // row 2, col 1
		{DirLeft, 3},  // row 1, col 0
		{DirRight, 5}, // row 1, col 2
	}
	for _, tt := range tests {
		if got := cellIndex(3, tt.dir, 1, 0); got != tt.want {
			t.Errorf("cellIndex(3, %s, 1, 0) = %d, want %d", tt.dir, got, tt.want)
		}
	}
}

func TestSlideMatchesPrediction(t *testing.T) {
	for size := 3; size <= 10; size++ {
		b := newTestBoard(t, size, int64(100+size))
		if err := b.Generate(); err != nil {
			t.Fatal(err)
		}
		cells := b.Cells()
		predictions := b.Predictions()

		for _, dir := range Directions {
			if err := b.SetCells(cells); err != nil {
				t.Fatal(err)
			}
			if _, err := b.Slide(dir); err != nil {
				t.Fatal(err)
			}
			if got := b.Cells(); !slices.Equal(got, predictions[dir]) {
				t.Errorf("size %d %s: cells %v, prediction %v", size, dir, got, predictions[dir])
			}
		}
	}
}

func TestMoveAdoptsPredictionPlusOneTile(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for size := 3; size <= 6; size++ {
		b := newTestBoard(t, size, int64(size))
		if err := b.Generate(); err != nil {
			t.Fatal(err)
		}

		for range 50 {
			if b.IsGameOver() {
				break
			}
			dir := Directions[rng.Intn(len(Directions))]
			before := b.Cells()
			want := b.Prediction(dir)

			changed, err := b.Move(dir)
			if err != nil {
				t.Fatalf("Move(%s): %v", dir, err)
			}

			after := b.Cells()
			if !changed {
				if !slices.Equal(after, before) {
					t.Fatalf("unchanged move altered the grid: %v -> %v", before, after)
				}
				continue
			}

			diff := 0
			for i := range after {
				if after[i] != want[i] {
					diff++
					if want[i] != 0 || after[i] > 2 {
						t.Fatalf("cell %d: prediction %d, got %d", i, want[i], after[i])
					}
				}
			}
			if diff != 1 {
				t.Fatalf("%s: %d cells differ from prediction, want exactly the new tile", dir, diff)
			}
		}
	}
}

func TestMoveWithoutChangeDoesNotSpawn(t *testing.T) {
	b := newTestBoard(t, 4, 1)
	cells := make([]uint8, 16)
	cells[0], cells[1] = 2, 1
	if err := b.SetCells(cells); err != nil {
		t.Fatal(err)
	}

	changed, err := b.Move(DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("Move(left) on left-packed tiles reported a change")
	}
	if !slices.Equal(b.Cells(), cells) {
		t.Errorf("cells = %v, want unchanged %v", b.Cells(), cells)
	}
	if b.IsGameOver() {
		t.Error("board with legal moves marked game over")
	}
}

func TestLegalMoves(t *testing.T) {
	b := newTestBoard(t, 3, 1)
	cells := make([]uint8, 9)
	cells[0] = 1
	if err := b.SetCells(cells); err != nil {
		t.Fatal(err)
	}

	want := []Direction{DirDown, DirRight}
	if got := b.LegalMoves(); !slices.Equal(got, want) {
		t.Errorf("LegalMoves() = %v, want %v", got, want)
	}
	if b.CanMove(DirUp) || !b.CanMove(DirDown) {
		t.Error("CanMove disagrees with LegalMoves")
	}
}

func TestWin(t *testing.T) {
	for size := 3; size <= 10; size++ {
		for _, dir := range []Direction{DirLeft, DirRight} {
			b := newTestBoard(t, size, int64(size))
			if b.IsWin() {
				t.Fatalf("size %d: fresh board reports a win", size)
			}

			cells := b.Cells()
			cells[0], cells[1] = 10, 10
			if err := b.SetCells(cells); err != nil {
				t.Fatal(err)
			}
			if _, err := b.Move(dir); err != nil {
				t.Fatal(err)
			}
			if !b.IsWin() {
				t.Errorf("size %d %s: merging two 1024s should win", size, dir)
			}

			// A later move that does not form a winning tile keeps the win.
			if _, err := b.Move(DirDown); err != nil {
				t.Fatal(err)
			}
			if !b.IsWin() {
				t.Errorf("size %d: win lost after a further move", size)
			}
		}
	}
}

func TestWinRankOption(t *testing.T) {
	b := newTestBoard(t, 3, 1, WithWinRank(3))
	cells := make([]uint8, 9)
	cells[4] = 3
	if err := b.SetCells(cells); err != nil {
		t.Fatal(err)
	}
	if !b.IsWin() {
		t.Error("rank 3 tile should win with WithWinRank(3)")
	}
	if b.WinRank() != 3 {
		t.Errorf("WinRank() = %d, want 3", b.WinRank())
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	for size := 3; size <= 10; size++ {
		for _, dir := range Directions {
			b := newTestBoard(t, size, 1)
			fill := ascendingFill(size)
			if err := b.SetCells(fill); err != nil {
				t.Fatal(err)
			}

			if _, err := b.Move(dir); err != nil {
				t.Fatal(err)
			}
			if !b.IsGameOver() {
				t.Fatalf("size %d %s: stuck board not game over", size, dir)
			}

			for _, next := range Directions {
				changed, err := b.Move(next)
				if err != nil || changed {
					t.Errorf("size %d: Move(%s) after game over = %v, %v", size, next, changed, err)
				}
			}
			if !slices.Equal(b.Cells(), fill) {
				t.Errorf("size %d: grid changed after game over", size)
			}
		}
	}
}

func TestGameOverAfterLastMove(t *testing.T) {
	b := newTestBoard(t, 2, 1)
	// Sliding left merges the 1s; the new tile lands in the freed cell.
	if err := b.SetCells([]uint8{1, 1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Move(DirLeft); err != nil {
		t.Fatal(err)
	}
	if b.IsGameOver() != (len(b.LegalMoves()) == 0) {
		t.Errorf("IsGameOver() = %v with legal moves %v", b.IsGameOver(), b.LegalMoves())
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	b := newTestBoard(t, 4, 1)
	if _, err := b.Move(Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Move(9) error = %v, want ErrInvalidDirection", err)
	}
	if b.Prediction(Direction(9)) != nil {
		t.Error("Prediction of an invalid direction should be nil")
	}
}

func TestSetCellsValidation(t *testing.T) {
	b := newTestBoard(t, 3, 1)

	if err := b.SetCells(make([]uint8, 8)); !errors.Is(err, ErrCellsLength) {
		t.Errorf("short grid error = %v, want ErrCellsLength", err)
	}

	cells := make([]uint8, 9)
	cells[2] = b.MaxRank() + 1
	if err := b.SetCells(cells); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("oversized rank error = %v, want ErrInvalidRank", err)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() []uint8 {
		b := newTestBoard(t, 4, 2024)
		if err := b.Generate(); err != nil {
			t.Fatal(err)
		}
		for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirUp} {
			if _, err := b.Move(dir); err != nil {
				t.Fatal(err)
			}
		}
		return b.Cells()
	}

	if a, b := play(), play(); !slices.Equal(a, b) {
		t.Errorf("same seed produced different boards:\n%v\n%v", a, b)
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	b := newTestBoard(t, 3, 1)
	cells := b.Cells()
	cells[0] = 5

	if b.Cell(0, 0) != 0 {
		t.Error("mutating Cells() result changed the board")
	}
	if b.Cell(-1, 0) != 0 || b.Cell(0, 3) != 0 {
		t.Error("out of range Cell should read as empty")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		rank uint8
		want string
	}{
		{0, ""},
		{1, "2"},
		{11, "2048"},
		{17, "131072"},
		{70, "2^70"},
	}
	for _, tt := range tests {
		if got := Label(tt.rank); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
	if Value(11) != 2048 {
		t.Errorf("Value(11) = %d, want 2048", Value(11))
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"U", DirUp},
		{" down ", DirDown},
		{"l", DirLeft},
		{"Right", DirRight},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
		if back, _ := ParseDirection(got.String()); back != got {
			t.Errorf("ParseDirection(%s.String()) = %s", got, back)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(north) error = %v, want ErrInvalidDirection", err)
	}
	if s := Direction(9).String(); s != "direction(9)" {
		t.Errorf("invalid direction String() = %q", s)
	}
}
