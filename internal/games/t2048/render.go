package t2048

import (
	"fmt"

	"github.com/vovakirdan/tile2048/internal/core"
)

const (
	cellWidth  = 7 // Cell width including its left border; fits "131072"
	cellHeight = 2 // Cell height including its top border
	hudHeight  = 3
)

// tileColors cycles through tile ranks so neighbouring values differ.
var tileColors = []core.Color{
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
	core.ColorMagenta,
	core.ColorBrightBlue,
	core.ColorBlue,
	core.ColorCyan,
}

// TileColor returns the display color for a rank.
func TileColor(rank uint8) core.Color {
	if rank == 0 {
		return core.ColorGray
	}
	return tileColors[int(rank-1)%len(tileColors)]
}

// boardExtent returns the drawn board size in screen cells.
func boardExtent(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.board == nil {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardExtent(g.variant.Size)
	boardX := core.Clamp((dst.Width()-boardW)/2, 0, dst.Width())
	area := core.NewRect(boardX, hudHeight, boardW, boardH)

	g.renderHUD(dst, area)
	g.renderBoard(dst, area)
	g.renderOverlays(dst, area)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, target and move count above the board.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	title := fmt.Sprintf("2048  %s", g.variant.Name)
	dst.DrawTextCentered(0, title)

	dst.DrawText(area.X, 1, fmt.Sprintf("Target: %s", g.variant.Target()))

	info := fmt.Sprintf("Best: %s", Label(g.board.HighestRank()))
	dst.DrawText(max(area.Right()-len(info), area.X), 1, info)

	if g.moves > 0 {
		dst.DrawText(area.X, 2, fmt.Sprintf("Moves: %d  Last: %s", g.moves, g.lastMove))
	}
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	size := g.variant.Size

	for row := range size + 1 {
		for col := range size + 1 {
			px := area.X + col*cellWidth
			py := area.Y + row*cellHeight
			dst.Set(px, py, gridJoint(row, col, size))

			if col < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if row < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range size {
		for col := range size {
			rank := g.board.Cell(row, col)
			if rank == 0 {
				continue
			}
			label := Label(rank)
			pad := max((cellWidth-1-len(label))/2, 0)
			x := area.X + col*cellWidth + 1 + pad
			y := area.Y + row*cellHeight + 1
			dst.DrawTextColor(x, y, label, TileColor(rank))
		}
	}
}

// gridJoint picks the box-drawing rune at a grid intersection.
func gridJoint(row, col, size int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == size:
		return '┐'
	case row == size && col == 0:
		return '└'
	case row == size && col == size:
		return '┘'
	case row == 0:
		return '┬'
	case row == size:
		return '┴'
	case col == 0:
		return '├'
	case col == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause, win and game over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, area, "PAUSED", "Press P to resume")
	case g.board.IsGameOver():
		drawOverlay(dst, area, "GAME OVER", "Best: "+Label(g.board.HighestRank()), "Press R to restart")
	case g.won:
		drawOverlay(dst, area, "YOU WIN!", g.variant.Target()+" reached", "Enter: keep going")
	}
}

// drawOverlay draws a boxed, centered block of text.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := area.CenteredIn(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}
