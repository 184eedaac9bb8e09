package cubes

import (
	"fmt"

	"github.com/dsocolobsky/cubes/internal/core"
)

// Block glyphs: each board cell is two runes wide, dark tone on the left
// and light tone on the right, echoing the original's outer/inner
// rectangle look.
const (
	blockOuterChar = '█'
	blockInnerChar = '▓'
	emptyCellChar  = '·'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	g.renderBoard(dst)
	g.renderPiece(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart", core.ColorRed)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", core.ColorYellow)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeClassic {
		hud = fmt.Sprintf(" %s — Score: %d  Pieces: %d", g.Title(), g.score, g.piecesLocked)
	} else {
		hud = fmt.Sprintf(" %s — Score: %d  Lines: %d  Pieces: %d", g.Title(), g.score, g.lines, g.piecesLocked)
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the playfield border, empty cells and landed blocks.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.boardX, g.boardY, g.board.Columns()*2+2, g.board.Rows()+2)

	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Columns(); x++ {
			cell := g.board.CellAt(GridPosition{X: x, Y: y})
			sx, sy := g.cellScreenPos(x, y)

			if cell.Occupied && cell.Block != nil && cell.Block.Rendered {
				pair := ColorsFor(cell.Block.Kind)
				dst.SetCell(sx, sy, blockOuterChar, pair.Primary)
				dst.SetCell(sx+1, sy, blockInnerChar, pair.Secondary)
				continue
			}

			dst.SetCell(sx, sy, emptyCellChar, core.ColorGray)
		}
	}
}

// renderPiece draws the falling piece's active blocks.
func (g *Game) renderPiece(dst *core.Screen) {
	if g.piece == nil || g.piece.Locked() {
		return
	}

	pair := ColorsFor(g.piece.Kind)
	for row := 0; row < pieceFrame; row++ {
		for col := 0; col < pieceFrame; col++ {
			blk := &g.piece.Blocks[row][col]
			if !blk.Active || !blk.Rendered {
				continue
			}
			if !g.board.InBounds(blk.Position) {
				continue
			}
			sx, sy := g.cellScreenPos(blk.Position.X, blk.Position.Y)
			dst.SetCell(sx, sy, blockOuterChar, pair.Primary)
			dst.SetCell(sx+1, sy, blockInnerChar, pair.Secondary)
		}
	}
}

// cellScreenPos maps a board coordinate to its left screen rune.
func (g *Game) cellScreenPos(x, y int) (int, int) {
	return g.boardX + 1 + x*2, g.boardY + 1 + y
}

// renderOverlay draws a centered overlay message box with a colored headline.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string, headline core.Color) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawColorText((dst.Width()-len(line1))/2, boxY+1, line1, headline)
	dst.DrawTextCentered(boxY+3, line2)
}
