package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/swiftbox/internal/core"
)

const (
	cellWidth  = 6 // five digits plus the left border
	cellHeight = 2 // one text row plus the top border
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1
	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)

	if board.Bottom() < g.screenH {
		dst.DrawTextCentered(g.screenH-1, g.Controls())
	}

	g.renderOverlays(dst, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorGold)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.state.Score))

	best := fmt.Sprintf("Best: %d", MaxTile(g.state.Board))
	dst.DrawText(max(board.Right()-len(best), board.X), 1, best)

	if g.rejected {
		hint := "Can't move that way"
		dst.DrawTextColored(board.X+(board.W-len(hint))/2, 2, hint, core.ColorGray)
	}
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			dst.Set(px, py, gridJoint(x, y))

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := g.state.Board[r][c]
			if val == 0 {
				continue
			}

			color := tileColor(val)
			if g.lastMove.Changed && g.lastMove.Spawned == (Cell{Row: r, Col: c}) {
				color = core.ColorBrightWhite
			}

			text := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(text))/2, 0)
			dst.DrawTextColored(board.X+c*cellWidth+1+padLeft, board.Y+r*cellHeight+1, text, color)
		}
	}
}

// gridJoint returns the box-drawing rune for grid intersection (x, y).
func gridJoint(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// tileColor follows the classic palette: pale low tiles, warm mid tiles,
// gold from 128 up to 2048.
func tileColor(v int) core.Color {
	switch {
	case v <= 4:
		return core.ColorBeige
	case v == 8:
		return core.ColorOrange
	case v <= 64:
		return core.ColorBrightRed
	case v <= 2048:
		return core.ColorGold
	default:
		return core.ColorMagenta
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.state.Terminal:
		g.drawOverlay(dst, board,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.state.Score),
			fmt.Sprintf("Max tile: %d", MaxTile(g.state.Board)),
			"R: New game",
		)
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | N: New | Q: Quit"
}
