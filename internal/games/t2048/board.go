package t2048

import (
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board is the 4x4 grid indexed as [row][col]. 0 is an empty cell.
type Board [BoardSize][BoardSize]int

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// collapseLine slides a line toward index 0 and merges equal neighbours.
// A tile produced by a merge does not merge again in the same pass.
// Returns the collapsed line and the sum of the merged values.
func collapseLine(line [BoardSize]int) (result [BoardSize]int, score int) {
	writePos := 0
	lastMerged := false

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !lastMerged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerged = true
			continue
		}

		result[writePos] = v
		writePos++
		lastMerged = false
	}

	return result, score
}

// mirror reverses every row.
func mirror(b Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[r][BoardSize-1-c] = b[r][c]
		}
	}
	return out
}

// transpose swaps rows and columns.
func transpose(b Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[c][r] = b[r][c]
		}
	}
	return out
}

func slideLeft(b Board) (Board, int) {
	var out Board
	total := 0
	for r := range BoardSize {
		row, score := collapseLine(b[r])
		out[r] = row
		total += score
	}
	return out, total
}

// Slide collapses every line toward the edge named by dir.
// Returns the new board, the score gained and whether any cell changed.
// An invalid direction returns the board unchanged.
func Slide(b Board, dir Direction) (Board, int, bool) {
	var (
		out   Board
		score int
	)

	switch dir {
	case DirLeft:
		out, score = slideLeft(b)
	case DirRight:
		out, score = slideLeft(mirror(b))
		out = mirror(out)
	case DirUp:
		out, score = slideLeft(transpose(b))
		out = transpose(out)
	case DirDown:
		out, score = slideLeft(mirror(transpose(b)))
		out = transpose(mirror(out))
	default:
		return b, 0, false
	}

	return out, score, out != b
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// CountTiles returns the number of non-empty cells.
func CountTiles(b Board) int {
	return BoardSize*BoardSize - len(EmptyCells(b))
}

// MaxTile returns the largest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, b[r][c])
		}
	}
	return maxVal
}

// IsTerminal reports whether the game is over: there is no empty cell and no
// two orthogonally adjacent tiles are equal. Any board with a free cell is not
// terminal, the empty board included.
func IsTerminal(b Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := b[r][c]
			if v == 0 {
				return false
			}
			if c < BoardSize-1 && b[r][c+1] == v {
				return false
			}
			if r < BoardSize-1 && b[r+1][c] == v {
				return false
			}
		}
	}
	return true
}

// IsTerminalBySimulation is IsTerminal computed by trying all four moves.
// The empty board is the one board where no slide changes anything while
// cells are still free, so free cells are checked before simulating.
func IsTerminalBySimulation(b Board) bool {
	if len(EmptyCells(b)) > 0 {
		return false
	}
	for _, dir := range Directions {
		if _, _, changed := Slide(b, dir); changed {
			return false
		}
	}
	return true
}

// String renders the board as four right-aligned rows, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
			} else {
				fmt.Fprintf(&sb, "%5d", b[r][c])
			}
		}
	}
	return sb.String()
}
