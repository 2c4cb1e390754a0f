package game

import "strings"

// Cell is the content of a single board position.
type Cell int8

const (
	Empty Cell = iota
	PlayerMax
	PlayerMin
)

// Leaf scores, always from PlayerMax's point of view.
const (
	ScoreMinWins = -1
	ScoreDraw    = 0
	ScoreMaxWins = 1
)

// Board boundaries
const (
	BorderMin = 0
	BorderMax = 2
	Size      = BorderMax + 1
)

// Opponent returns the other side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerMax:
		return PlayerMin
	case PlayerMin:
		return PlayerMax
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case PlayerMax:
		return "max"
	case PlayerMin:
		return "min"
	default:
		return "empty"
	}
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned where no move is meaningful, e.g. at a search leaf.
var NoMove = Move{Row: -1, Col: -1}

// InBounds reports whether m addresses a cell of a 3x3 board.
func (m Move) InBounds() bool {
	return m.Row >= BorderMin && m.Row <= BorderMax && m.Col >= BorderMin && m.Col <= BorderMax
}

// lines holds the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Board is a 3x3 grid. It only stores state; turn order is enforced by Game.
type Board [Size][Size]Cell

// EmptyCells returns every empty coordinate in row-major order.
func (b *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if b[r][c] == Empty {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}
	return cells
}

// IsWinner reports whether player fully occupies any winning line.
func (b *Board) IsWinner(player Cell) bool {
	if player == Empty {
		return false
	}
	for _, line := range lines {
		if b[line[0].Row][line[0].Col] == player &&
			b[line[1].Row][line[1].Col] == player &&
			b[line[2].Row][line[2].Col] == player {
			return true
		}
	}
	return false
}

// IsTerminal reports whether either side has won.
// A full board without a winner is not terminal; see IsFull.
func (b *Board) IsTerminal() bool {
	return b.IsWinner(PlayerMax) || b.IsWinner(PlayerMin)
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// SetMove places player on m if the cell is empty. It returns false and
// leaves the board untouched when the cell is occupied or out of range.
func (b *Board) SetMove(m Move, player Cell) bool {
	if !m.InBounds() || b[m.Row][m.Col] != Empty {
		return false
	}
	b[m.Row][m.Col] = player
	return true
}

// Unset clears m back to Empty.
func (b *Board) Unset(m Move) {
	if m.InBounds() {
		b[m.Row][m.Col] = Empty
	}
}

// Evaluate scores the board for PlayerMax. A zero on a non-terminal board
// does not mean a draw.
func (b *Board) Evaluate() int {
	switch {
	case b.IsWinner(PlayerMax):
		return ScoreMaxWins
	case b.IsWinner(PlayerMin):
		return ScoreMinWins
	default:
		return ScoreDraw
	}
}

// String renders the board as three rows of x, o and dots, used in logs.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range Size {
			switch b[r][c] {
			case PlayerMax:
				sb.WriteByte('x')
			case PlayerMin:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
