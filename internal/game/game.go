package game

import "errors"

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidMove  = errors.New("invalid move")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Game wraps a Board with turn alternation.
type Game struct {
	Board       Board
	CurrentTurn Cell
	Winner      Cell
}

// NewGame returns an empty game where first moves first.
func NewGame(first Cell) *Game {
	return &Game{
		Board:       Board{},
		CurrentTurn: first,
		Winner:      Empty,
	}
}

// Move plays m for the side whose turn it is.
func (g *Game) Move(m Move) error {
	if g.IsOver() {
		return ErrGameFinished
	}
	if !m.InBounds() {
		return ErrInvalidMove
	}
	if !g.Board.SetMove(m, g.CurrentTurn) {
		return ErrCellOccupied
	}

	if g.Board.IsWinner(g.CurrentTurn) {
		g.Winner = g.CurrentTurn
	}
	g.CurrentTurn = g.CurrentTurn.Opponent()
	return nil
}

// IsDraw checks if the game is a draw.
func (g *Game) IsDraw() bool {
	// If there is a winner, it's not a draw
	if g.Winner != Empty {
		return false
	}
	return g.Board.IsFull()
}

// IsOver reports whether the game has a winner or no moves are left.
func (g *Game) IsOver() bool {
	return g.Winner != Empty || g.Board.IsFull()
}
