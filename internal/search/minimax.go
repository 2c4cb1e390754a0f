// Package search picks optimal tic-tac-toe moves with a full-depth minimax.
package search

import (
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"math"
)

// State is the board view the search needs. *game.Board implements it.
type State interface {
	EmptyCells() []game.Move
	IsTerminal() bool
	Evaluate() int
	SetMove(m game.Move, player game.Cell) bool
	Unset(m game.Move)
}

// Result is a move together with its game-theoretic score for PlayerMax.
type Result struct {
	Move  game.Move
	Score int
}

// Minimax explores every continuation of state up to depth plies and returns
// the best move for player assuming optimal replies. Among equally scored
// moves the first one in row-major order wins.
//
// state is mutated while searching and restored before returning. Callers
// pass the number of empty cells as depth to search the whole game tree.
func Minimax(state State, depth int, player game.Cell) Result {
	cells := state.EmptyCells()
	if depth == 0 || state.IsTerminal() || len(cells) == 0 {
		return Result{Move: game.NoMove, Score: state.Evaluate()}
	}

	best := Result{Move: game.NoMove, Score: initScore(player)}
	for _, m := range cells {
		state.SetMove(m, player)
		child := Minimax(state, depth-1, player.Opponent())
		state.Unset(m)

		child.Move = m
		if player == game.PlayerMax {
			if child.Score > best.Score {
				best = child
			}
		} else if child.Score < best.Score {
			best = child
		}
	}
	return best
}

func initScore(player game.Cell) int {
	if player == game.PlayerMax {
		return math.MinInt
	}
	return math.MaxInt
}
