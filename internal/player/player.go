package player

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

// ErrQuit is returned by a MoveSource whose player left the game.
var ErrQuit = errors.New("player quit")

// MoveSource is anything that can pick the next move for a player.
type MoveSource interface {
	NextMove(ctx context.Context, board *game.Board) (game.Move, error)
}

// Player represents one side of a game.
type Player struct {
	ID     string
	Name   string
	Mark   game.Cell
	Source MoveSource
	IsBot  bool
}

// NewPlayer creates a player with a fresh ID.
func NewPlayer(name string, mark game.Cell, source MoveSource) *Player {
	return &Player{
		ID:     uuid.New().String(),
		Name:   name,
		Mark:   mark,
		Source: source,
	}
}
